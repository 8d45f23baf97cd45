// Package config defines the runtime configuration for the senc tool.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime configuration assembled from flags and SENC_*
// environment variables.
type Config struct {
	// Key is the hex-encoded raw encryption key (keyed envelopes).
	Key string `validate:"omitempty,hexadecimal"`

	// KeyFile points at a file holding the hex-encoded key.
	KeyFile string `mapstructure:"key-file"`

	// Password selects password envelopes instead of a raw key.
	Password string

	// KeySize is the derived key size for password encryption.
	KeySize int `mapstructure:"key-size" validate:"oneof=16 24 32"`

	// Parallel is the number of files processed concurrently.
	Parallel int `validate:"min=1"`

	Quiet  bool
	Delete bool
	Stats  bool

	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	EncryptSuffix string `mapstructure:"encrypt-ext"`
	DecryptSuffix string `mapstructure:"decrypt-ext"`

	// Decrypt selects decryption; set by the subcommand, not a flag.
	Decrypt bool

	// Positional arguments.
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags and the
// key-source rules.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	sources := 0

	for _, set := range []bool{c.Key != "", c.KeyFile != "", c.Password != ""} {
		if set {
			sources++
		}
	}

	if sources == 0 {
		return errors.New("one of --key, --key-file, or --password is required")
	}

	if sources > 1 {
		return errors.New("--key, --key-file, and --password are mutually exclusive")
	}

	return nil
}

// Stdin reports whether the single positional argument requests
// stdin-to-stdout streaming.
func (c Config) Stdin() bool {
	return len(c.Files) == 1 && c.Files[0] == "-"
}
