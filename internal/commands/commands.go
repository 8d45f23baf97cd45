package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/senc/internal/config"
	"github.com/idelchi/senc/pkg/senc"
)

// addCommonFlags registers the flags shared by the encrypt and decrypt
// subcommands.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Encryption key, hex-encoded (16, 24, or 32 bytes)")
	cmd.Flags().StringP("key-file", "f", "", "Path to a file holding the hex-encoded encryption key")
	cmd.Flags().StringP("password", "p", "", "Password to derive the encryption key from")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful processing")
	cmd.Flags().Bool("stats", false, "Print processing statistics")
	cmd.Flags().Bool("preserve-timestamps", false, "Keep the source file's timestamps on the output")
	cmd.Flags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
}

// unmarshalConfig assembles the configuration from viper and validates it.
func unmarshalConfig(args []string, decrypt bool) (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Files = args
	cfg.Decrypt = decrypt

	// The decrypt command carries no key-size flag; the envelope encodes it.
	if cfg.KeySize == 0 {
		cfg.KeySize = senc.DefaultKeySize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
