package senc

import (
	"crypto/aes"
	"crypto/rand"
	"io"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = aes.BlockSize

	// IVSize is the initialization vector size in bytes.
	IVSize = aes.BlockSize

	// DefaultKeySize selects AES-256 for password-based encryption.
	DefaultKeySize = 32

	// MaxSaltSize bounds the salt length accepted from an envelope header.
	MaxSaltSize = 1024
)

// Codec encrypts and decrypts self-describing envelopes. The zero value is
// not usable; construct with New.
//
// A Codec holds no per-call state and is safe for concurrent use as long as
// its random source and KDF are, which holds for the defaults.
type Codec struct {
	random io.Reader
	kdf    KDF
}

// Option configures a Codec.
type Option func(*Codec)

// WithRandom replaces the cryptographically secure random source used for IV
// generation and padding. Intended for tests that need deterministic output;
// production callers should keep the default crypto/rand reader.
func WithRandom(random io.Reader) Option {
	return func(c *Codec) {
		c.random = random
	}
}

// WithKDF replaces the password-to-key derivation function.
func WithKDF(kdf KDF) Option {
	return func(c *Codec) {
		c.kdf = kdf
	}
}

// New creates a Codec using crypto/rand and PBKDF2-SHA256 unless overridden.
func New(opts ...Option) *Codec {
	codec := &Codec{
		random: rand.Reader,
	}

	for _, opt := range opts {
		opt(codec)
	}

	if codec.kdf == nil {
		codec.kdf = &PBKDF2{Random: codec.random}
	}

	return codec
}

// validKeySize reports whether n selects AES-128, AES-192, or AES-256.
func validKeySize(n int) bool {
	switch n {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}
