package senc

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultIterations is the PBKDF2 iteration count used when none is set.
const DefaultIterations = 210_000

// KDF derives encryption keys from passwords. Implementations must be safe
// for concurrent use.
//
// Derive emits the salt alongside the key so the salt can be embedded in the
// envelope; DeriveWithSalt reproduces the key on decryption. The default KDF
// emits a salt as long as the requested key, matching the envelope's
// historical shape, but decoders rely on the envelope's key-size field
// rather than the salt length.
type KDF interface {
	// Derive generates a fresh salt and derives a key of keySize bytes.
	Derive(password string, keySize int) (key, salt []byte, err error)

	// DeriveWithSalt derives a key of keySize bytes from a known salt.
	DeriveWithSalt(password string, salt []byte, keySize int) ([]byte, error)
}

// PBKDF2 derives keys with PBKDF2-SHA256. The zero value uses
// DefaultIterations and crypto/rand.
type PBKDF2 struct {
	// Iterations is the PBKDF2 iteration count; 0 means DefaultIterations.
	Iterations int

	// Random supplies salt bytes; nil means crypto/rand.
	Random io.Reader
}

var _ KDF = (*PBKDF2)(nil)

// Derive generates a salt of keySize bytes and derives a key of the same size.
func (p *PBKDF2) Derive(password string, keySize int) ([]byte, []byte, error) {
	salt := make([]byte, keySize)
	if _, err := io.ReadFull(p.random(), salt); err != nil {
		return nil, nil, fmt.Errorf("generating salt: %w", err)
	}

	key, err := p.DeriveWithSalt(password, salt, keySize)
	if err != nil {
		return nil, nil, err
	}

	return key, salt, nil
}

// DeriveWithSalt derives a key of keySize bytes from the given salt.
func (p *PBKDF2) DeriveWithSalt(password string, salt []byte, keySize int) ([]byte, error) {
	if !validKeySize(keySize) {
		return nil, fmt.Errorf("%w: requested %d bytes", ErrInvalidKeySize, keySize)
	}

	return pbkdf2.Key([]byte(password), salt, p.iterations(), keySize, sha256.New), nil
}

func (p *PBKDF2) iterations() int {
	if p.Iterations > 0 {
		return p.Iterations
	}

	return DefaultIterations
}

func (p *PBKDF2) random() io.Reader {
	if p.Random != nil {
		return p.Random
	}

	return rand.Reader
}
