package senc

import (
	"fmt"
	"io"
)

// EncryptStream encrypts src into a keyed envelope on dst: a fresh 16-byte
// IV followed by the ciphertext. The key must be 16, 24, or 32 bytes and is
// validated before anything is written.
func (c *Codec) EncryptStream(dst io.Writer, src io.Reader, key []byte) error {
	if !validKeySize(len(key)) {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return fmt.Errorf("generating IV: %w", err)
	}

	if _, err := dst.Write(iv); err != nil {
		return fmt.Errorf("writing IV: %w", err)
	}

	return c.encryptBlocks(dst, src, key, iv)
}

// DecryptStream decrypts a keyed envelope from src onto dst, reading the IV
// as the first 16 bytes of the stream.
func (c *Codec) DecryptStream(dst io.Writer, src io.Reader, key []byte) error {
	if !validKeySize(len(key)) {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(src, iv); err != nil {
		return fmt.Errorf("%w: reading IV: %v", ErrMalformedEnvelope, err)
	}

	return c.decryptBlocks(dst, src, key, iv)
}
