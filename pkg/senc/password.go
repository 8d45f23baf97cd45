package senc

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	saltLenSize = 4 // int32, little-endian
	keySizeSize = 1
)

// EncryptStreamWithPassword encrypts src into a password envelope on dst.
// The key is derived from password by the codec's KDF at the requested size
// (16, 24, or 32 bytes), and the envelope is prefixed with a length-prefixed
// salt and an explicit key-size byte so decryption needs only the password.
func (c *Codec) EncryptStreamWithPassword(dst io.Writer, src io.Reader, password string, keySize int) error {
	if !validKeySize(keySize) {
		return fmt.Errorf("%w: requested %d bytes", ErrInvalidKeySize, keySize)
	}

	key, salt, err := c.kdf.Derive(password, keySize)
	if err != nil {
		return fmt.Errorf("deriving key: %w", err)
	}
	defer clear(key)

	if len(salt) == 0 || len(salt) > MaxSaltSize {
		return fmt.Errorf("deriving key: KDF produced a %d-byte salt, want 1..%d", len(salt), MaxSaltSize)
	}

	header := make([]byte, 0, saltLenSize+len(salt)+keySizeSize)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(salt))) //nolint:gosec // bounded by MaxSaltSize
	header = append(header, salt...)
	header = append(header, byte(keySize))

	if _, err := dst.Write(header); err != nil {
		return fmt.Errorf("writing envelope header: %w", err)
	}

	return c.EncryptStream(dst, src, key)
}

// DecryptStreamWithPassword decrypts a password envelope from src onto dst,
// re-deriving the key from the embedded salt and key-size field.
func (c *Codec) DecryptStreamWithPassword(dst io.Writer, src io.Reader, password string) error {
	var lenBuf [saltLenSize]byte
	if _, err := io.ReadFull(src, lenBuf[:]); err != nil {
		return fmt.Errorf("%w: reading salt length: %v", ErrMalformedEnvelope, err)
	}

	saltLen := int(int32(binary.LittleEndian.Uint32(lenBuf[:])))
	if saltLen < 1 || saltLen > MaxSaltSize {
		return fmt.Errorf("%w: salt length %d out of range", ErrMalformedEnvelope, saltLen)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(src, salt); err != nil {
		return fmt.Errorf("%w: reading salt: %v", ErrMalformedEnvelope, err)
	}

	var sizeBuf [keySizeSize]byte
	if _, err := io.ReadFull(src, sizeBuf[:]); err != nil {
		return fmt.Errorf("%w: reading key size: %v", ErrMalformedEnvelope, err)
	}

	keySize := int(sizeBuf[0])
	if !validKeySize(keySize) {
		return fmt.Errorf("%w: unsupported key size %d", ErrMalformedEnvelope, keySize)
	}

	key, err := c.kdf.DeriveWithSalt(password, salt, keySize)
	if err != nil {
		return fmt.Errorf("deriving key: %w", err)
	}
	defer clear(key)

	return c.DecryptStream(dst, src, key)
}
