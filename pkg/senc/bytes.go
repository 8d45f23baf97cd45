package senc

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// EncryptBytes encrypts plaintext into a keyed envelope held in memory.
// It is a convenience wrapper over EncryptStream; no chunking details leak
// to the caller.
func (c *Codec) EncryptBytes(plaintext, key []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(IVSize + len(plaintext) + BlockSize)

	if err := c.EncryptStream(&out, bytes.NewReader(plaintext), key); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// DecryptBytes decrypts an in-memory keyed envelope.
func (c *Codec) DecryptBytes(envelope, key []byte) ([]byte, error) {
	var out bytes.Buffer

	if err := c.DecryptStream(&out, bytes.NewReader(envelope), key); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncryptBytesWithPassword encrypts plaintext into an in-memory password
// envelope, deriving a key of keySize bytes.
func (c *Codec) EncryptBytesWithPassword(plaintext []byte, password string, keySize int) ([]byte, error) {
	var out bytes.Buffer

	if err := c.EncryptStreamWithPassword(&out, bytes.NewReader(plaintext), password, keySize); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// DecryptBytesWithPassword decrypts an in-memory password envelope.
func (c *Codec) DecryptBytesWithPassword(envelope []byte, password string) ([]byte, error) {
	var out bytes.Buffer

	if err := c.DecryptStreamWithPassword(&out, bytes.NewReader(envelope), password); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncryptString encrypts a UTF-8 string into a Base64-encoded password
// envelope using DefaultKeySize.
func (c *Codec) EncryptString(plaintext, password string) (string, error) {
	envelope, err := c.EncryptBytesWithPassword([]byte(plaintext), password, DefaultKeySize)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// DecryptString decrypts a Base64-encoded password envelope back to a
// UTF-8 string.
func (c *Codec) DecryptString(envelope, password string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: decoding base64: %v", ErrMalformedEnvelope, err)
	}

	plaintext, err := c.DecryptBytesWithPassword(raw, password)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
