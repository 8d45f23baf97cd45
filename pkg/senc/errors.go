package senc

import "errors"

var (
	// ErrInvalidKeySize is returned when a key is not 16, 24, or 32 bytes.
	ErrInvalidKeySize = errors.New("senc: invalid key size, must be 16, 24, or 32 bytes")

	// ErrInvalidIVSize is returned when an IV is not exactly 16 bytes.
	ErrInvalidIVSize = errors.New("senc: invalid IV size, must be 16 bytes")

	// ErrMalformedEnvelope is returned when an envelope is truncated or its
	// header fields are out of range.
	ErrMalformedEnvelope = errors.New("senc: malformed envelope")

	// ErrInvalidPadding is returned when the final block's padding length
	// byte is out of range, typically a wrong key or corrupted ciphertext.
	ErrInvalidPadding = errors.New("senc: invalid padding")
)
