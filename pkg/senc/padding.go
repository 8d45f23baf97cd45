package senc

import (
	"fmt"
	"io"
)

// padTail extends data to a full block with random tail padding: the pad
// bytes are drawn from random and the last byte encodes the pad length.
// A full padding block is appended when data is already block-aligned, so
// the result is never empty and the pad length is always 1..BlockSize.
func padTail(data []byte, random io.Reader) ([]byte, error) {
	n := BlockSize - len(data)%BlockSize

	pad := make([]byte, n)
	if _, err := io.ReadFull(random, pad[:n-1]); err != nil {
		return nil, fmt.Errorf("generating padding: %w", err)
	}

	pad[n-1] = byte(n)

	return append(data, pad...), nil
}

// unpadTail strips random tail padding from the final decrypted block.
func unpadTail(block []byte) ([]byte, error) {
	if len(block) == 0 {
		return nil, fmt.Errorf("%w: empty block", ErrInvalidPadding)
	}

	n := int(block[len(block)-1])
	if n < 1 || n > BlockSize || n > len(block) {
		return nil, fmt.Errorf("%w: length byte %d", ErrInvalidPadding, n)
	}

	return block[:len(block)-n], nil
}
