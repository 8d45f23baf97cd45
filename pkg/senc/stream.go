package senc

import (
	"bufio"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"sync"
)

const defaultBufferSize = 32 * 1024 // 32KB read buffer

// bufferPool provides reusable read buffers for the streaming transforms.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, defaultBufferSize)
	},
}

// encryptBlocks applies AES-CBC to src block by block, writing each
// ciphertext block to dst as it is produced. The final, possibly partial
// block is extended with random tail padding, so a full padding block is
// emitted even for block-aligned input. Key and IV are validated before any
// I/O takes place.
func (c *Codec) encryptBlocks(dst io.Writer, src io.Reader, key, iv []byte) error {
	mode, err := newCBC(key, iv, cipher.NewCBCEncrypter)
	if err != nil {
		return err
	}

	reader := bufio.NewReaderSize(src, defaultBufferSize)

	buf, ok := bufferPool.Get().([]byte)
	if !ok {
		return errors.New("invalid buffer type from pool") //nolint:err113
	}
	defer bufferPool.Put(buf) //nolint:staticcheck

	blockBuf := make([]byte, 0, 2*BlockSize)
	ciphertext := make([]byte, BlockSize)
	isEOF := false

	for !isEOF {
		n, err := reader.Read(buf)
		if n > 0 {
			blockBuf = append(blockBuf, buf[:n]...)
		}

		if err == io.EOF {
			isEOF = true
		} else if err != nil {
			return fmt.Errorf("reading plaintext: %w", err)
		}

		// Complete blocks are flushed immediately; padding always appends a
		// final block, so nothing needs to be held back.
		for len(blockBuf) >= BlockSize {
			mode.CryptBlocks(ciphertext, blockBuf[:BlockSize])

			if _, err := dst.Write(ciphertext); err != nil {
				return fmt.Errorf("writing encrypted block: %w", err)
			}

			blockBuf = blockBuf[BlockSize:]
		}
	}

	padded, err := padTail(blockBuf, c.random)
	if err != nil {
		return err
	}

	mode.CryptBlocks(ciphertext, padded)

	if _, err := dst.Write(ciphertext); err != nil {
		return fmt.Errorf("writing final encrypted block: %w", err)
	}

	return nil
}

// decryptBlocks reverses encryptBlocks, holding back the final block so its
// padding can be stripped once end-of-stream is reached.
func (c *Codec) decryptBlocks(dst io.Writer, src io.Reader, key, iv []byte) error {
	mode, err := newCBC(key, iv, cipher.NewCBCDecrypter)
	if err != nil {
		return err
	}

	reader := bufio.NewReaderSize(src, defaultBufferSize)

	buf, ok := bufferPool.Get().([]byte)
	if !ok {
		return errors.New("invalid buffer type from pool") //nolint:err113
	}
	defer bufferPool.Put(buf) //nolint:staticcheck

	blockBuf := make([]byte, 0, 2*BlockSize)
	plaintext := make([]byte, BlockSize)
	isEOF := false

	for !isEOF {
		n, err := reader.Read(buf)
		if n > 0 {
			blockBuf = append(blockBuf, buf[:n]...)
		}

		if err == io.EOF {
			isEOF = true
		} else if err != nil {
			return fmt.Errorf("reading ciphertext: %w", err)
		}

		// Keep one block back: the last block of the stream carries padding.
		for len(blockBuf) >= 2*BlockSize {
			mode.CryptBlocks(plaintext, blockBuf[:BlockSize])

			if _, err := dst.Write(plaintext); err != nil {
				return fmt.Errorf("writing decrypted block: %w", err)
			}

			blockBuf = blockBuf[BlockSize:]
		}
	}

	if len(blockBuf) != BlockSize {
		return fmt.Errorf("%w: ciphertext length is not a positive multiple of the block size", ErrMalformedEnvelope)
	}

	mode.CryptBlocks(plaintext, blockBuf)

	unpadded, err := unpadTail(plaintext)
	if err != nil {
		return err
	}

	if _, err := dst.Write(unpadded); err != nil {
		return fmt.Errorf("writing final decrypted block: %w", err)
	}

	return nil
}

// newCBC validates key and IV sizes and constructs a CBC mode instance.
func newCBC(key, iv []byte, construct func(cipher.Block, []byte) cipher.BlockMode) (cipher.BlockMode, error) {
	if !validKeySize(len(key)) {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidIVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return construct(block, iv), nil
}
