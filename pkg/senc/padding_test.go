package senc

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestPadTail(t *testing.T) {
	for _, size := range []int{0, 1, 7, 15} {
		t.Run(fmt.Sprintf("partial%d", size), func(t *testing.T) {
			data := bytes.Repeat([]byte{0x11}, size)

			padded, err := padTail(data, rand.Reader)
			if err != nil {
				t.Fatalf("padding: %v", err)
			}

			if len(padded) != BlockSize {
				t.Fatalf("padded length is %d, want %d", len(padded), BlockSize)
			}

			if got := int(padded[len(padded)-1]); got != BlockSize-size {
				t.Fatalf("pad length byte is %d, want %d", got, BlockSize-size)
			}

			unpadded, err := unpadTail(padded)
			if err != nil {
				t.Fatalf("unpadding: %v", err)
			}

			if !bytes.Equal(unpadded, data) {
				t.Fatal("unpad did not restore the original bytes")
			}
		})
	}
}

func TestPadTailAlignedInputGainsFullBlock(t *testing.T) {
	padded, err := padTail(nil, rand.Reader)
	if err != nil {
		t.Fatalf("padding: %v", err)
	}

	if len(padded) != BlockSize {
		t.Fatalf("padded length is %d, want a full block", len(padded))
	}

	if padded[BlockSize-1] != BlockSize {
		t.Fatalf("pad length byte is %d, want %d", padded[BlockSize-1], BlockSize)
	}
}

func TestUnpadTailRejectsBadLengthByte(t *testing.T) {
	for _, last := range []byte{0, BlockSize + 1, 0xff} {
		block := make([]byte, BlockSize)
		block[BlockSize-1] = last

		if _, err := unpadTail(block); !errors.Is(err, ErrInvalidPadding) {
			t.Fatalf("length byte %d: got %v, want ErrInvalidPadding", last, err)
		}
	}

	if _, err := unpadTail(nil); !errors.Is(err, ErrInvalidPadding) {
		t.Fatal("empty block did not fail padding validation")
	}
}

func TestTransformValidatesIVSize(t *testing.T) {
	codec := New()
	key := make([]byte, 16)

	for _, ivSize := range []int{0, 15, 17, 32} {
		iv := make([]byte, ivSize)

		err := codec.encryptBlocks(io.Discard, bytes.NewReader(nil), key, iv)
		if !errors.Is(err, ErrInvalidIVSize) {
			t.Fatalf("encrypt with %d-byte IV: got %v, want ErrInvalidIVSize", ivSize, err)
		}

		err = codec.decryptBlocks(io.Discard, bytes.NewReader(make([]byte, BlockSize)), key, iv)
		if !errors.Is(err, ErrInvalidIVSize) {
			t.Fatalf("decrypt with %d-byte IV: got %v, want ErrInvalidIVSize", ivSize, err)
		}
	}
}

func TestTransformValidatesBeforeWriting(t *testing.T) {
	codec := New()

	// A bad key must be rejected before anything reaches the destination.
	var out bytes.Buffer

	err := codec.EncryptStream(&out, bytes.NewReader([]byte("data")), make([]byte, 15))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("got %v, want ErrInvalidKeySize", err)
	}

	if out.Len() != 0 {
		t.Fatalf("destination received %d bytes despite invalid key", out.Len())
	}
}
