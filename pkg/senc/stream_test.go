package senc_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/idelchi/senc/pkg/senc"
)

// throttledReader serves its payload a few bytes at a time, mimicking a slow
// streaming source.
type throttledReader struct {
	data    []byte
	pos     int
	maxRead int
}

func (r *throttledReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := min(len(p), r.maxRead, len(r.data)-r.pos)
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n

	return n, nil
}

// observingSink records how far the source had advanced at each write, so a
// test can assert that output is produced while input is still pending.
type observingSink struct {
	out     bytes.Buffer
	source  *throttledReader
	samples []int
}

func (s *observingSink) Write(p []byte) (int, error) {
	s.samples = append(s.samples, s.source.pos)

	return s.out.Write(p)
}

func TestEncryptStreamIsIncremental(t *testing.T) {
	const payloadSize = 2 << 20 // 2 MiB

	payload := make([]byte, payloadSize)
	for i := range payload {
		payload[i] = byte(i * 31)
	}

	source := &throttledReader{data: payload, maxRead: 4096}
	sink := &observingSink{source: source}

	codec := senc.New()
	key := randomKey(t, 32)

	if err := codec.EncryptStream(sink, source, key); err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	// Ciphertext must have been flushed while the source still held data,
	// i.e. the transform never accumulated the whole payload.
	var midstream int

	for _, pos := range sink.samples {
		if pos > 0 && pos < payloadSize {
			midstream++
		}
	}

	if midstream == 0 {
		t.Fatal("no writes occurred while input was still pending")
	}

	var decrypted bytes.Buffer
	if err := codec.DecryptStream(&decrypted, &sink.out, key); err != nil {
		t.Fatalf("decrypting: %v", err)
	}

	if !bytes.Equal(decrypted.Bytes(), payload) {
		t.Fatal("streamed round trip mismatch")
	}
}

func TestDecryptStreamFromThrottledSource(t *testing.T) {
	codec := senc.New()
	key := randomKey(t, 24)
	plaintext := bytes.Repeat([]byte("stream"), 10_000)

	envelope, err := codec.EncryptBytes(plaintext, key)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	source := &throttledReader{data: envelope, maxRead: 7}

	var decrypted bytes.Buffer
	if err := codec.DecryptStream(&decrypted, source, key); err != nil {
		t.Fatalf("decrypting: %v", err)
	}

	if !bytes.Equal(decrypted.Bytes(), plaintext) {
		t.Fatal("throttled round trip mismatch")
	}
}
