package senc_test

import (
	"encoding/hex"
	"errors"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/senc/pkg/senc"
)

// Case is a single malformed-envelope case from the YAML golden file.
type Case struct {
	Name        string `yaml:"name"`
	Envelope    string `yaml:"envelope"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of malformed-envelope cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadMalformed(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/malformed.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("no malformed-envelope groups found")
	}

	return groups
}

func TestMalformedEnvelopes(t *testing.T) {
	codec := senc.New(senc.WithKDF(fastKDF()))
	key := make([]byte, 32)

	for _, group := range loadMalformed(t) {
		t.Run(group.Name, func(t *testing.T) {
			for _, tc := range group.Cases {
				t.Run(tc.Name, func(t *testing.T) {
					envelope, err := hex.DecodeString(tc.Envelope)
					if err != nil {
						t.Fatalf("decoding envelope hex: %v", err)
					}

					if group.Name == "password-envelopes" {
						_, err = codec.DecryptBytesWithPassword(envelope, "pw")
					} else {
						_, err = codec.DecryptBytes(envelope, key)
					}

					if !errors.Is(err, senc.ErrMalformedEnvelope) {
						t.Fatalf("got %v, want ErrMalformedEnvelope", err)
					}
				})
			}
		})
	}
}
