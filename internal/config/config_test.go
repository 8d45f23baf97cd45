package config_test

import (
	"testing"

	"github.com/idelchi/senc/internal/config"
)

func valid() config.Config {
	return config.Config{
		Password: "pw",
		KeySize:  32,
		Parallel: 4,
		Files:    []string{"a.txt"},
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid password config", mutate: func(_ *config.Config) {}},
		{name: "valid key config", mutate: func(c *config.Config) {
			c.Password = ""
			c.Key = "00112233445566778899aabbccddeeff"
		}},
		{name: "no key source", mutate: func(c *config.Config) {
			c.Password = ""
		}, wantErr: true},
		{name: "key and password", mutate: func(c *config.Config) {
			c.Key = "00112233445566778899aabbccddeeff"
		}, wantErr: true},
		{name: "key file and password", mutate: func(c *config.Config) {
			c.KeyFile = "key.txt"
		}, wantErr: true},
		{name: "non-hex key", mutate: func(c *config.Config) {
			c.Password = ""
			c.Key = "not-hex"
		}, wantErr: true},
		{name: "bad key size", mutate: func(c *config.Config) {
			c.KeySize = 20
		}, wantErr: true},
		{name: "no files", mutate: func(c *config.Config) {
			c.Files = nil
		}, wantErr: true},
		{name: "zero workers", mutate: func(c *config.Config) {
			c.Parallel = 0
		}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigStdin(t *testing.T) {
	cfg := valid()

	if cfg.Stdin() {
		t.Fatal("regular file list reported as stdin mode")
	}

	cfg.Files = []string{"-"}
	if !cfg.Stdin() {
		t.Fatal(`files = ["-"] not reported as stdin mode`)
	}

	cfg.Files = []string{"-", "a.txt"}
	if cfg.Stdin() {
		t.Fatal("mixed file list reported as stdin mode")
	}
}
