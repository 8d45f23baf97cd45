// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/senc/internal/config"
)

// Run is the main logic of the application.
func Run(cfg *config.Config) error {
	start := time.Now()

	if cfg.Stdin() {
		return runStdin(cfg)
	}

	proc, err := NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}
	defer proc.Close()

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// runStdin streams stdin to stdout through the codec, exercising the
// streaming entry points end to end.
func runStdin(cfg *config.Config) error {
	proc, err := NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}
	defer proc.Close()

	if cfg.Decrypt {
		if err := proc.decrypt(os.Stdout, os.Stdin); err != nil {
			return fmt.Errorf("decrypting stream: %w", err)
		}

		return nil
	}

	if err := proc.encrypt(os.Stdout, os.Stdin); err != nil {
		return fmt.Errorf("encrypting stream: %w", err)
	}

	return nil
}

func printStats(processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
