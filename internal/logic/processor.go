package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/awnumar/memguard"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/senc/internal/config"
	"github.com/idelchi/senc/internal/fileutil"
	"github.com/idelchi/senc/pkg/senc"
)

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// codec performs the actual envelope encryption
	codec *senc.Codec

	// key holds raw key bytes in locked memory; nil in password mode
	key *memguard.LockedBuffer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration,
// resolving the raw key unless a password was supplied. Caller must call
// Close to release the key material.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	processor := &Processor{
		cfg:     cfg,
		codec:   senc.New(),
		results: make(chan Result, len(cfg.Files)),
	}

	if cfg.Password != "" {
		return processor, nil
	}

	var (
		raw []byte
		err error
	)

	switch {
	case cfg.Key != "":
		raw, err = key.FromHex(cfg.Key)
	case cfg.KeyFile != "":
		data, readErr := os.ReadFile(cfg.KeyFile)
		if readErr != nil {
			return nil, fmt.Errorf("reading key file: %w", readErr)
		}

		raw, err = key.FromHex(strings.TrimSpace(string(data)))
	}

	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	switch len(raw) {
	case 16, 24, 32:
	default:
		return nil, errors.New("key must be 16, 24, or 32 bytes (32, 48, or 64 hex characters)")
	}

	// NewBufferFromBytes wipes the source slice.
	processor.key = memguard.NewBufferFromBytes(raw)

	return processor, nil
}

// Close releases the locked key material.
func (p *Processor) Close() {
	if p.key != nil {
		p.key.Destroy()
	}
}

// encrypt reads plaintext from reader and writes a self-describing envelope
// to writer, keyed by the configured key or password.
func (p *Processor) encrypt(writer io.Writer, reader io.Reader) error {
	if p.cfg.Password != "" {
		return p.codec.EncryptStreamWithPassword(writer, reader, p.cfg.Password, p.cfg.KeySize)
	}

	return p.codec.EncryptStream(writer, reader, p.key.Bytes())
}

// decrypt reverses encrypt.
func (p *Processor) decrypt(writer io.Writer, reader io.Reader) error {
	if p.cfg.Password != "" {
		return p.codec.DecryptStreamWithPassword(writer, reader, p.cfg.Password)
	}

	return p.codec.DecryptStream(writer, reader, p.key.Bytes())
}

// ProcessFiles concurrently processes all files specified in the
// configuration. Returns the number of successfully processed files, the
// number of errors, and the total output size.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts a single file through a staged atomic
// write.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	staged, err := fileutil.Stage(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer staged.Discard(&err)

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	if p.cfg.Decrypt {
		if err := p.decrypt(staged.File, inFile); err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		if err := p.encrypt(staged.File, inFile); err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	if err := inFile.Close(); err != nil {
		return 0, fmt.Errorf("closing input file: %w", err)
	}

	size, err = staged.Commit(outPath, staged.Exec, p.cfg.PreserveTimestamps)
	if err != nil {
		return 0, err
	}

	return size, nil
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.EncryptSuffix

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.EncryptSuffix)
		ext = p.cfg.DecryptSuffix
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
