// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// StagedWrite is an in-progress atomic file write: output accumulates in a
// temporary file next to the destination and becomes visible only on Commit.
type StagedWrite struct {
	// File receives the output bytes.
	File *os.File

	// Exec records whether the source file had any execute bit set.
	Exec bool

	name    string
	srcInfo os.FileInfo
}

// Stage stats the source file and creates the temporary output file.
// Caller must defer Discard.
func Stage(src, dst string) (*StagedWrite, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	const executableBits = 0o111

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".senc-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &StagedWrite{
		File:    tmp,
		Exec:    info.Mode()&executableBits != 0,
		name:    tmp.Name(),
		srcInfo: info,
	}, nil
}

// Discard closes the temporary file and removes it if the write failed.
func (s *StagedWrite) Discard(errp *error) {
	s.File.Close() //nolint:gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(s.name) //nolint:gosec // best-effort cleanup
	}
}

// Commit sets permissions, renames the temporary file onto dst, optionally
// carries over the source timestamps, and returns the output size.
func (s *StagedWrite) Commit(dst string, exec, preserveTimestamps bool) (int64, error) {
	const ownerReadWrite = 0o600

	perm := os.FileMode(ownerReadWrite)
	if exec {
		perm |= 0o111
	}

	if err := os.Chmod(s.name, perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := s.File.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(s.name, dst); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	if preserveTimestamps {
		modTime := s.srcInfo.ModTime()
		if err := os.Chtimes(dst, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(dst)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", dst, err)
	}

	return outInfo.Size(), nil
}
