// Package commands provides the command-line interface for the senc tool.
//
// It implements commands for:
//   - key generation
//   - encryption
//   - decryption
package commands
