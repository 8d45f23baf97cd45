package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, err := cmd.Flags().GetInt("size")
			if err != nil {
				return err
			}

			switch size {
			case 16, 24, 32:
			default:
				return fmt.Errorf("invalid key size %d, must be 16, 24, or 32", size)
			}

			key := make([]byte, size)
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Println(hex.EncodeToString(key)) //nolint:forbidigo

			return nil
		},
	}

	cmd.Flags().IntP("size", "s", 32, "Key size in bytes (16, 24, or 32)")

	return cmd
}
