package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/senc/internal/logic"
	"github.com/idelchi/senc/pkg/senc"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshalConfig(args, false)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}

	addCommonFlags(cmd)
	cmd.Flags().Int("key-size", senc.DefaultKeySize, "Derived key size for password encryption (16, 24, or 32)")

	return cmd
}
