package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute builds the command tree and runs it.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "senc [flags] command [flags]",
		Short: "Streaming symmetric-encryption utility",
		Long: `senc encrypts and decrypts files and streams into self-describing envelopes,
keyed either by a raw AES key or by a password. Pass "-" as the only file
argument to stream stdin to stdout.`,
		Version:      version,
		SilenceUsage: true,
	}

	viper.SetEnvPrefix("senc")
	viper.AutomaticEnv()

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewGenerateCommand())

	return root
}
