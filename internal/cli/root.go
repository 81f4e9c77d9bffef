// Package cli provides the Cobra command definitions for dk.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/paths"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
}

// NewRootCommand creates the dk root command with all subcommands
// attached.
func NewRootCommand(version string) *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "dk",
		Short: "Manage driver control-layer settings",
		Long: `dk reads and edits the drivekit settings file (~/.dkrc by default),
a section/entry configuration document whose comments, ordering and even
malformed lines survive every edit untouched.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "settings file path (default ~/.dkrc, or $DKRC)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSectionsCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))

	return cmd
}

// ResolveConfigPath returns the settings file to operate on: the
// --config flag if given, then the DKRC environment variable, then the
// default ~/.dkrc.
func (o *GlobalOptions) ResolveConfigPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	if env := os.Getenv("DKRC"); env != "" {
		return env, nil
	}
	return paths.ConfigFilePath()
}
