package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPathCommand creates the path command, which prints the resolved
// settings file location.
func NewPathCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.ResolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	return cmd
}
