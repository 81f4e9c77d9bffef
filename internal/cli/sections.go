package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/conffile"
	"github.com/drivekit-tools/cli/internal/ui/style"
)

// NewSectionsCommand creates the sections command.
func NewSectionsCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List section names in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(opts)
		},
	}

	return cmd
}

func runSections(opts *GlobalOptions) error {
	path, err := opts.ResolveConfigPath()
	if err != nil {
		return err
	}

	cf, err := conffile.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = cf.Close() }()

	for _, name := range cf.SectionNames() {
		if name == "" {
			fmt.Println(style.Muted("(default)"))
			continue
		}
		fmt.Println(name)
	}

	return nil
}
