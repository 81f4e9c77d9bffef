package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/conffile"
)

// NewGetCommand creates the get command for reading a single entry.
func NewGetCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [section] <entry>",
		Short: "Print the value of one entry",
		Long: `Print the value of one entry from the settings file.

With a single argument the entry is looked up in the unnamed default
section; with two, the first names the section. Lookups are
case-sensitive.

Examples:
  dk get default_adapter          # default section
  dk get daemon poll_interval_ms  # [daemon] section`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args)
		},
	}

	return cmd
}

func runGet(opts *GlobalOptions, args []string) error {
	section, entry := splitTarget(args)

	path, err := opts.ResolveConfigPath()
	if err != nil {
		return err
	}

	cf, err := conffile.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = cf.Close() }()

	value, ok := cf.Get(section, entry)
	if !ok {
		return fmt.Errorf("no entry %q in section %q", entry, displaySection(section))
	}

	fmt.Println(value)
	return nil
}

// splitTarget interprets positional args as (section, entry): one arg
// addresses the default section, two name the section explicitly.
func splitTarget(args []string) (section, entry string) {
	if len(args) == 1 {
		return "", args[0]
	}
	return args[0], args[1]
}

// displaySection names a section for messages; the unnamed default
// section shows as "(default)".
func displaySection(section string) string {
	if section == "" {
		return "(default)"
	}
	return section
}
