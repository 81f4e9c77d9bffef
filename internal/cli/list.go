package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/conffile"
	"github.com/drivekit-tools/cli/internal/ui/style"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	Raw bool
}

// NewListCommand creates the list command for printing all entries.
func NewListCommand(opts *GlobalOptions) *cobra.Command {
	listOpts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all sections and entries",
		Long: `List every section and entry of the settings file in file order.

By default only recognizable name=value entries are shown; --raw also
prints preserved comment and malformed lines verbatim.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, listOpts)
		},
	}

	cmd.Flags().BoolVar(&listOpts.Raw, "raw", false, "include preserved raw and comment lines")

	return cmd
}

func runList(opts *GlobalOptions, listOpts *ListOptions) error {
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
		entries, _ := cf.Entries(name)
		printSection(name, entries, listOpts.Raw)
	}

	return nil
}

func printSection(name string, entries []conffile.Entry, raw bool) {
	printedHeader := false
	header := func() {
		if !printedHeader {
			printedHeader = true
			if name != "" {
				fmt.Println(style.Header("[" + name + "]"))
			}
		}
	}

	// The default section prints without a header line, like the file.
	if name == "" {
		printedHeader = true
	}

	for _, e := range entries {
		if e.Name == "" {
			if raw && (e.Value != "" || e.Comment != "") {
				header()
				fmt.Println(style.Muted(e.Value + e.Comment))
			}
			continue
		}
		header()
		fmt.Printf("%s=%s\n", style.Key(e.Name), style.Value(e.Value))
	}

	if name != "" && !printedHeader {
		// Empty named sections still exist; show them.
		fmt.Println(style.Header("[" + name + "]"))
	}
}
