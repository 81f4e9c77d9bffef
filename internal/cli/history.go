package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/domain"
	"github.com/drivekit-tools/cli/internal/history"
	"github.com/drivekit-tools/cli/internal/paths"
	"github.com/drivekit-tools/cli/internal/ui/style"
)

// HistoryOptions contains the options for the history command.
type HistoryOptions struct {
	Section string
	Entry   string
	Limit   int
}

// NewHistoryCommand creates the history command for inspecting the
// change audit trail.
func NewHistoryCommand(opts *GlobalOptions) *cobra.Command {
	histOpts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded configuration changes",
		Long: `Show the recorded history of configuration changes, newest first.

Every dk set and every save from the interactive editor is recorded,
unless the history switch in the settings file is off.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(histOpts)
		},
	}

	cmd.Flags().StringVar(&histOpts.Section, "section", "", "only changes in this section")
	cmd.Flags().StringVar(&histOpts.Entry, "entry", "", "only changes to this entry")
	cmd.Flags().IntVar(&histOpts.Limit, "limit", 20, "maximum number of changes to show (0 for all)")

	return cmd
}

func runHistory(histOpts *HistoryOptions) error {
	st, err := history.New(paths.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = st.Close() }()

	changes, err := st.List(domain.ChangeFilter{
		Section: histOpts.Section,
		Entry:   histOpts.Entry,
		Limit:   histOpts.Limit,
	})
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Println(style.Muted("no recorded changes"))
		return nil
	}

	for _, c := range changes {
		fmt.Println(formatChange(c))
	}

	return nil
}

func formatChange(c domain.Change) string {
	target := c.Entry
	if c.Section != "" {
		target = c.Section + "/" + c.Entry
	}

	transition := fmt.Sprintf("%q -> %q", c.OldValue, c.NewValue)
	if !c.HadOld {
		transition = fmt.Sprintf("created as %q", c.NewValue)
	}

	return fmt.Sprintf("%s  %s  %s  %s",
		style.Muted(c.Timestamp.Local().Format("2006-01-02 15:04:05")),
		style.Key(target),
		transition,
		style.Muted("("+c.Source.String()+")"),
	)
}
