package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/conffile"
	"github.com/drivekit-tools/cli/internal/domain"
	"github.com/drivekit-tools/cli/internal/history"
	"github.com/drivekit-tools/cli/internal/log"
	"github.com/drivekit-tools/cli/internal/paths"
)

// NewSetCommand creates the set command for writing a single entry.
func NewSetCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [section] <entry> <value>",
		Short: "Set the value of one entry",
		Long: `Set the value of one entry, creating the settings file, the section
and the entry as needed. Everything else in the file, comments and
unknown lines included, is left exactly as it was.

With two arguments the entry lives in the unnamed default section; with
three, the first names the section.

Examples:
  dk set default_adapter xu1541
  dk set daemon poll_interval_ms 100`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(opts, args)
		},
	}

	return cmd
}

func runSet(opts *GlobalOptions, args []string) error {
	var section, entry, value string
	if len(args) == 2 {
		entry, value = args[0], args[1]
	} else {
		section, entry, value = args[0], args[1], args[2]
	}

	path, err := opts.ResolveConfigPath()
	if err != nil {
		return err
	}

	cf, err := conffile.Create(path)
	if err != nil {
		return err
	}

	old, hadOld := cf.Get(section, entry)
	recordHistory := historyEnabled(cf)

	if err := cf.Set(section, entry, value); err != nil {
		_ = cf.Close()
		return err
	}

	if err := cf.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	log.Info("set %s/%s in %s", displaySection(section), entry, path)

	if recordHistory {
		recordChange(domain.Change{
			Section:  section,
			Entry:    entry,
			OldValue: old,
			HadOld:   hadOld,
			NewValue: value,
			Source:   domain.SourceCLI,
		})
	}

	return nil
}

// historyEnabled reads the "history" switch from the settings file
// itself. Anything but an explicit off value counts as enabled.
func historyEnabled(cf *conffile.File) bool {
	v, ok := cf.Get("", "history")
	if !ok {
		return true
	}
	switch v {
	case "false", "0", "off", "no":
		return false
	}
	return true
}

// recordChange appends one change to the history database. Failures are
// logged, never fatal: the audit trail is an aid, not part of the save.
func recordChange(change domain.Change) {
	st, err := history.New(paths.HistoryDBPath())
	if err != nil {
		log.Warn("history: open store: %v", err)
		return
	}
	defer func() { _ = st.Close() }()

	if err := st.Insert(change); err != nil {
		log.Warn("history: record change: %v", err)
	}
}
