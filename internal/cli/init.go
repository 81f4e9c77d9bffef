package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drivekit-tools/cli/internal/conffile"
	"github.com/drivekit-tools/cli/internal/domain"
	"github.com/drivekit-tools/cli/internal/ui/style"
)

// NewInitCommand creates the init command, which writes a fresh
// settings file seeded with the known driver-layer keys.
func NewInitCommand(opts *GlobalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a settings file with defaults",
		Long: `Create the settings file seeded with every known driver-layer key,
its default value and a descriptive comment. Refuses to overwrite an
existing file unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")

	return cmd
}

func runInit(opts *GlobalOptions, force bool) error {
	path, err := opts.ResolveConfigPath()
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	content := defaultsTemplate()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	// A template that the engine cannot read back would be a bug worth
	// failing loudly on.
	cf, err := conffile.Open(path)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	_ = cf.Close()

	fmt.Println(style.Success("created " + path))
	return nil
}

// defaultsTemplate renders the known settings as a commented config
// document, one block per section.
func defaultsTemplate() string {
	var sb strings.Builder

	sb.WriteString("# drivekit settings\n")
	sb.WriteString("# Edit values below or use: dk set [section] <entry> <value>\n")

	for _, section := range domain.SettingSections() {
		sb.WriteString("\n")
		if section != "" {
			fmt.Fprintf(&sb, "[%s]\n", section)
		}
		for _, key := range domain.SettingsInSection(section) {
			if key.Description != "" {
				fmt.Fprintf(&sb, "# %s\n", key.Description)
			}
			fmt.Fprintf(&sb, "%s=%s\n", key.Name, key.Default)
		}
	}

	return sb.String()
}
