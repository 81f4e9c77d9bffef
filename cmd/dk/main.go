package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/drivekit-tools/cli/internal/cli"
	"github.com/drivekit-tools/cli/internal/log"
	"github.com/drivekit-tools/cli/internal/paths"
	"github.com/drivekit-tools/cli/internal/ui/style"
)

// Version is set at build time using ldflags
var Version = "dev"

func main() {
	// Enable styling if stdout is a terminal and --no-color is not set.
	// This runs before Cobra parses flags so every byte of output is
	// consistent.
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !hasFlag("--no-color")
	style.Init(enableColor)

	if err := log.Init(paths.LogFilePath(), log.ParseLevel(os.Getenv("DK_LOG_LEVEL"))); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer func() { _ = log.Close() }()

	root := cli.NewRootCommand(Version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		os.Exit(1)
	}
}

func hasFlag(name string) bool {
	for _, a := range os.Args[1:] {
		if a == name {
			return true
		}
	}
	return false
}
