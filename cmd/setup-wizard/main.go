// Command setup-wizard is the interactive Claude Code installer for
// Windows: it checks prerequisites, installs or updates the CLI through
// npm, persists npm's prefix in the user PATH, verifies the result and
// drops a desktop launcher.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"claude_setup/internal/config"
	"claude_setup/internal/logfile"
	"claude_setup/internal/sysinfo"
	"claude_setup/internal/termui"
	"claude_setup/internal/wizard"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Any uncaught fault becomes a printed message and exit 1, never a
	// stack trace in the operator's face.
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n  %s\n", termui.ErrorStyle.Render(fmt.Sprintf("Unexpected error: %v", r)))
			code = 1
		}
	}()

	// Ctrl-C anywhere, including while blocked on a prompt, is a clean
	// cancellation.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Printf("\n\n  %s\n", termui.WarningStyle.Render("Installation cancelled by user"))
		os.Exit(0)
	}()

	sysinfo.EnableVirtualTerminal()

	cfg := config.Default()
	log := logfile.New(cfg.LogDirName)
	defer log.Close()

	sess := wizard.NewSession(cfg, termui.New(), log)
	return sess.Run()
}
