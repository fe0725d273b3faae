package config

import (
	"os/user"
	"time"

	"github.com/denisbrodbeck/machineid"
)

// Config holds everything the wizard needs to know about the tool it
// installs and about the machine it runs on.
type Config struct {
	WizardName    string
	WizardVersion string

	// ToolName is the display name, ToolCommand the command the shell resolves.
	ToolName    string
	ToolCommand string

	// NPMPackage is the npm package installed globally for ToolCommand.
	NPMPackage string

	// ExecutableNames are the conventional file names searched for inside the
	// npm prefix directory, in order of preference.
	ExecutableNames []string

	// MinNodeMajor is the lowest Node.js major version that avoids a warning.
	MinNodeMajor int

	NodeDownloadURL string

	// CommandTimeout bounds every external command invocation.
	CommandTimeout time.Duration

	// MinFreeDiskBytes is the free-space threshold below which the
	// requirements step warns.
	MinFreeDiskBytes uint64

	// LogDirName is the per-user log directory, relative to the home directory.
	LogDirName string

	// Session metadata, recorded in the log preamble.
	UserName  string
	MachineID string
}

// Default returns the wizard configuration for Claude Code.
func Default() *Config {
	machineID, err := machineid.ID()
	if err != nil {
		machineID = "unknown-machine-id"
	}
	userName := "unknown"
	if u, err := user.Current(); err == nil {
		userName = u.Username
	}

	return &Config{
		WizardName:       "Claude Code Setup Wizard",
		WizardVersion:    "2.0.2",
		ToolName:         "Claude Code",
		ToolCommand:      "claude",
		NPMPackage:       "@anthropic-ai/claude-code",
		ExecutableNames:  []string{"claude.cmd", "claude.exe"},
		MinNodeMajor:     16,
		NodeDownloadURL:  "https://nodejs.org",
		CommandTimeout:   30 * time.Second,
		MinFreeDiskBytes: 1 << 30,
		LogDirName:       ".claude_setup_logs",
		UserName:         userName,
		MachineID:        machineID,
	}
}
