package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CreateDesktopShortcut is step 6: write a launcher batch file to the
// desktop. Skipped silently when there is no desktop directory or no
// resolved tool path; a write failure is only a warning.
func (s *Session) CreateDesktopShortcut() bool {
	s.StepHeader("Creating Desktop Shortcut")
	s.pace(500 * time.Millisecond)

	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	desktop := filepath.Join(home, "Desktop")
	if _, err := os.Stat(desktop); err != nil || s.ClaudePath == "" {
		return false
	}

	if err := writeShortcut(desktop, s.Cfg.ToolName, s.ClaudePath); err != nil {
		s.Warning(fmt.Sprintf("Could not create shortcut: %v", err))
		s.pace(300 * time.Millisecond)
		return false
	}
	s.Success("Desktop shortcut created")
	s.pace(300 * time.Millisecond)
	return true
}

// writeShortcut writes the fixed launcher template: start the tool, keep
// the window open for acknowledgment.
func writeShortcut(desktopDir, toolName, toolPath string) error {
	content := fmt.Sprintf("@echo off\r\n"+
		"title %s\r\n"+
		"echo Starting %s...\r\n"+
		"\"%s\"\r\n"+
		"pause\r\n", toolName, toolName, toolPath)
	return os.WriteFile(filepath.Join(desktopDir, toolName+".bat"), []byte(content), 0o644)
}
