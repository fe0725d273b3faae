package wizard

import "claude_setup/internal/termui"

// Run executes the full pipeline and returns the process exit code.
// Steps 1-4 halt the run on failure with a remediation box and a pause;
// verification and the shortcut are best effort.
func (s *Session) Run() int {
	s.UI.ClearScreen()
	s.UI.Banner(s.Cfg.WizardVersion)

	if !s.CheckSystemRequirements() {
		s.UI.Box("ADMINISTRATOR REQUIRED", []string{
			"This installer needs Administrator privileges.",
			"",
			"Please:",
			"  1. Right-click on Command Prompt",
			"  2. Select 'Run as administrator'",
			"  3. Run this script again",
		}, termui.ErrorStyle)
		s.UI.Pause("Press Enter to exit...")
		return 1
	}

	if !s.CheckNodeJS() {
		s.UI.Box("NODE.JS REQUIRED", []string{
			"Node.js is not installed or outdated.",
			"",
			"Please download and install from:",
			"  " + s.Cfg.NodeDownloadURL,
			"",
			"Then run this installer again.",
		}, termui.ErrorStyle)
		s.UI.Pause("Press Enter to exit...")
		return 1
	}

	if !s.InstallClaude() {
		s.UI.Pause("Press Enter to exit...")
		return 1
	}

	if !s.ConfigurePath() {
		s.UI.Pause("Press Enter to exit...")
		return 1
	}

	s.VerifyInstallation()
	s.CreateDesktopShortcut()
	s.ShowSummary()

	s.UI.Pause("Press Enter to exit...")
	return 0
}
