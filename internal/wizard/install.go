package wizard

import (
	"fmt"
	"time"
)

// InstallClaude is step 3: install fresh or offer an update. Exactly one
// npm install invocation happens per run. A declined or failed update
// keeps the existing installation and is not fatal; a failed fresh install
// is.
func (s *Session) InstallClaude() bool {
	s.StepHeader("Claude Code Installation")
	s.pace(500 * time.Millisecond)

	installed, version := s.Cmd.Probe(s.Cfg.ToolCommand)
	s.pace(500 * time.Millisecond)

	if installed {
		s.Success(fmt.Sprintf("%s already installed: %s", s.Cfg.ToolName, version))
		s.pace(300 * time.Millisecond)

		if s.UI.AskYesNo("Update to latest version?") {
			s.Loading("Updating " + s.Cfg.ToolName + "...")
			s.UI.Animate("Installing latest version", 3*time.Second)
			if code := s.Cmd.Run("npm", "install", "-g", s.Cfg.NPMPackage+"@latest", "--force"); code == 0 {
				s.Success(s.Cfg.ToolName + " updated successfully!")
			} else {
				s.Warning("Update failed, keeping current version")
			}
		}
		return true
	}

	s.Loading("Installing " + s.Cfg.ToolName + "...")
	s.UI.Animate("Downloading and installing", 3*time.Second)
	if code := s.Cmd.Run("npm", "install", "-g", s.Cfg.NPMPackage, "--force"); code != 0 {
		s.Error("Installation failed!")
		return false
	}
	s.Success(s.Cfg.ToolName + " installed successfully!")
	return true
}
