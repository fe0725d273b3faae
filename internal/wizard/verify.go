package wizard

import (
	"fmt"
	"os"
	"time"
)

// VerifyInstallation is step 5: purely diagnostic, never fatal. The
// executable is re-resolved two ways; a PATH-based failure right after a
// PATH write is expected (this process's environment is stale) and only
// reported as information.
func (s *Session) VerifyInstallation() {
	s.StepHeader("Installation Verification")
	s.pace(500 * time.Millisecond)

	if s.ClaudePath != "" {
		if _, err := os.Stat(s.ClaudePath); err == nil {
			version, code := s.Cmd.Output(s.ClaudePath, "--version")
			s.pace(300 * time.Millisecond)
			if code == 0 {
				s.Success(fmt.Sprintf("%s v%s verified", s.Cfg.ToolName, version))
				s.pace(300 * time.Millisecond)
				s.Success("Direct execution works")
			} else {
				s.Warning("Direct execution test failed")
			}
			s.pace(300 * time.Millisecond)
		}
	}

	resolved, _ := s.Cmd.Probe(s.Cfg.ToolCommand)
	s.pace(300 * time.Millisecond)
	if resolved {
		s.Success("PATH configuration verified")
	} else {
		s.Info("PATH not updated yet (requires new terminal)")
	}
}
