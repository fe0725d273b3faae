package wizard

import (
	"fmt"
	"os"
	"time"

	"claude_setup/internal/sysinfo"
)

// CheckSystemRequirements is step 1. The OS release and disk space checks
// are informational; missing administrator rights is the only condition
// that stops the run.
func (s *Session) CheckSystemRequirements() bool {
	s.StepHeader("System Requirements Check")
	allGood := true
	s.pace(500 * time.Millisecond)

	if rel, err := sysinfo.OSRelease(); err == nil {
		if rel.Supported {
			s.Success(fmt.Sprintf("Windows %s detected (Build %s)", rel.Name, rel.Build))
			s.pace(300 * time.Millisecond)
		} else {
			s.Warning(fmt.Sprintf("Windows %s may not be fully supported", rel.Name))
		}
	} else {
		s.Warning("Could not detect Windows version")
	}

	if s.Elevated() {
		s.Success("Administrator privileges confirmed")
	} else {
		s.Error("Administrator privileges required!")
		allGood = false
	}

	// Disk space is a warning at worst; a failed probe is skipped silently.
	if home, err := os.UserHomeDir(); err == nil {
		if free, err := sysinfo.FreeDiskBytes(home); err == nil {
			freeGB := float64(free) / (1 << 30)
			if free > s.Cfg.MinFreeDiskBytes {
				s.Success(fmt.Sprintf("Sufficient disk space (%.1f GB free)", freeGB))
			} else {
				s.Warning(fmt.Sprintf("Low disk space (%.1f GB free)", freeGB))
			}
		}
	}

	return allGood
}
