package wizard

import (
	"fmt"
	"time"

	"claude_setup/internal/runner"
)

// CheckNodeJS is step 2. Node.js or npm missing entirely is fatal; an old
// Node.js major version only warns, and a version string that doesn't
// parse still counts as found.
func (s *Session) CheckNodeJS() bool {
	s.StepHeader("Node.js & npm Verification")
	s.pace(500 * time.Millisecond)

	nodeOK, nodeVer := s.Cmd.Probe("node")
	if !nodeOK {
		s.Error("Node.js not found!")
		s.Info("Download from: " + s.Cfg.NodeDownloadURL)
		return false
	}

	if major, parsed := runner.ParseMajor(nodeVer); parsed {
		if major >= s.Cfg.MinNodeMajor {
			s.Success(fmt.Sprintf("Node.js %s installed", nodeVer))
		} else {
			s.Warning(fmt.Sprintf("Node.js %s is outdated (v%d+ required)", nodeVer, s.Cfg.MinNodeMajor))
		}
	} else {
		s.Success(fmt.Sprintf("Node.js found: %s", nodeVer))
	}
	s.pace(300 * time.Millisecond)

	npmOK, npmVer := s.Cmd.Probe("npm")
	if !npmOK {
		s.Error("npm not found!")
		return false
	}
	s.Success(fmt.Sprintf("npm %s installed", npmVer))
	s.pace(300 * time.Millisecond)

	return true
}
