package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"claude_setup/internal/pathenv"
)

// ConfigurePath is step 4: locate the installed executable inside npm's
// global prefix and merge that prefix into the persistent user PATH.
func (s *Session) ConfigurePath() bool {
	s.StepHeader("PATH Configuration")
	s.pace(500 * time.Millisecond)

	prefix, code := s.Cmd.Output("npm", "config", "get", "prefix")
	if code != 0 || prefix == "" {
		s.Error("Could not determine npm location")
		return false
	}
	s.NPMPrefix = prefix
	s.Info("npm location: " + prefix)
	s.pace(300 * time.Millisecond)

	toolPath, err := findToolExecutable(prefix, s.Cfg.ExecutableNames, s.Cfg.ToolCommand)
	if err != nil {
		s.Error("Could not find " + s.Cfg.ToolCommand + " executable")
		return false
	}
	s.ClaudePath = toolPath
	s.Success("Found: " + toolPath)
	s.pace(300 * time.Millisecond)

	store, err := s.OpenStore()
	if err != nil {
		s.Error(fmt.Sprintf("Failed to update PATH: %v", err))
		return false
	}

	// Missing value reads as empty. The read and write below are not
	// transactional; a concurrent external change of the same value
	// between them is overwritten. Single-operator use is assumed.
	current, _, err := store.Get("Path")
	if err != nil {
		s.Error(fmt.Sprintf("Failed to update PATH: %v", err))
		return false
	}
	merged, changed := pathenv.Merge(current, prefix)
	if !changed {
		s.Success("Already in system PATH")
		return true
	}

	s.Loading("Adding to system PATH...")
	if err := store.Set("Path", merged); err != nil {
		s.Error(fmt.Sprintf("Failed to update PATH: %v", err))
		return false
	}
	// Fire and forget: the registry write already took effect for new
	// processes, the broadcast only wakes up running ones.
	s.Notifier.Notify()
	s.Success("PATH updated successfully!")
	return true
}

// findToolExecutable looks for the conventional executable names inside
// prefix, then falls back to the first regular file whose name contains
// the tool name case-insensitively. The fallback is deliberately loose; in
// a populated prefix directory it can match an unrelated file, which the
// verification step would then surface.
func findToolExecutable(prefix string, candidates []string, tool string) (string, error) {
	for _, name := range candidates {
		p := filepath.Join(prefix, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}

	entries, err := os.ReadDir(prefix)
	if err != nil {
		return "", err
	}
	needle := strings.ToLower(tool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), needle) {
			return filepath.Join(prefix, e.Name()), nil
		}
	}
	return "", fmt.Errorf("no %s executable in %s", tool, prefix)
}
