package wizard

import (
	"strings"
	"testing"
)

func TestInstallClaudeDeclinedUpdate(t *testing.T) {
	s, cmd, _ := newFakeSession(t, "n\n")
	cmd.probeOK["claude"] = true
	cmd.probeVer["claude"] = "1.0.83"

	if !s.InstallClaude() {
		t.Fatalf("InstallClaude failed: %v", s.Errors)
	}
	if len(cmd.runs) != 0 {
		t.Errorf("npm invoked despite declined update: %v", cmd.runs)
	}
}

func TestInstallClaudeAcceptedUpdate(t *testing.T) {
	s, cmd, _ := newFakeSession(t, "y\n")
	cmd.probeOK["claude"] = true
	cmd.probeVer["claude"] = "1.0.83"

	if !s.InstallClaude() {
		t.Fatalf("InstallClaude failed: %v", s.Errors)
	}
	if len(cmd.runs) != 1 {
		t.Fatalf("runs = %v, want a single update", cmd.runs)
	}
	want := "npm install -g @anthropic-ai/claude-code@latest --force"
	if got := strings.Join(cmd.runs[0], " "); got != want {
		t.Errorf("run = %q, want %q", got, want)
	}
	if len(s.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", s.Warnings)
	}
}

func TestInstallClaudeUpdateFailureKeepsCurrent(t *testing.T) {
	s, cmd, _ := newFakeSession(t, "y\n")
	cmd.probeOK["claude"] = true
	cmd.probeVer["claude"] = "1.0.83"
	cmd.runCode = 1

	// A failed update is not fatal; the existing version stays usable.
	if !s.InstallClaude() {
		t.Fatalf("InstallClaude failed: %v", s.Errors)
	}
	if len(s.Warnings) == 0 || !strings.Contains(s.Warnings[0], "keeping current version") {
		t.Errorf("warnings = %v, want keeping-current warning", s.Warnings)
	}
	if len(s.Errors) != 0 {
		t.Errorf("unexpected errors: %v", s.Errors)
	}
}

func TestInstallClaudeFreshInstallFailure(t *testing.T) {
	s, cmd, _ := newFakeSession(t, "")
	cmd.runCode = 1

	if s.InstallClaude() {
		t.Error("expected failure when npm install exits nonzero")
	}
	if len(cmd.runs) != 1 {
		t.Fatalf("runs = %v, want a single install attempt", cmd.runs)
	}
	want := "npm install -g @anthropic-ai/claude-code --force"
	if got := strings.Join(cmd.runs[0], " "); got != want {
		t.Errorf("run = %q, want %q", got, want)
	}
	if len(s.Errors) == 0 || !strings.Contains(s.Errors[0], "Installation failed") {
		t.Errorf("errors = %v, want installation failure", s.Errors)
	}
}
