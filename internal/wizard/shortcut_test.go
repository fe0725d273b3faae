package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteShortcut(t *testing.T) {
	desktop := t.TempDir()
	toolPath := `C:\Users\dev\npm\claude.cmd`

	if err := writeShortcut(desktop, "Claude Code", toolPath); err != nil {
		t.Fatalf("writeShortcut: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(desktop, "Claude Code.bat"))
	if err != nil {
		t.Fatalf("read shortcut: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"@echo off",
		"title Claude Code",
		"echo Starting Claude Code...",
		`"` + toolPath + `"`,
		"pause",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("shortcut missing %q:\n%s", want, content)
		}
	}
	if !strings.Contains(content, "\r\n") {
		t.Error("batch file needs CRLF line endings")
	}
}
