// Package runner executes the external commands the wizard depends on
// (node, npm, claude) with a bounded timeout, and probes commands for
// their version strings.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"claude_setup/internal/logfile"
)

// DefaultTimeout bounds every external command invocation.
const DefaultTimeout = 30 * time.Second

// Runner invokes external commands. All invocations share one timeout and
// write failures to the run log.
type Runner struct {
	Timeout time.Duration
	Log     *logfile.Log
}

// New returns a Runner with the default timeout.
func New(log *logfile.Log) *Runner {
	return &Runner{Timeout: DefaultTimeout, Log: log}
}

// Output runs the command, captures standard output and returns it trimmed
// together with the exit code. A timeout, a start failure or any fault is
// reported as exit code 1, never as a crash.
func (r *Runner) Output(name string, args ...string) (string, int) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		r.Log.Error(fmt.Sprintf("Command timeout: %s %s", name, strings.Join(args, " ")))
		return "", 1
	}
	if err != nil {
		if exit, ok := err.(*exec.ExitError); ok {
			return strings.TrimSpace(string(out)), exit.ExitCode()
		}
		r.Log.Error(fmt.Sprintf("Command error: %s %s - %v", name, strings.Join(args, " "), err))
		return "", 1
	}
	return strings.TrimSpace(string(out)), 0
}

// Run runs the command with its output streamed to the terminal and returns
// the exit code.
func (r *Runner) Run(name string, args ...string) int {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		r.Log.Error(fmt.Sprintf("Command timeout: %s %s", name, strings.Join(args, " ")))
		return 1
	}
	if err != nil {
		if exit, ok := err.(*exec.ExitError); ok {
			return exit.ExitCode()
		}
		r.Log.Error(fmt.Sprintf("Command error: %s %s - %v", name, strings.Join(args, " "), err))
		return 1
	}
	return 0
}

// Probe runs `<name> --version` and reports whether the command exists,
// along with the best version line found in its output. The result is never
// cached; every probe reflects the current system state.
func (r *Runner) Probe(name string) (bool, string) {
	out, code := r.Output(name, "--version")
	if code != 0 || out == "" {
		return false, "Unknown"
	}
	return true, ExtractVersionLine(out)
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

// ExtractVersionLine picks the first output line that carries a digit,
// skipping box-drawing decoration some CLIs print around their banner.
// When no such line exists the first line (or "Unknown") is returned;
// an odd version format never counts as a failed probe.
func ExtractVersionLine(output string) string {
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "│") || strings.HasPrefix(line, "└") ||
			strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "├") {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			return line
		}
	}
	if first := strings.TrimSpace(lines[0]); first != "" {
		return first
	}
	return "Unknown"
}
