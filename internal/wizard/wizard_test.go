package wizard

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"claude_setup/internal/config"
	"claude_setup/internal/logfile"
	"claude_setup/internal/sysenv"
	"claude_setup/internal/termui"
)

// fakeCmd satisfies Commander without spawning processes. Probes answer
// from the maps; Run records its invocation and returns runCode; Output
// answers from outputs keyed by the joined command line, or exit 1.
type fakeCmd struct {
	probeOK  map[string]bool
	probeVer map[string]string
	outputs  map[string]string
	runCode  int

	probes   []string
	runs     [][]string
	requests [][]string
}

func newFakeCmd() *fakeCmd {
	return &fakeCmd{
		probeOK:  map[string]bool{},
		probeVer: map[string]string{},
		outputs:  map[string]string{},
	}
}

func (f *fakeCmd) Probe(name string) (bool, string) {
	f.probes = append(f.probes, name)
	ver := f.probeVer[name]
	if ver == "" {
		ver = "Unknown"
	}
	return f.probeOK[name], ver
}

func (f *fakeCmd) Run(name string, args ...string) int {
	f.runs = append(f.runs, append([]string{name}, args...))
	return f.runCode
}

func (f *fakeCmd) Output(name string, args ...string) (string, int) {
	call := append([]string{name}, args...)
	f.requests = append(f.requests, call)
	if out, ok := f.outputs[strings.Join(call, " ")]; ok {
		return out, 0
	}
	return "", 1
}

func (f *fakeCmd) installRuns() [][]string {
	var installs [][]string
	for _, run := range f.runs {
		for _, arg := range run {
			if arg == "install" {
				installs = append(installs, run)
				break
			}
		}
	}
	return installs
}

// newFakeSession builds a session wired entirely against fakes: elevated,
// in-memory store, no-op notifier, no real commands.
func newFakeSession(t *testing.T, input string) (*Session, *fakeCmd, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ui := &termui.UI{
		Out:  &out,
		In:   bufio.NewReader(strings.NewReader(input)),
		Pace: func(time.Duration) {},
	}
	log := logfile.NewAt(t.TempDir())
	t.Cleanup(log.Close)

	s := NewSession(config.Default(), ui, log)
	cmd := newFakeCmd()
	s.Cmd = cmd
	s.Elevated = func() bool { return true }
	s.OpenStore = func() (sysenv.Store, error) { return sysenv.NewMemStore(), nil }
	s.Notifier = sysenv.NopNotifier{}
	return s, cmd, &out
}

// npmPrefix fabricates an npm global prefix holding the tool executable.
func npmPrefix(t *testing.T) string {
	t.Helper()
	prefix := t.TempDir()
	if err := os.WriteFile(filepath.Join(prefix, "claude.cmd"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return prefix
}

func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
}

func TestRunHaltsWithoutElevation(t *testing.T) {
	s, cmd, out := newFakeSession(t, "\n")
	isolateHome(t)
	s.Elevated = func() bool { return false }

	if code := s.Run(); code != 1 {
		t.Errorf("Run() = %d, want 1", code)
	}
	// No later step may touch the system after a failed gate.
	if len(cmd.probes) != 0 || len(cmd.runs) != 0 || len(cmd.requests) != 0 {
		t.Errorf("commands invoked after gate failure: probes=%v runs=%v requests=%v",
			cmd.probes, cmd.runs, cmd.requests)
	}
	if !strings.Contains(out.String(), "ADMINISTRATOR REQUIRED") {
		t.Error("missing remediation box")
	}
}

func TestRunHaltsWhenNpmMissing(t *testing.T) {
	s, cmd, out := newFakeSession(t, "\n")
	isolateHome(t)
	cmd.probeOK["node"] = true
	cmd.probeVer["node"] = "v22.1.0"

	if code := s.Run(); code != 1 {
		t.Errorf("Run() = %d, want 1", code)
	}
	if len(cmd.runs) != 0 {
		t.Errorf("install invoked despite missing npm: %v", cmd.runs)
	}
	if len(cmd.requests) != 0 {
		t.Errorf("npm prefix queried despite missing npm: %v", cmd.requests)
	}
	if !strings.Contains(out.String(), "NODE.JS REQUIRED") {
		t.Error("missing remediation box")
	}
}

func TestRunDeclinedUpdateSkipsInstall(t *testing.T) {
	// "n" for the update prompt, then Enter for the final pause.
	s, cmd, _ := newFakeSession(t, "n\n\n")
	isolateHome(t)
	prefix := npmPrefix(t)
	for name, ver := range map[string]string{"node": "v22.1.0", "npm": "10.2.4", "claude": "1.0.83"} {
		cmd.probeOK[name] = true
		cmd.probeVer[name] = ver
	}
	cmd.outputs["npm config get prefix"] = prefix
	store := sysenv.NewMemStore()
	s.OpenStore = func() (sysenv.Store, error) { return store, nil }

	if code := s.Run(); code != 0 {
		t.Errorf("Run() = %d, want 0", code)
	}
	if installs := cmd.installRuns(); len(installs) != 0 {
		t.Errorf("install invoked despite declined update: %v", installs)
	}
	// The run still proceeds to PATH configuration with the existing
	// installation.
	if got := store.Values["Path"]; got != prefix+";" {
		t.Errorf("Path = %q, want %q", got, prefix+";")
	}
}

func TestRunFreshInstallInvokesInstallerOnce(t *testing.T) {
	s, cmd, _ := newFakeSession(t, "\n")
	isolateHome(t)
	prefix := npmPrefix(t)
	for name, ver := range map[string]string{"node": "v22.1.0", "npm": "10.2.4"} {
		cmd.probeOK[name] = true
		cmd.probeVer[name] = ver
	}
	cmd.outputs["npm config get prefix"] = prefix
	store := sysenv.NewMemStore()
	s.OpenStore = func() (sysenv.Store, error) { return store, nil }

	if code := s.Run(); code != 0 {
		t.Errorf("Run() = %d, want 0", code)
	}
	installs := cmd.installRuns()
	if len(installs) != 1 {
		t.Fatalf("install invocations = %v, want exactly one", installs)
	}
	want := []string{"npm", "install", "-g", "@anthropic-ai/claude-code", "--force"}
	if strings.Join(installs[0], " ") != strings.Join(want, " ") {
		t.Errorf("install = %v, want %v", installs[0], want)
	}
}
