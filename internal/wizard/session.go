// Package wizard drives the installation: a single linear pipeline of
// seven steps sharing one mutable session. Steps 1-3 are gates that abort
// the run; the rest record failures and keep going.
package wizard

import (
	"fmt"
	"time"

	"claude_setup/internal/config"
	"claude_setup/internal/logfile"
	"claude_setup/internal/runner"
	"claude_setup/internal/sysenv"
	"claude_setup/internal/sysinfo"
	"claude_setup/internal/termui"
)

// Commander is the slice of the command runner the steps depend on.
// *runner.Runner satisfies it; tests substitute a fake so no external
// process is ever spawned.
type Commander interface {
	Probe(name string) (bool, string)
	Run(name string, args ...string) int
	Output(name string, args ...string) (string, int)
}

// Session is the run-scoped state every step mutates. It owns the ordered
// error and warning lists the summary reads, plus the paths resolved along
// the way. One session per process; discarded at exit.
type Session struct {
	Cfg *config.Config
	UI  *termui.UI
	Log *logfile.Log
	Cmd Commander

	// OpenStore yields the persistent environment store; tests swap in an
	// in-memory one.
	OpenStore func() (sysenv.Store, error)
	Notifier  sysenv.Notifier

	// Elevated reports administrator rights; injectable so the gate is
	// testable regardless of who runs the tests.
	Elevated func() bool

	Errors   []string
	Warnings []string

	// NPMPrefix is npm's global install prefix once resolved.
	NPMPrefix string
	// ClaudePath is the resolved tool executable once found.
	ClaudePath string

	Step       int
	TotalSteps int
	Start      time.Time
}

// NewSession wires a session against the real system.
func NewSession(cfg *config.Config, ui *termui.UI, log *logfile.Log) *Session {
	cmd := runner.New(log)
	cmd.Timeout = cfg.CommandTimeout
	s := &Session{
		Cfg:        cfg,
		UI:         ui,
		Log:        log,
		Cmd:        cmd,
		OpenStore:  sysenv.Open,
		Notifier:   sysenv.NewNotifier(),
		Elevated:   sysinfo.IsElevated,
		TotalSteps: 7,
		Start:      time.Now(),
	}
	log.Info(fmt.Sprintf("%s v%s starting (user=%s machine=%s)",
		cfg.WizardName, cfg.WizardVersion, cfg.UserName, cfg.MachineID))
	return s
}

// Status helpers: render the line, log it, and record errors/warnings in
// order for the summary.

func (s *Session) Success(text string) {
	s.UI.Success(text)
	s.Log.Info(text)
}

func (s *Session) Error(text string) {
	s.UI.Error(text)
	s.Log.Error(text)
	s.Errors = append(s.Errors, text)
}

func (s *Session) Warning(text string) {
	s.UI.Warning(text)
	s.Log.Warning(text)
	s.Warnings = append(s.Warnings, text)
}

func (s *Session) Info(text string) {
	s.UI.Info(text)
	s.Log.Info(text)
}

func (s *Session) Loading(text string) {
	s.UI.Loading(text)
	s.Log.Info(text)
}

// StepHeader advances the step counter and shows the step banner. From the
// second step on the screen is cleared first so each step reads as its own
// page.
func (s *Session) StepHeader(title string) {
	if s.Step > 0 {
		s.pace(1500 * time.Millisecond)
		s.UI.ClearScreen()
		s.UI.Banner(s.Cfg.WizardVersion)
	}
	s.Step++
	s.UI.StepHeader(s.Step, s.TotalSteps, title)
}

func (s *Session) pace(d time.Duration) {
	s.UI.Pace(d)
}
