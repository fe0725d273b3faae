package wizard

import (
	"fmt"
	"time"

	"claude_setup/internal/termui"
)

// ShowSummary is step 7: a pure read of the session rendered as the final
// status block.
func (s *Session) ShowSummary() {
	s.StepHeader("Installation Summary")
	s.pace(500 * time.Millisecond)

	elapsed := int(time.Since(s.Start).Seconds())
	title, lines := summaryReport(s.Errors, elapsed, s.Log.Name())
	if len(s.Errors) == 0 {
		s.UI.Box(title, lines, termui.SuccessStyle)
	} else {
		s.UI.Box(title, lines, termui.WarningStyle)
	}

	s.UI.Box("NEXT STEPS", []string{
		"1. Close this window",
		"2. Open a NEW Command Prompt or Terminal",
		"3. Run: " + s.Cfg.ToolCommand + " --version",
		"4. Run: " + s.Cfg.ToolCommand + " to start coding!",
	}, termui.SecondaryStyle)

	if len(s.Warnings) > 0 {
		fmt.Fprintf(s.UI.Out, "\n  %s\n", termui.WarningStyle.Render("Warnings:"))
		for i, warn := range s.Warnings {
			if i == 3 {
				break
			}
			s.UI.Warning(warn)
		}
	}
}

// summaryReport builds the terminal box for the summary. The session
// completed cleanly exactly when the error list is empty.
func summaryReport(errors []string, elapsedSeconds int, logName string) (title string, lines []string) {
	if len(errors) == 0 {
		return "SUCCESS", []string{
			termui.IconCheck + " Claude Code installed successfully",
			termui.IconCheck + " PATH configured properly",
			termui.IconCheck + " Ready to use in new terminal",
			"",
			fmt.Sprintf("Installation time: %d seconds", elapsedSeconds),
			"Log file: " + logName,
		}
	}

	lines = []string{termui.IconCross + " Installation completed with errors:", ""}
	for i, err := range errors {
		if i == 3 {
			break
		}
		lines = append(lines, "  "+termui.IconBullet+" "+err)
	}
	return "COMPLETED WITH ISSUES", lines
}
