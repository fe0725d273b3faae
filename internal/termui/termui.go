// Package termui renders the wizard's terminal presentation: banner,
// boxes, step headers with a progress bar, colored status lines, the
// loading animation and the interactive prompts. It holds no installation
// state.
package termui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const boxWidth = 60

// UI writes to Out and reads prompt answers from In. Pace is the delay
// hook used for the readability pauses and the animation; tests replace it
// with a no-op.
type UI struct {
	Out  io.Writer
	In   *bufio.Reader
	Pace func(time.Duration)
}

// New returns a UI bound to the process terminal.
func New() *UI {
	return &UI{
		Out:  os.Stdout,
		In:   bufio.NewReader(os.Stdin),
		Pace: time.Sleep,
	}
}

// ClearScreen clears the terminal.
func (u *UI) ClearScreen() {
	fmt.Fprint(u.Out, "\033[2J\033[H")
}

// Banner shows the stylized wizard banner.
func (u *UI) Banner(version string) {
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		WhiteStyle.Render("CLAUDE CODE"),
		GrayStyle.Render("  •  "),
		SecondaryStyle.Render("INSTALLATION WIZARD"),
		GrayStyle.Render("  •  "),
		DimStyle.Render("v"+version),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("105")).
		Width(boxWidth - 2).
		Align(lipgloss.Center).
		Render(title)
	fmt.Fprintf(u.Out, "\n%s\n\n", indent(box))
}

// Box prints a titled box. Content lines longer than the box are
// truncated with an ellipsis.
func (u *UI) Box(title string, content []string, border lipgloss.Style) {
	inner := boxWidth - 4
	parts := []string{
		lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Bold(true).Render(title),
	}
	if len(content) > 0 {
		parts = append(parts, strings.Repeat("─", inner))
		for _, line := range content {
			// Truncate by runes; the content carries multi-byte icons.
			if runes := []rune(line); len(runes) > inner {
				line = string(runes[:inner-3]) + "..."
			}
			parts = append(parts, line)
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border.GetForeground()).
		Padding(0, 1).
		Width(boxWidth - 2).
		Render(strings.Join(parts, "\n"))
	fmt.Fprintf(u.Out, "%s\n\n", indent(box))
}

// StepHeader prints the step banner with its progress bar.
func (u *UI) StepHeader(step, total int, title string) {
	lines := []string{
		BoldStyle.Render(fmt.Sprintf("STEP %d/%d - %s", step, total, title)),
		PrimaryStyle.Render(ProgressBar(step, total)),
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("81")).
		Padding(0, 1).
		Width(boxWidth - 2).
		Render(strings.Join(lines, "\n"))
	fmt.Fprintf(u.Out, "\n%s\n\n", indent(box))
	u.Pace(300 * time.Millisecond)
}

// ProgressBar renders a 20-cell bar with a percentage for step of total.
func ProgressBar(step, total int) string {
	if total <= 0 {
		total = 1
	}
	filled := step * 20 / total
	if filled > 20 {
		filled = 20
	}
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", 20-filled),
		step*100/total)
}

// Status line printers. Recording errors and warnings is the caller's
// concern; these only render.

func (u *UI) Success(text string) {
	fmt.Fprintf(u.Out, "  %s %s\n", SuccessStyle.Render(IconCheck), text)
}

func (u *UI) Error(text string) {
	fmt.Fprintf(u.Out, "  %s %s\n", ErrorStyle.Render(IconCross), text)
}

func (u *UI) Warning(text string) {
	fmt.Fprintf(u.Out, "  %s %s\n", WarningStyle.Render(IconWarning), text)
}

func (u *UI) Info(text string) {
	fmt.Fprintf(u.Out, "  %s %s\n", InfoStyle.Render(IconInfo), text)
}

func (u *UI) Loading(text string) {
	fmt.Fprintf(u.Out, "  %s %s\n", DimStyle.Render(IconGear), DimStyle.Render(text))
}

// Animate plays the loading star sequence next to text for roughly the
// given duration, then settles on a completed line.
func (u *UI) Animate(text string, d time.Duration) {
	const frameDelay = 150 * time.Millisecond
	steps := int(d / frameDelay)
	for i := 0; i < steps; i++ {
		frame := LoadingFrames[i%len(LoadingFrames)]
		fmt.Fprintf(u.Out, "\r  %s %s...", SecondaryStyle.Render(frame), text)
		u.Pace(frameDelay)
	}
	fmt.Fprintf(u.Out, "\r  %s %s... Done!%s\n", SuccessStyle.Render(IconCheck), text, strings.Repeat(" ", 10))
	u.Pace(500 * time.Millisecond)
}

// AskYesNo prints the question and reads one line; only "y" answers yes.
func (u *UI) AskYesNo(question string) bool {
	fmt.Fprintf(u.Out, "\n  %s %s (y/n): ", InfoStyle.Render(IconInfo), question)
	line, err := u.In.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// Pause prints message and waits for Enter.
func (u *UI) Pause(message string) {
	fmt.Fprintf(u.Out, "\n  %s", DimStyle.Render(message))
	_, _ = u.In.ReadString('\n')
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
