package termui

import "github.com/charmbracelet/lipgloss"

// Color palette. Bright bold ANSI-256 colors chosen to survive plain
// cmd.exe once virtual terminal processing is on.
var (
	PrimaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("105")).Bold(true)
	SecondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	InfoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	WhiteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	GrayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	BoldStyle      = lipgloss.NewStyle().Bold(true)
)

// Icons kept to characters that render in a stock CMD code page.
const (
	IconCheck   = "√"
	IconCross   = "x"
	IconWarning = "!"
	IconInfo    = "i"
	IconArrow   = ">"
	IconBullet  = "•"
	IconGear    = "~"
)

// LoadingFrames is the loading animation star sequence.
var LoadingFrames = []string{"·", "✢", "✶", "✶", "✶", "*", "*", "✢", "·", "✻", "*"}
