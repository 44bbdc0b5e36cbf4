package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#818cf8")
	subtle = lipgloss.AdaptiveColor{Light: "#8888aa", Dark: "#555570"}
	border = lipgloss.AdaptiveColor{Light: "#c0c0d0", Dark: "#2a2a3a"}

	brandStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	subtleStyle   = lipgloss.NewStyle().Foreground(subtle)
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true)
	hubStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(border)
	primaryButton = buttonStyle.BorderForeground(accent).Foreground(accent)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border).
			Padding(0, 1)
	navItem   = lipgloss.NewStyle().Foreground(subtle)
	navActive = lipgloss.NewStyle().Foreground(accent).Bold(true)

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(border).
			MarginBottom(1)
	mainStyle = lipgloss.NewStyle().Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginRight(1)

	activeTab   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(accent).Foreground(accent).Bold(true).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Padding(0, 1).Foreground(subtle)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	headerCell = lipgloss.NewStyle().Foreground(subtle).Bold(true).Padding(0, 1)
	cell       = lipgloss.NewStyle().Padding(0, 1)
)

// severityStyles is keyed by badge class.
var severityStyles = map[string]lipgloss.Style{
	"critical": lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
	"high":     lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	"medium":   lipgloss.NewStyle().Foreground(accent),
	"low":      lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
	"neutral":  lipgloss.NewStyle().Foreground(subtle),
}

var statusStyles = map[string]lipgloss.Style{
	"Active": lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
	"Paused": lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
}
