package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Path    lipgloss.Style
	RuleID  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("14")),
		Path:    r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		RuleID:  r.NewStyle().Bold(true),
	}
}
