package ui

import "github.com/charmbracelet/lipgloss"

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	Section = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	Command = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	Flag    = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Err     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
