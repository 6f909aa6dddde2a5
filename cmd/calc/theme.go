package main

import "github.com/charmbracelet/lipgloss"

// Theme is the set of styles the calculator renders with.
type Theme struct {
	Name string

	Frame      lipgloss.Style
	Title      lipgloss.Style
	Expression lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

var themes = map[string]Theme{
	"dark": {
		Name: "dark",
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Width(34),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true),
		Expression: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),
		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	},
	"light": {
		Name: "light",
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("25")).
			Padding(1, 2).
			Width(34),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("25")).
			Bold(true),
		Expression: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")),
		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("124")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	},
}
