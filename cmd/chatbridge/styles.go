package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for CLI output.
var (
	answerPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	answerBlockStyle  = lipgloss.NewStyle().PaddingLeft(1)

	linkStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("4")) // blue

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)
