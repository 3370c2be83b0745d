package main

import "github.com/charmbracelet/lipgloss"

var (
	ColorPass  = lipgloss.Color("#2ECC71")
	ColorFail  = lipgloss.Color("#ff6b6b")
	ColorError = lipgloss.Color("#f5a623")
)

func statusStyle(s Status) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch s {
	case StatusPass:
		return style.Foreground(ColorPass)
	case StatusFail:
		return style.Foreground(ColorFail)
	}
	return style.Foreground(ColorError)
}

func scoreStyle(r *Report) lipgloss.Style {
	if r.Passed == r.Total() {
		return lipgloss.NewStyle().Bold(true).Foreground(ColorPass)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(ColorFail)
}
