package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/mealr/internal/match"
)

var (
	gradeHigh   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	gradeMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	gradeLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	mutedStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#94a3b8"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dd3fc"))
	pickStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c084fc"))
)

// GradeStyle returns the style used to colour a match ratio.
func GradeStyle(ratio float64) lipgloss.Style {
	switch match.GradeOf(ratio) {
	case match.GradeHigh:
		return gradeHigh
	case match.GradeMedium:
		return gradeMedium
	default:
		return gradeLow
	}
}

// theme holds the frame colours for the normal and high-contrast modes.
type theme struct {
	title        string
	titleBg      string
	activeBorder string
	idleBorder   string
	bottomBg     string
	bottomFg     string
}

func currentTheme(highContrast bool) theme {
	if highContrast {
		return theme{
			title: "#ffffff", titleBg: "#000000",
			activeBorder: "#ffffff", idleBorder: "#444444",
			bottomBg: "#000000", bottomFg: "#ffffff",
		}
	}
	return theme{
		title: "#0ea5a4", titleBg: "#0b1226",
		activeBorder: "#7dd3fc", idleBorder: "#334155",
		bottomBg: "#0b1226", bottomFg: "#cbd5e1",
	}
}
