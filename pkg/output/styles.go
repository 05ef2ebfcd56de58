package output

import (
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// StatusStyle returns the pterm style for a step status
func StatusStyle(status types.StepStatus) *pterm.Style {
	switch status {
	case types.StepDone:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.StepFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case types.StepWarning:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
)
