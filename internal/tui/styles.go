package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	title     lipgloss.Style
	text      lipgloss.Style
	dim       lipgloss.Style
	dimmer    lipgloss.Style
	good      lipgloss.Style
	warn      lipgloss.Style
	bad       lipgloss.Style
	accent    lipgloss.Style
	pivotCell lipgloss.Style
	pivotLine lipgloss.Style
	constCol  lipgloss.Style
	leadCol   lipgloss.Style
}

func paletteFor(theme string) palette {
	switch theme {
	case "light":
		return palette{
			title:     lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
			text:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
			dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			dimmer:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			good:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
			accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
			pivotCell: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")).Bold(true),
			pivotLine: lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
			constCol:  lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
			leadCol:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		}
	default:
		return palette{
			title:     lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			text:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			dimmer:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			good:      lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
			warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			pivotCell: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("86")).Bold(true),
			pivotLine: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			constCol:  lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			leadCol:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		}
	}
}
