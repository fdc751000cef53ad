package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for terminal output
var (
	ColorPurple = lipgloss.Color("#7D56F4")
	ColorGreen  = lipgloss.Color("#25A065")
	ColorRed    = lipgloss.Color("#E05252")
	ColorYellow = lipgloss.Color("#E5C07B")
	ColorGray   = lipgloss.Color("#626262")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGray)

	cellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	goodStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	badStyle  = lipgloss.NewStyle().Foreground(ColorRed)
)

// RenderTitle renders a section title for terminal output.
func RenderTitle(title string) string {
	return titleStyle.Render(title)
}

// RenderTable renders a two-column key/value table with aligned columns.
func RenderTable(columns []string, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, c := range columns {
		b.WriteString(cellStyle.Render(headerStyle.Render(pad(c, widths[i]))))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				cell = pad(cell, widths[i])
			}
			b.WriteString(cellStyle.Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// RenderSPI colors an SPI value: green on/ahead of schedule, yellow slightly
// behind, red clearly behind.
func RenderSPI(spi float64) string {
	value := fmt.Sprintf("%.2f", spi)
	switch {
	case spi >= 1.0:
		return goodStyle.Render(value)
	case spi >= 0.8:
		return warnStyle.Render(value)
	default:
		return badStyle.Render(value)
	}
}

// RenderRiskScore colors a 0-100 risk score: low scores green, high red.
func RenderRiskScore(score int) string {
	value := fmt.Sprintf("%d", score)
	switch {
	case score >= 75:
		return badStyle.Render(value)
	case score >= 50:
		return warnStyle.Render(value)
	default:
		return goodStyle.Render(value)
	}
}
