// Package summary renders the dashboard as coloured terminal text.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/junkd0g/kuposhan/internal/view"
)

// Shared color printers.
var (
	colorBold   = color.New(color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorFaint  = color.New(color.Faint)
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4f46e5"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// BarWidth is the width of a full-scale bar.
const BarWidth = 40

// Bar draws a horizontal bar of value against max.
func Bar(label string, value, max float64, width int, hex string) string {
	if max <= 0 {
		max = value
	}
	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	filled := int(float64(width) * ratio)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))

	return fmt.Sprintf("%s %s%s %s",
		label,
		barStyle.Render(strings.Repeat("█", filled)),
		emptyStyle.Render(strings.Repeat("░", width-filled)),
		view.FormatPercent(value),
	)
}

// Write prints the header, summary cards, the age panel for state and the
// factor groups.
func Write(w io.Writer, state view.State) error {
	tree := view.Render(state)
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(tree.Header.Title))
	sb.WriteString("\n")
	sb.WriteString(colorFaint.Sprintf("%s · %s", tree.Header.Subtitle, tree.Header.Edition))
	sb.WriteString("\n\n")

	sb.WriteString(colorBold.Sprint("National Average"))
	sb.WriteString("\n")
	for _, c := range tree.Cards {
		sb.WriteString("  ")
		sb.WriteString(Bar(pad(c.Label, 12), c.Value, 100, BarWidth, c.Color))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	p := tree.AgePanel
	sb.WriteString(colorBold.Sprint(p.ListTitle))
	sb.WriteString("\n")
	for _, s := range p.Breakdown.Slices {
		sb.WriteString("  ")
		sb.WriteString(Bar(pad(s.Age, 12), s.Value, 50, BarWidth, s.Color))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(colorYellow.Sprint("Key Insight: "))
	sb.WriteString(p.Insight.Prefix)
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent.Emphasis)).Render(p.Insight.AgeGroup))
	sb.WriteString(p.Insight.Suffix)
	sb.WriteString("\n\n")

	sb.WriteString(colorBold.Sprint(tree.Factors.Title))
	sb.WriteString("\n")
	for _, g := range tree.Factors.Groups {
		heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Color))
		sb.WriteString("  ")
		sb.WriteString(heading.Render(g.Title))
		sb.WriteString(": ")
		sb.WriteString(strings.Join(g.Factors, ", "))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
