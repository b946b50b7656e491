package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/cltlab/goclt/internal/material"
	"github.com/cltlab/goclt/internal/series"
)

// RenderResponseChart renders a response quantity as a terminal line
// chart. Two-span results plot as two series so the discontinuity at
// the interior support stays visible.
func RenderResponseChart(pair series.Pair, caption string, height int) string {
	if height <= 0 {
		height = 12
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	}

	if len(pair.Secondary.Points) > 0 {
		return asciigraph.PlotMany(
			[][]float64{pair.Primary.Values(), pair.Secondary.Values()},
			opts...,
		)
	}
	if len(pair.Primary.Points) == 0 {
		return ""
	}
	return asciigraph.Plot(pair.Primary.Values(), opts...)
}

// DrawLayupASCII creates a proportionally scaled text drawing of a CLT
// layup, one band of rows per layer.
func DrawLayupASCII(m material.Material) string {
	if len(m.Layup) == 0 {
		return ""
	}

	var sb strings.Builder
	widthChars := 36
	heightChars := 18
	depth := m.Layup.Depth()

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s CROSS-SECTION (%.0f mm)\n", m.Name, depth))
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")

	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for i, layer := range m.Layup {
		rows := int(layer.Thickness / depth * float64(heightChars))
		if rows < 1 {
			rows = 1
		}

		fillChar := "░"
		if layer.Orientation == material.Transverse {
			fillChar = "▒"
		}

		labelRow := rows / 2
		for r := 0; r < rows; r++ {
			fill := strings.Repeat(fillChar, widthChars)
			if r == labelRow {
				sb.WriteString(fmt.Sprintf("  │%s│ %.0f mm %s\n", fill, layer.Thickness, layer.Orientation))
			} else {
				sb.WriteString(fmt.Sprintf("  │%s│\n", fill))
			}
		}
		if i < len(m.Layup)-1 {
			sb.WriteString(fmt.Sprintf("  ├%s┤\n", strings.Repeat("─", widthChars)))
		}
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = longitudinal layer (grain along the span)\n")
	sb.WriteString("  ▒▒▒ = transverse layer (grain across the span)\n")

	return sb.String()
}

// DrawSummaryBox creates a boxed summary of result lines.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
