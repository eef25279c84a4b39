package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls how a column pads its cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return RenderAlignedTable(headers, nil, rows)
}

// RenderAlignedTable renders a table whose columns are padded to the widest
// visible cell. align may be shorter than headers; missing entries are
// left-aligned. Widths are measured with lipgloss so styled cells line up.
func RenderAlignedTable(headers []string, align []Align, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	alignOf := func(i int) Align {
		if i < len(align) {
			return align[i]
		}
		return AlignLeft
	}

	const colGap = 2
	var b strings.Builder

	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if style != nil {
				cell = style(cell)
			}
			last := i == cols-1
			if alignOf(i) == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
