package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Placeholder is shown for a set field that has not been entered yet.
const Placeholder = "—"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RenderSection is the unboxed form of RenderBox, used when output is not a
// terminal.
func RenderSection(title string, content string) string {
	if title == "" {
		return content
	}
	return Header(title) + "\n" + content
}

// HumanDateFrom returns "Today", "Yesterday" or an absolute date relative to now.
func HumanDateFrom(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestampFrom returns a short relative timestamp such as "5m ago".
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDateFrom(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDateFrom(t, now)
	}
}

// TruncID shortens an ID to its first 8 characters and dims it.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatDuration renders a workout duration as "1h 5m", "45m" or "<1m".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "<1m"
	}
	total := int(d.Minutes())
	h, m := total/60, total%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatWeight prints a weight without trailing zeros.
func FormatWeight(w *float64) string {
	if w == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*w, 'f', -1, 64)
}

func FormatReps(r *int) string {
	if r == nil {
		return Placeholder
	}
	return strconv.Itoa(*r)
}

// FormatOneRM prints a one-rep max rounded to one decimal.
func FormatOneRM(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// FormatVolume prints a total volume rounded to a whole number.
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
