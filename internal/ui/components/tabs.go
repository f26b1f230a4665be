package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"haat/browse/internal/nav"
	"haat/browse/internal/ui"
)

// TabInfo describes a single tab for rendering.
type TabInfo struct {
	ID     int
	Name   string
	Active bool
	Pinned bool
	Empty  bool // no sellable items behind this tab
}

// TabStripHeight is the number of screen rows a strip occupies
// (one tab row + one underline row).
const TabStripHeight = 2

// stripTabWidth picks a per-tab cell width for the strip: wide enough for
// most names, narrow enough to show several tabs at once.
func stripTabWidth(width int) int {
	switch {
	case width >= 100:
		return 18
	case width >= 60:
		return 14
	default:
		return 10
	}
}

// RenderTabStrip renders a single-row horizontal tab strip of fixed-width
// cells. When the tabs overflow the width, the strip scrolls so the active
// tab sits centred; the scroll position is clamped to keep the strip full.
//
// The pinned tab is expected to already be first in tabs (the caller
// projects the order); it gets a pin marker so reordering reads as
// intentional rather than as data shifting underneath the user.
func RenderTabStrip(styles ui.Styles, tabs []TabInfo, width int) string {
	if width <= 0 || len(tabs) == 0 {
		return ""
	}
	t := styles.Theme
	tabWidth := stripTabWidth(width)

	activeIdx := 0
	for i, tab := range tabs {
		if tab.Active {
			activeIdx = i
			break
		}
	}

	totalWidth := len(tabs) * tabWidth
	offset := nav.CenterTabOffset(activeIdx, tabWidth, width)
	if maxOffset := totalWidth - width; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	pinnedStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextSubtle).Faint(true)

	// Render every cell at its fixed width, then window the row by the
	// scroll offset. Styling per cell keeps ANSI sequences intact when
	// the window cuts into a cell boundary.
	activeStart, activeEnd := -1, -1
	var row strings.Builder
	row.Grow(totalWidth * 2)
	for i, tab := range tabs {
		label := tab.Name
		if tab.Pinned {
			label = "⊙ " + label
		}
		label = ui.Truncate(label, tabWidth-2)
		cell := " " + ui.PadRight(label, tabWidth-1)

		st := inactiveStyle
		switch {
		case tab.Active:
			st = activeStyle
		case tab.Empty:
			st = emptyStyle
		case tab.Pinned:
			st = pinnedStyle
		}
		if tab.Active {
			activeStart = i*tabWidth - offset
			activeEnd = activeStart + tabWidth
		}
		row.WriteString(st.Render(cell))
	}

	windowed := cutWindow(row.String(), offset, width)
	rendered := lipgloss.NewStyle().Width(width).MaxWidth(width).Background(t.Bg).Render(windowed)

	underline := buildUnderline(width, activeStart, activeEnd,
		lipgloss.NewStyle().Foreground(t.Border),
		lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		"─", "━")

	return lipgloss.JoinVertical(lipgloss.Left, rendered, underline)
}

// cutWindow returns the [offset, offset+width) cell window of a styled
// row, preserving ANSI escape sequences that precede the window.
func cutWindow(row string, offset, width int) string {
	if offset <= 0 {
		return truncCells(row, width)
	}
	// Walk runes, counting printable cells, carrying styles through.
	// Wide runes (CJK names) occupy two cells, so the column advances by
	// the rune's render width rather than by one.
	var out strings.Builder
	col := 0
	inEscape := false
	for _, r := range row {
		if inEscape {
			out.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			out.WriteRune(r)
			inEscape = true
			continue
		}
		start := col
		col += runewidth.RuneWidth(r)
		if start >= offset && start < offset+width {
			out.WriteRune(r)
		}
		if col >= offset+width {
			break
		}
	}
	out.WriteString("\x1b[0m")
	return out.String()
}

func truncCells(row string, width int) string {
	if lipgloss.Width(row) <= width {
		return row
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

// buildUnderline builds a width-wide underline string with a bold accent
// segment between activeStart..activeEnd and thin segments elsewhere.
func buildUnderline(width, activeStart, activeEnd int, borderSt, accentSt lipgloss.Style, thin, bold string) string {
	if activeEnd <= 0 || activeStart >= width {
		return borderSt.Render(strings.Repeat(thin, width))
	}
	if activeStart < 0 {
		activeStart = 0
	}
	if activeEnd > width {
		activeEnd = width
	}

	var b strings.Builder
	b.Grow(width * 4)
	if activeStart > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, activeStart)))
	}
	if seg := activeEnd - activeStart; seg > 0 {
		b.WriteString(accentSt.Render(strings.Repeat(bold, seg)))
	}
	if rem := width - activeEnd; rem > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, rem)))
	}
	return b.String()
}
