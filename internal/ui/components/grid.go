package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haat/browse/internal/domain"
	"haat/browse/internal/imageutil"
	"haat/browse/internal/ui"
)

// ItemCardLines is the rendered height of one grid row of item cards.
const ItemCardLines = 4

// RenderItemRow renders up to `cols` item cards side by side, each in an
// equal-width column. Rows always come out ItemCardLines tall so scroll
// offsets stay aligned with the precomputed layout.
func RenderItemRow(styles ui.Styles, items []domain.Item, selected int, totalWidth, cols int) string {
	if cols < 1 {
		cols = 1
	}
	sepW := cols - 1
	panelW := (totalWidth - 3*sepW) / cols
	if panelW < 16 {
		panelW = 16
	}

	columns := make([][]string, cols)
	for c := 0; c < cols; c++ {
		if c < len(items) {
			columns[c] = renderItemCard(styles, items[c], c == selected, panelW)
		} else {
			columns[c] = emptyCard(panelW)
		}
	}

	sep := lipgloss.NewStyle().Foreground(styles.Theme.Border).Render(" │ ")

	var b strings.Builder
	for line := 0; line < ItemCardLines; line++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(sep)
			}
			b.WriteString(padTo(columns[c][line], panelW))
		}
		if line < ItemCardLines-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderItemCard renders one product as ItemCardLines lines of panelW cells.
func renderItemCard(styles ui.Styles, item domain.Item, selected bool, panelW int) []string {
	nameStyle := styles.ItemName
	if selected {
		nameStyle = nameStyle.Background(styles.Theme.SurfaceHover)
	}

	glyph := imageutil.PlaceholderGlyph
	name := nameStyle.Render(truncateTo(glyph+" "+item.Name, panelW))
	desc := styles.ItemDesc.Render(truncateTo(item.Description, panelW))
	price := styles.Price.Render(fmt.Sprintf("₪%.2f", item.Price))

	return []string{name, desc, price, ""}
}

func emptyCard(panelW int) []string {
	blank := strings.Repeat(" ", panelW)
	lines := make([]string, ItemCardLines)
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

func truncateTo(s string, maxW int) string {
	runes := []rune(s)
	if len(runes) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return string(runes[:maxW-1]) + "…"
}

func padTo(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
