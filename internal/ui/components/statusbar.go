package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haat/browse/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	MarketName string
	ItemCount  int
	Offline    bool
	Fallback   bool   // live fetch failed, showing offline data
	Message    string // transient info/error message
	IsError    bool
}

// RenderStatusBar renders the bottom status bar with clear visual sections
// separated by dim vertical bars.
//
// Wide (>= 60):   Haat Food Market  │  12 items  │  ⚠ offline        message
// Narrow (< 40):  Haat Food Market  │  ⚠ offline
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	nameStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	nameSection := " " + nameStyle.Render(data.MarketName)

	var countSection string
	if width >= 40 && data.ItemCount > 0 {
		countStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		countSection = sep + countStyle.Render(fmt.Sprintf("%d items", data.ItemCount))
	}

	var stateSection string
	switch {
	case data.Fallback:
		badge := lipgloss.NewStyle().
			Foreground(t.TextInverse).
			Background(t.Warning).
			Bold(true).
			Padding(0, 1).
			Render("OFFLINE DATA")
		stateSection = sep + badge
	case data.Offline:
		stateSection = sep + lipgloss.NewStyle().Foreground(t.Warning).Render("⚠ offline")
	default:
		stateSection = sep + lipgloss.NewStyle().Foreground(t.Success).Render("✓ live")
	}

	left := nameSection + countSection + stateSection

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).Render(content)
}
