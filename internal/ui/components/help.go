package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haat/browse/internal/common"
	"haat/browse/internal/ui"
)

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]common.HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(width - 4).
		Render(title)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(16).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)

	// Deterministic order from a predefined list.
	order := []string{"Navigation", "Categories", "Markets", "General"}
	for _, section := range order {
		entries, ok := sections[section]
		if !ok || len(entries) == 0 {
			continue
		}
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range entries {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	content := body.String()

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, width-4)).
		MaxHeight(height - 2).
		Render(content)

	return ui.PlaceCentre(width, height, overlay)
}

// GlobalHelpEntries returns the help entries for global keybindings.
func GlobalHelpEntries() map[string][]common.HelpEntry {
	return map[string][]common.HelpEntry{
		"Navigation": {
			{Key: "j / ↓", Desc: "Scroll down"},
			{Key: "k / ↑", Desc: "Scroll up"},
			{Key: "g / Home", Desc: "Go to top"},
			{Key: "G / End", Desc: "Go to bottom"},
			{Key: "pgup / ctrl+u", Desc: "Page up"},
			{Key: "pgdn / ctrl+d", Desc: "Page down"},
			{Key: "enter", Desc: "Open / confirm"},
			{Key: "esc", Desc: "Back"},
		},
		"Categories": {
			{Key: "tab", Desc: "Next category"},
			{Key: "shift+tab", Desc: "Previous category"},
			{Key: "]", Desc: "Next subcategory"},
			{Key: "[", Desc: "Previous subcategory"},
		},
		"Markets": {
			{Key: "/", Desc: "Search categories"},
			{Key: "enter", Desc: "Open category"},
		},
		"General": {
			{Key: "r", Desc: "Refresh data"},
			{Key: "?", Desc: "Toggle this help"},
			{Key: "q / ctrl+c", Desc: "Quit"},
		},
	}
}
