package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"haat/browse/internal/domain"
	"haat/browse/internal/ui"
)

// ItemDialogClosedMsg is sent when the item dialog is dismissed.
type ItemDialogClosedMsg struct{}

// ItemDialog is a modal card showing one product's full details.
type ItemDialog struct {
	Item     domain.Item
	ImageURL string
	styles   ui.Styles
	visible  bool
}

// NewItemDialog creates a product detail dialog.
func NewItemDialog(styles ui.Styles, item domain.Item, imageURL string) ItemDialog {
	return ItemDialog{
		Item:     item,
		ImageURL: imageURL,
		styles:   styles,
		visible:  true,
	}
}

// Visible returns whether the dialog is showing.
func (d ItemDialog) Visible() bool { return d.visible }

// Update handles key events for the dialog.
func (d ItemDialog) Update(msg tea.Msg) (ItemDialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", "q":
			d.visible = false
			return d, func() tea.Msg { return ItemDialogClosedMsg{} }
		}
	}
	return d, nil
}

// View renders the dialog.
func (d ItemDialog) View() string {
	if !d.visible {
		return ""
	}
	t := d.styles.Theme

	title := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(d.Item.Name)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted).Render(d.Item.Description)
	price := d.styles.Price.Render(fmt.Sprintf("₪%.2f", d.Item.Price))

	content := title + "\n\n" + desc + "\n\n" + price
	if d.ImageURL != "" {
		link := lipgloss.NewStyle().Foreground(t.Info).Underline(true).Render(d.ImageURL)
		content += "\n" + d.styles.Muted.Render("image: ") + link
	}
	content += "\n\n" + ui.RenderKeyValue(d.styles, "esc", "close")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(56).
		Render(content)
}
