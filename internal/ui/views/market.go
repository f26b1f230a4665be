package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"haat/browse/internal/common"
	"haat/browse/internal/domain"
	"haat/browse/internal/ui"
)

// MarketView is the entry screen: the market's categories in a grid, with
// incremental search. Selecting a category opens the detail screen
// anchored on it.
type MarketView struct {
	styles ui.Styles
	width  int
	height int

	market   *domain.Market
	filtered []domain.Category
	cursor   int
	vp       viewport.Model

	search    textinput.Model
	searching bool
}

// NewMarketView creates the market screen.
func NewMarketView(styles ui.Styles) *MarketView {
	ti := textinput.New()
	ti.Placeholder = "search categories"
	ti.CharLimit = 60
	ti.Width = 30

	return &MarketView{
		styles: styles,
		search: ti,
		vp:     viewport.New(0, 0),
	}
}

func (v *MarketView) Init() tea.Cmd { return nil }

func (v *MarketView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h - 2
	v.rebuildContent()
}

// SetMarket installs a freshly loaded catalog, preserving the cursor when
// the selected category still exists.
func (v *MarketView) SetMarket(m *domain.Market) {
	var keepID int
	if c := v.selectedCategory(); c != nil {
		keepID = c.ID
	}
	v.market = m
	v.applyFilter()
	if keepID != 0 {
		for i, c := range v.filtered {
			if c.ID == keepID {
				v.cursor = i
				break
			}
		}
	}
	v.rebuildContent()
}

func (v *MarketView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *MarketView) handleKey(msg tea.KeyMsg) (common.View, tea.Cmd) {
	if v.searching {
		switch msg.String() {
		case "esc":
			v.searching = false
			v.search.Blur()
			v.search.SetValue("")
			v.applyFilter()
			v.rebuildContent()
			return v, nil
		case "enter":
			v.searching = false
			v.search.Blur()
			return v, v.openSelected()
		default:
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			v.applyFilter()
			v.rebuildContent()
			return v, cmd
		}
	}

	switch msg.String() {
	case "/":
		v.searching = true
		v.search.Focus()
		return v, textinput.Blink
	case "j", "down":
		if v.cursor < len(v.filtered)-1 {
			v.cursor++
			v.rebuildContent()
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
			v.rebuildContent()
		}
	case "g", "home":
		v.cursor = 0
		v.rebuildContent()
	case "G", "end":
		if len(v.filtered) > 0 {
			v.cursor = len(v.filtered) - 1
			v.rebuildContent()
		}
	case "enter", "l", "right":
		return v, v.openSelected()
	}
	return v, nil
}

func (v *MarketView) handleMouse(msg tea.MouseMsg) (common.View, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if v.cursor > 0 {
			v.cursor--
			v.rebuildContent()
		}
	case tea.MouseButtonWheelDown:
		if v.cursor < len(v.filtered)-1 {
			v.cursor++
			v.rebuildContent()
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		// Rows start below the title block.
		row := msg.Y - 4 + v.vp.YOffset
		if row >= 0 && row/2 < len(v.filtered) && row%2 == 0 {
			v.cursor = row / 2
			v.rebuildContent()
			return v, v.openSelected()
		}
	}
	return v, nil
}

func (v *MarketView) openSelected() tea.Cmd {
	c := v.selectedCategory()
	if c == nil {
		return nil
	}
	id := c.ID
	return func() tea.Msg { return common.OpenCategoryMsg{CategoryID: id} }
}

func (v *MarketView) selectedCategory() *domain.Category {
	if v.cursor < 0 || v.cursor >= len(v.filtered) {
		return nil
	}
	return &v.filtered[v.cursor]
}

func (v *MarketView) applyFilter() {
	if v.market == nil {
		v.filtered = nil
		return
	}
	query := strings.ToLower(strings.TrimSpace(v.search.Value()))
	if query == "" {
		v.filtered = v.market.Categories
	} else {
		v.filtered = v.filtered[:0:0]
		for _, c := range v.market.Categories {
			if strings.Contains(strings.ToLower(c.Name), query) {
				v.filtered = append(v.filtered, c)
			}
		}
	}
	if v.cursor >= len(v.filtered) {
		v.cursor = 0
	}
}

func (v *MarketView) View() string {
	if v.market == nil {
		return ui.PlaceCentre(v.width, v.height, v.styles.Muted.Render("Loading market…"))
	}
	return v.vp.View()
}

func (v *MarketView) rebuildContent() {
	if v.market == nil {
		return
	}
	var b strings.Builder

	b.WriteString(" " + v.styles.Title.Render(v.market.Name) + "\n")
	if v.market.Address != "" {
		b.WriteString(" " + v.styles.Muted.Render(v.market.Address) + "\n")
	}
	if v.searching || v.search.Value() != "" {
		b.WriteString(" " + v.search.View() + "\n")
	}
	b.WriteByte('\n')

	if len(v.filtered) == 0 {
		b.WriteString(v.styles.EmptyHint.Render("No categories match"))
	}

	for i, c := range v.filtered {
		count := 0
		for _, sc := range c.SubCategories {
			count += len(sc.Items)
		}
		line := fmt.Sprintf("%s  %s", c.Name, v.styles.Muted.Render(fmt.Sprintf("%d items", count)))
		if i == v.cursor {
			b.WriteString(v.styles.ListSelected.Render("▸ "+line) + "\n\n")
		} else {
			b.WriteString(v.styles.ListItem.Render(line) + "\n\n")
		}
	}

	v.vp.SetContent(b.String())

	// Keep the cursor row inside the viewport.
	cursorLine := 4 + v.cursor*2
	if cursorLine < v.vp.YOffset {
		v.vp.SetYOffset(cursorLine)
	} else if cursorLine >= v.vp.YOffset+v.vp.Height {
		v.vp.SetYOffset(cursorLine - v.vp.Height + 1)
	}
}

func (v *MarketView) ShortHelp() []common.HelpEntry {
	return []common.HelpEntry{
		{Key: "↑/↓", Desc: "Select category"},
		{Key: "enter", Desc: "Open category"},
		{Key: "/", Desc: "Search"},
	}
}

func (v *MarketView) InputCapture() bool { return v.searching }

var _ common.View = (*MarketView)(nil)
