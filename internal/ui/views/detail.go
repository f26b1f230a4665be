package views

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"haat/browse/internal/common"
	"haat/browse/internal/domain"
	"haat/browse/internal/imageutil"
	"haat/browse/internal/nav"
	"haat/browse/internal/ui"
	"haat/browse/internal/ui/components"
)

// scrollIdleDelay is how long after the last scroll event the list is
// considered at rest. Terminals have no momentum-scroll completion event,
// so rest is synthesized by debounce.
const scrollIdleDelay = 250 * time.Millisecond

// stripRows is the chrome above the list: two tab strips.
const stripRows = 2 * components.TabStripHeight

// detailMetrics maps row kinds to their rendered line counts. These must
// match what rebuildContent emits line for line, or programmatic scroll
// targets land off by the accumulated error.
func detailMetrics() nav.Metrics {
	return nav.Metrics{
		CategoryHeaderHeight:    2,
		SubCategoryHeaderHeight: 1,
		ItemRowHeight:           components.ItemCardLines,
		GridColumns:             2,
		ThrottleThreshold:       1,
	}
}

// Internal timer messages. Each carries enough to detect staleness so a
// late tick never acts on a newer interaction.
type initialScrollMsg struct{ gen int }
type settleMsg struct{ gen int }
type scrollIdleMsg struct{ seq int }

// DetailView is the market detail screen: two pinned-first tab strips over
// a scrollable flattened category list, kept in sync both ways by the
// navigation controller.
type DetailView struct {
	styles    ui.Styles
	imageBase string
	width     int
	height    int

	market *domain.Market
	ctrl   *nav.Controller
	vp     viewport.Model

	scrollSeq int // bumped per scroll event, stale idle ticks no-op
	gen       int // bumped per mount, stale mount/settle ticks no-op

	dialog components.ItemDialog
}

// NewDetailView creates the detail screen. Open must be called before it
// renders anything useful.
func NewDetailView(styles ui.Styles, imageBase string) *DetailView {
	return &DetailView{
		styles:    styles,
		imageBase: imageBase,
		vp:        viewport.New(0, 0),
	}
}

// Open mounts the screen on a market, anchored on a category (negative for
// the first one). Returns the commands driving the initial scroll retries.
func (v *DetailView) Open(market *domain.Market, categoryID int) tea.Cmd {
	v.market = market
	v.gen++
	v.ctrl = nav.NewController(market.Categories, detailMetrics(), log.StandardLogger())
	v.ctrl.Mount(categoryID)
	v.rebuildContent()
	v.vp.GotoTop()

	gen := v.gen
	cmds := make([]tea.Cmd, 0, len(nav.InitialScrollSchedule)+1)
	for _, delay := range nav.InitialScrollSchedule {
		if delay == 0 {
			cmds = append(cmds, func() tea.Msg { return initialScrollMsg{gen: gen} })
			continue
		}
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg { return initialScrollMsg{gen: gen} }))
	}
	if v.needsDeepen(categoryID) {
		id := categoryID
		cmds = append(cmds, func() tea.Msg { return common.DeepenCategoryMsg{CategoryID: id} })
	}
	return tea.Batch(cmds...)
}

// needsDeepen reports whether a category arrived shallow (no items behind
// any subcategory) and should be fetched in full.
func (v *DetailView) needsDeepen(categoryID int) bool {
	if v.market == nil {
		return false
	}
	cat := v.market.CategoryByID(categoryID)
	if cat == nil {
		return false
	}
	for _, sc := range cat.SubCategories {
		if sc.HasItems() {
			return false
		}
	}
	return len(cat.SubCategories) > 0
}

func (v *DetailView) Init() tea.Cmd { return nil }

func (v *DetailView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.vp.Width = w - 1 // one column reserved for the scrollbar
	if v.vp.Width < 1 {
		v.vp.Width = 1
	}
	v.vp.Height = h - stripRows
	if v.vp.Height < 1 {
		v.vp.Height = 1
	}
	v.rebuildContent()
}

func (v *DetailView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	if v.dialog.Visible() {
		var cmd tea.Cmd
		v.dialog, cmd = v.dialog.Update(msg)
		return v, cmd
	}

	switch msg := msg.(type) {
	case initialScrollMsg:
		if msg.gen != v.gen || v.ctrl == nil {
			return v, nil
		}
		if cmd, ok := v.ctrl.TryInitialScroll(); ok {
			return v, v.applyScroll(cmd)
		}
		return v, nil

	case settleMsg:
		if msg.gen == v.gen && v.ctrl != nil {
			v.ctrl.ScrollSettled()
		}
		return v, nil

	case scrollIdleMsg:
		if msg.seq == v.scrollSeq && v.ctrl != nil {
			v.ctrl.ScrollEnded(v.vp.YOffset, v.vp.Height)
		}
		return v, nil

	case common.CategoryLoadedMsg:
		v.mergeCategory(msg.Category)
		return v, nil

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *DetailView) handleMouse(msg tea.MouseMsg) (common.View, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.vp.ScrollUp(3)
		return v, v.onScroll()
	case tea.MouseButtonWheelDown:
		v.vp.ScrollDown(3)
		return v, v.onScroll()
	}
	return v, nil
}

func (v *DetailView) handleKey(msg tea.KeyMsg) (common.View, tea.Cmd) {
	if v.ctrl == nil {
		return v, nil
	}
	switch msg.String() {
	case "j", "down":
		v.vp.ScrollDown(1)
		return v, v.onScroll()
	case "k", "up":
		v.vp.ScrollUp(1)
		return v, v.onScroll()
	case "ctrl+d", "pgdown":
		v.vp.HalfPageDown()
		return v, v.onScroll()
	case "ctrl+u", "pgup":
		v.vp.HalfPageUp()
		return v, v.onScroll()
	case "g", "home":
		v.vp.GotoTop()
		return v, v.onScroll()
	case "G", "end":
		v.vp.GotoBottom()
		return v, v.onScroll()

	case "tab":
		return v, v.cycleCategory(1)
	case "shift+tab":
		return v, v.cycleCategory(-1)
	case "]", "l", "right":
		return v, v.cycleSubCategory(1)
	case "[", "h", "left":
		return v, v.cycleSubCategory(-1)

	case "enter":
		return v.openItemDialog()

	case "esc":
		return v, func() tea.Msg { return common.BackMsg{} }
	}
	return v, nil
}

// cycleCategory taps the previous/next category in hierarchy order. The
// strip shows projected order, but cycling follows the stable hierarchy so
// repeated presses walk every category instead of ping-ponging across the
// re-pinned front.
func (v *DetailView) cycleCategory(step int) tea.Cmd {
	if v.market == nil || len(v.market.Categories) == 0 {
		return nil
	}
	cats := v.market.Categories
	idx := 0
	if sel := v.ctrl.SelectedCategory(); sel != nil {
		for i := range cats {
			if cats[i].ID == sel.ID {
				idx = i
				break
			}
		}
	}
	next := cats[(idx+step+len(cats))%len(cats)]

	var cmds []tea.Cmd
	if cmd, ok := v.ctrl.TapCategory(next.ID); ok {
		cmds = append(cmds, v.applyScroll(cmd))
	}
	if v.needsDeepen(next.ID) {
		id := next.ID
		cmds = append(cmds, func() tea.Msg { return common.DeepenCategoryMsg{CategoryID: id} })
	}
	return tea.Batch(cmds...)
}

func (v *DetailView) cycleSubCategory(step int) tea.Cmd {
	sel := v.ctrl.SelectedCategory()
	if sel == nil || len(sel.SubCategories) == 0 {
		return nil
	}
	subs := sel.SubCategories
	idx := 0
	if ss := v.ctrl.SelectedSubCategory(); ss != nil {
		for i := range subs {
			if subs[i].ID == ss.ID {
				idx = i
				break
			}
		}
	}
	next := subs[(idx+step+len(subs))%len(subs)]
	if cmd, ok := v.ctrl.TapSubCategory(next.ID); ok {
		return v.applyScroll(cmd)
	}
	return nil
}

func (v *DetailView) openItemDialog() (common.View, tea.Cmd) {
	sub := v.ctrl.VisibleSubCategory()
	if sub == nil {
		sub = v.ctrl.SelectedSubCategory()
	}
	if sub == nil || len(sub.Items) == 0 {
		return v, nil
	}
	item := sub.Items[0]
	v.dialog = components.NewItemDialog(v.styles, item, imageutil.ResolveURL(v.imageBase, item.ImagePath))
	return v, nil
}

// onScroll feeds the new offset to the controller and arms the scroll-idle
// debounce. Every event bumps the sequence so only the last tick acts.
func (v *DetailView) onScroll() tea.Cmd {
	v.scrollSeq++
	seq := v.scrollSeq
	v.ctrl.HandleScroll(v.vp.YOffset, v.vp.Height)
	return tea.Tick(scrollIdleDelay, func(time.Time) tea.Msg { return scrollIdleMsg{seq: seq} })
}

// applyScroll executes an engine-issued scroll command and arms the settle
// timer that returns the state machine to idle.
func (v *DetailView) applyScroll(cmd nav.ScrollCommand) tea.Cmd {
	v.rebuildContent()
	v.vp.SetYOffset(cmd.Offset)
	gen := v.gen
	return tea.Tick(nav.SettleDelay, func(time.Time) tea.Msg { return settleMsg{gen: gen} })
}

// mergeCategory swaps a lazily fetched category into the hierarchy and
// re-feeds the controller, which re-resolves selection by id.
func (v *DetailView) mergeCategory(cat *domain.Category) {
	if v.market == nil || cat == nil || v.ctrl == nil {
		return
	}
	for i := range v.market.Categories {
		if v.market.Categories[i].ID == cat.ID {
			v.market.Categories[i] = *cat
			break
		}
	}
	v.ctrl.SetCategories(v.market.Categories)
	v.rebuildContent()
}

// SetMarket installs a refreshed catalog (offline reload, manual refresh).
func (v *DetailView) SetMarket(m *domain.Market) {
	if v.ctrl == nil {
		return
	}
	v.market = m
	v.ctrl.SetCategories(m.Categories)
	v.rebuildContent()
}

func (v *DetailView) View() string {
	if v.ctrl == nil || v.market == nil {
		return ui.PlaceCentre(v.width, v.height, v.styles.Muted.Render("Loading…"))
	}

	if v.dialog.Visible() {
		return ui.PlaceCentre(v.width, v.height, v.dialog.View())
	}

	catStrip := components.RenderTabStrip(v.styles, v.categoryTabs(), v.width)
	subStrip := components.RenderTabStrip(v.styles, v.subCategoryTabs(), v.width)

	body := v.vp.View()
	bar := components.RenderScrollbar(v.styles, v.vp.Height, v.vp.TotalLineCount(), v.vp.Height, v.vp.ScrollPercent())
	if bar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, catStrip, subStrip, body)
}

func (v *DetailView) categoryTabs() []components.TabInfo {
	selID := -1
	if sel := v.ctrl.SelectedCategory(); sel != nil {
		selID = sel.ID
	}
	cats := v.ctrl.CategoryTabs()
	tabs := make([]components.TabInfo, len(cats))
	for i, c := range cats {
		empty := true
		for _, sc := range c.SubCategories {
			if sc.HasItems() {
				empty = false
				break
			}
		}
		tabs[i] = components.TabInfo{
			ID:     c.ID,
			Name:   c.Name,
			Active: c.ID == selID,
			Pinned: i == 0 && c.ID == selID,
			Empty:  empty,
		}
	}
	return tabs
}

func (v *DetailView) subCategoryTabs() []components.TabInfo {
	selID := -1
	if sel := v.ctrl.SelectedSubCategory(); sel != nil {
		selID = sel.ID
	}
	subs := v.ctrl.SubCategoryTabs()
	tabs := make([]components.TabInfo, len(subs))
	for i, s := range subs {
		tabs[i] = components.TabInfo{
			ID:     s.ID,
			Name:   s.Name,
			Active: s.ID == selID,
			Pinned: i == 0 && s.ID == selID,
			Empty:  !s.HasItems(),
		}
	}
	return tabs
}

// rebuildContent renders every flattened row at exactly the line count the
// layout metrics promise.
func (v *DetailView) rebuildContent() {
	if v.ctrl == nil {
		return
	}
	m := detailMetrics()
	contentW := v.vp.Width
	if contentW < 20 {
		contentW = 20
	}

	var lines []string
	for _, r := range v.ctrl.Rows() {
		switch r.Kind {
		case nav.RowCategoryHeader:
			header := v.styles.CategoryHeader.Width(contentW - 2).Render(r.Category.Name)
			lines = append(lines, splitToHeight(header, m.CategoryHeaderHeight)...)

		case nav.RowSubCategoryHeader:
			label := v.styles.SubCategoryHeader.Render(r.SubCategory.Name)
			if !r.SubCategory.HasItems() {
				label += v.styles.EmptyHint.Render("  (no items)")
			}
			lines = append(lines, splitToHeight(label, m.SubCategoryHeaderHeight)...)

		case nav.RowItemGrid:
			cols := m.GridColumns
			for start := 0; start < len(r.Items); start += cols {
				end := min(start+cols, len(r.Items))
				row := components.RenderItemRow(v.styles, r.Items[start:end], -1, contentW, cols)
				lines = append(lines, splitToHeight(row, m.ItemRowHeight)...)
			}
		}
	}

	var b []byte
	for i, l := range lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, l...)
	}
	v.vp.SetContent(string(b))
}

// splitToHeight splits rendered output into lines, padding or trimming to
// exactly n so cumulative offsets stay aligned with the layout estimate.
func splitToHeight(s string, n int) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	for len(out) < n {
		out = append(out, "")
	}
	return out[:n]
}

func (v *DetailView) ShortHelp() []common.HelpEntry {
	return []common.HelpEntry{
		{Key: "j/k", Desc: "Scroll"},
		{Key: "tab", Desc: "Next category"},
		{Key: "[ ]", Desc: "Subcategories"},
		{Key: "enter", Desc: "Item details"},
		{Key: "esc", Desc: "Back to market"},
	}
}

func (v *DetailView) InputCapture() bool { return v.dialog.Visible() }

var _ common.View = (*DetailView)(nil)
