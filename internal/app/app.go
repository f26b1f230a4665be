package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"haat/browse/internal/catalog"
	"haat/browse/internal/common"
	"haat/browse/internal/config"
	"haat/browse/internal/domain"
	"haat/browse/internal/ui"
	"haat/browse/internal/ui/components"
	"haat/browse/internal/ui/views"
)

// Model is the top-level Bubbletea model that orchestrates the two screens:
// the market category grid and the scroll-synced category detail.
type Model struct {
	svc      catalog.Service
	offline  *catalog.Offline
	cfg      *config.Config
	styles   ui.Styles
	keys     KeyMap
	width    int
	height   int
	loading  bool
	spin     spinner.Model
	showHelp bool

	active common.ScreenID
	market *views.MarketView
	detail *views.DetailView

	data     *domain.Market
	fallback bool

	// deepLink is the category to open straight into, negative for none.
	deepLink int

	statusMsg string
	statusErr bool
	statusExp time.Time
}

// New creates a new application model. offline may be nil when no local
// fallback catalog is available.
func New(svc catalog.Service, offline *catalog.Offline, cfg *config.Config, deepLinkCategory int) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		svc:      svc,
		offline:  offline,
		cfg:      cfg,
		styles:   styles,
		keys:     NewKeyMap(cfg.Keys),
		loading:  true,
		spin:     sp,
		active:   common.ScreenMarket,
		market:   views.NewMarketView(styles),
		detail:   views.NewDetailView(styles, cfg.ImageBaseURL),
		deepLink: deepLinkCategory,
	}
}

// Init kicks off the spinner and the first catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchMarket())
}

// fetchMarket loads the catalog in the background. When the live fetch
// fails and an offline catalog exists, it falls back to that and flags the
// data as stale rather than leaving the user on an error screen.
func (m Model) fetchMarket() tea.Cmd {
	svc, offline, cfg := m.svc, m.offline, m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout+2*time.Second)
		defer cancel()

		market, err := svc.FetchMarket(ctx, cfg.MarketID)
		if err == nil {
			return common.MarketLoadedMsg{Market: market}
		}
		log.WithError(err).WithField("market_id", cfg.MarketID).Warn("market fetch failed")

		if offline != nil {
			id := cfg.MarketID
			if offline.MarketID() != 0 {
				id = offline.MarketID()
			}
			if market, offErr := offline.FetchMarket(ctx, id); offErr == nil {
				return common.MarketLoadedMsg{Market: market, Fallback: true}
			}
		}
		return common.ErrMsg{Err: err}
	}
}

// fetchCategory lazily deepens one category.
func (m Model) fetchCategory(categoryID int) tea.Cmd {
	svc, cfg := m.svc, m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout+2*time.Second)
		defer cancel()

		cat, err := svc.FetchCategory(ctx, cfg.MarketID, categoryID)
		if err != nil {
			log.WithError(err).WithField("category_id", categoryID).Warn("category fetch failed")
			return common.ErrMsg{Err: err}
		}
		return common.CategoryLoadedMsg{MarketID: cfg.MarketID, Category: cat}
	}
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.contentHeight()
		m.market.SetSize(m.width, contentH)
		m.detail.SetSize(m.width, contentH)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case common.MarketLoadedMsg:
		m.loading = false
		m.data = msg.Market
		m.fallback = msg.Fallback
		m.market.SetMarket(msg.Market)
		if m.active == common.ScreenDetail {
			m.detail.SetMarket(msg.Market)
		}
		if msg.Fallback {
			m.statusMsg = "backend unreachable, showing offline catalog"
			m.statusErr = false
			m.statusExp = time.Now().Add(8 * time.Second)
		}
		if m.deepLink >= 0 {
			target := m.deepLink
			m.deepLink = -1
			m.active = common.ScreenDetail
			return m, m.detail.Open(m.data, target)
		}
		return m, nil

	case common.OpenCategoryMsg:
		if m.data == nil {
			return m, nil
		}
		m.active = common.ScreenDetail
		return m, m.detail.Open(m.data, msg.CategoryID)

	case common.BackMsg:
		m.active = common.ScreenMarket
		return m, nil

	case common.DeepenCategoryMsg:
		if m.fallback || m.cfg.Offline {
			// Offline data is already complete.
			return m, nil
		}
		return m, m.fetchCategory(msg.CategoryID)

	case common.RefreshMsg:
		var reload tea.Cmd
		if m.offline != nil {
			if err := m.offline.Reload(); err != nil {
				log.WithError(err).Warn("offline catalog reload failed")
				reload = common.CmdErr(err)
			} else if m.cfg.Offline {
				reload = common.CmdInfo("catalog reloaded")
			}
		}
		m.loading = m.data == nil
		return m, tea.Batch(reload, m.fetchMarket())

	case common.ErrMsg:
		m.loading = false
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil

	case common.CategoryLoadedMsg:
		// Keep the master copy in sync, then let the detail screen merge.
		if m.data != nil && msg.Category != nil {
			for i := range m.data.Categories {
				if m.data.Categories[i].ID == msg.Category.ID {
					m.data.Categories[i] = *msg.Category
					break
				}
			}
		}
		updated, cmd := m.detail.Update(msg)
		m.detail = updated.(*views.DetailView)
		return m, cmd

	case tea.MouseMsg:
		return m.forwardToActive(msg)

	case tea.KeyMsg:
		if m.activeView().InputCapture() {
			return m.forwardToActive(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, common.CmdRefresh
		case key.Matches(msg, m.keys.Back):
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
		}
		return m.forwardToActive(msg)
	}

	// Timer and other internal messages go to both screens; each ignores
	// what isn't theirs.
	updatedDetail, cmd := m.detail.Update(msg)
	m.detail = updatedDetail.(*views.DetailView)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	updatedMarket, cmd := m.market.Update(msg)
	m.market = updatedMarket.(*views.MarketView)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.active {
	case common.ScreenDetail:
		updated, cmd := m.detail.Update(msg)
		m.detail = updated.(*views.DetailView)
		return m, cmd
	default:
		updated, cmd := m.market.Update(msg)
		m.market = updated.(*views.MarketView)
		return m, cmd
	}
}

func (m Model) activeView() common.View {
	if m.active == common.ScreenDetail {
		return m.detail
	}
	return m.market
}

// View renders the entire UI. This is a pure function — no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries()
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	if m.loading {
		return ui.PlaceCentre(m.width, m.height,
			m.spin.View()+" "+m.styles.Muted.Render("Fetching market…"))
	}

	content := m.activeView().View()
	contentH := m.contentHeight()
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(content)

	barData := components.StatusBarData{
		Offline:  m.cfg.Offline,
		Fallback: m.fallback,
	}
	if m.data != nil {
		barData.MarketName = m.data.Name
		barData.ItemCount = m.data.ItemCount()
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) contentHeight() int {
	h := m.height - 1 // status bar
	if h < 1 {
		h = 1
	}
	return h
}
