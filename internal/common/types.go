package common

import (
	tea "github.com/charmbracelet/bubbletea"

	"haat/browse/internal/domain"
)

// ── Screen identifiers ──────────────────────────────────────────────────────

// ScreenID identifies which screen is active.
type ScreenID int

const (
	ScreenMarket ScreenID = iota
	ScreenDetail
)

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals screens to reload data.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// MarketLoadedMsg delivers the fetched market catalog. Fallback is true
// when the data came from the offline catalog after a failed fetch.
type MarketLoadedMsg struct {
	Market   *domain.Market
	Fallback bool
}

// CategoryLoadedMsg delivers a lazily-deepened category.
type CategoryLoadedMsg struct {
	MarketID int
	Category *domain.Category
}

// OpenCategoryMsg requests navigation to the detail screen anchored on a
// category.
type OpenCategoryMsg struct{ CategoryID int }

// DeepenCategoryMsg asks the app to fetch a category's full item data.
type DeepenCategoryMsg struct{ CategoryID int }

// BackMsg requests navigation back to the market screen.
type BackMsg struct{}

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// HelpEntry is one key/description pair shown in the help footer.
type HelpEntry struct {
	Key  string
	Desc string
}

// View is the interface every screen must implement.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []HelpEntry

	// InputCapture returns true when the view is in a text-input mode
	// (e.g. market search) and wants to capture letters and arrows
	// instead of letting the app handle them as shortcuts.
	InputCapture() bool
}
