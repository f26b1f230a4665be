package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the application.
// The warm palette follows the reference food-delivery branding.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Price    lipgloss.Color
	Discount lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#FF6B35"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#FF6B35"),
		Secondary: lipgloss.Color("#F7931E"),
		Accent:    lipgloss.Color("#FFD93D"),

		Price:    lipgloss.Color("#a6e3a1"),
		Discount: lipgloss.Color("#f38ba8"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),
	}
}

// LightTheme returns a light variant for bright terminals.
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#fafafa"),
		Surface:       lipgloss.Color("#eeeeee"),
		SurfaceHover:  lipgloss.Color("#e0e0e0"),
		Border:        lipgloss.Color("#cccccc"),
		BorderFocused: lipgloss.Color("#E55A2B"),

		Text:        lipgloss.Color("#2e2e2e"),
		TextMuted:   lipgloss.Color("#666666"),
		TextSubtle:  lipgloss.Color("#999999"),
		TextInverse: lipgloss.Color("#fafafa"),

		Primary:   lipgloss.Color("#E55A2B"),
		Secondary: lipgloss.Color("#D97F14"),
		Accent:    lipgloss.Color("#C9A400"),

		Price:    lipgloss.Color("#2f7d32"),
		Discount: lipgloss.Color("#c62828"),

		Success: lipgloss.Color("#2f7d32"),
		Warning: lipgloss.Color("#b26a00"),
		Error:   lipgloss.Color("#c62828"),
		Info:    lipgloss.Color("#1565c0"),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	TabBar    lipgloss.Style
	TabActive lipgloss.Style
	TabPinned lipgloss.Style
	TabItem   lipgloss.Style
	Content   lipgloss.Style
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// List items
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListDimmed   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	KeyBind  lipgloss.Style
	KeyDesc  lipgloss.Style

	// Catalog rows
	CategoryHeader    lipgloss.Style
	SubCategoryHeader lipgloss.Style
	ItemName          lipgloss.Style
	ItemDesc          lipgloss.Style
	Price             lipgloss.Style
	PriceOld          lipgloss.Style
	EmptyHint         lipgloss.Style

	// Banners
	ErrorBanner   lipgloss.Style
	WarningBanner lipgloss.Style

	Spinner lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.TabBar = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)
	s.TabActive = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 2).
		Background(t.Bg).BorderBottom(true).BorderStyle(lipgloss.ThickBorder()).BorderBottomForeground(t.Primary)
	s.TabPinned = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).Padding(0, 2)
	s.TabItem = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 2)
	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.HelpBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)

	s.Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	s.PanelFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderFocused).Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Padding(0, 1)

	s.ListItem = lipgloss.NewStyle().Foreground(t.Text).PaddingLeft(2)
	s.ListSelected = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true).PaddingLeft(1)
	s.ListDimmed = lipgloss.NewStyle().Foreground(t.TextSubtle).PaddingLeft(2)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Subtitle = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.CategoryHeader = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(t.Border)
	s.SubCategoryHeader = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).PaddingLeft(1)
	s.ItemName = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.ItemDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Price = lipgloss.NewStyle().Foreground(t.Price).Bold(true)
	s.PriceOld = lipgloss.NewStyle().Foreground(t.TextSubtle).Strikethrough(true)
	s.EmptyHint = lipgloss.NewStyle().Foreground(t.TextSubtle).Italic(true).PaddingLeft(2)

	s.ErrorBanner = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Error).Padding(0, 1).Bold(true)
	s.WarningBanner = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Warning).Padding(0, 1)

	s.Spinner = lipgloss.NewStyle().Foreground(t.Primary)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
