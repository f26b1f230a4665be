package config

// KeyBindings holds the user-overridable global keys. Screen-local keys
// (scrolling, tab strips, search) are fixed; only the bindings that must
// work on every screen are configurable, under the `keys` section.
type KeyBindings struct {
	Quit    string `mapstructure:"quit"`
	Help    string `mapstructure:"help"`
	Back    string `mapstructure:"back"`
	Refresh string `mapstructure:"refresh"`
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:    "q",
		Help:    "?",
		Back:    "esc",
		Refresh: "r",
	}
}
