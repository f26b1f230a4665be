package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.Theme)
	}
	if cfg.MarketID != 4532 {
		t.Errorf("market_id = %d, want 4532", cfg.MarketID)
	}
	if cfg.APIBaseURL == "" || cfg.ImageBaseURL == "" {
		t.Error("base URLs must default to non-empty")
	}
	if cfg.Keys != DefaultKeyBindings() {
		t.Errorf("keys = %+v, want defaults", cfg.Keys)
	}
}
