package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOfflineEmbeddedCatalog(t *testing.T) {
	o := NewOffline()

	m, err := o.FetchMarket(context.Background(), o.MarketID())
	if err != nil {
		t.Fatalf("FetchMarket: %v", err)
	}
	if m.ID != 4532 {
		t.Errorf("market id = %d, want 4532", m.ID)
	}
	if m.Name != "Haat Food Market" {
		t.Errorf("market name = %q", m.Name)
	}
	if len(m.Categories) != 3 {
		t.Fatalf("categories = %d, want 3", len(m.Categories))
	}
	if m.ItemCount() != 12 {
		t.Errorf("item count = %d, want 12", m.ItemCount())
	}

	// Everything is normalized: localized names resolved, prices set.
	burger := m.Categories[0].SubCategories[0].Items[0]
	if burger.Name != "Classic Beef Burger" || burger.Price != 8.99 {
		t.Errorf("first item = %q/%v", burger.Name, burger.Price)
	}
}

func TestOfflineUnknownMarket(t *testing.T) {
	o := NewOffline()
	if _, err := o.FetchMarket(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestOfflineFetchCategory(t *testing.T) {
	o := NewOffline()

	cat, err := o.FetchCategory(context.Background(), 4532, 3)
	if err != nil {
		t.Fatalf("FetchCategory: %v", err)
	}
	if cat.Name != "Desserts" {
		t.Errorf("category name = %q", cat.Name)
	}

	if _, err := o.FetchCategory(context.Background(), 4532, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestOfflineFromFileAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	writeCatalog := func(name string) {
		t.Helper()
		data := []byte(`{"id": 99, "name": {"en-US": "` + name + `"}, "marketCategories": []}`)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	writeCatalog("Corner Shop")
	o, err := NewOfflineFromFile(path)
	if err != nil {
		t.Fatalf("NewOfflineFromFile: %v", err)
	}
	m, err := o.FetchMarket(context.Background(), 99)
	if err != nil {
		t.Fatalf("FetchMarket: %v", err)
	}
	if m.Name != "Corner Shop" {
		t.Errorf("name = %q", m.Name)
	}

	writeCatalog("Corner Shop v2")
	if err := o.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	m, _ = o.FetchMarket(context.Background(), 99)
	if m.Name != "Corner Shop v2" {
		t.Errorf("name after reload = %q", m.Name)
	}

	// A broken file keeps the previous catalog.
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := o.Reload(); err == nil {
		t.Error("Reload accepted invalid JSON")
	}
	m, err = o.FetchMarket(context.Background(), 99)
	if err != nil || m.Name != "Corner Shop v2" {
		t.Errorf("catalog lost after failed reload: %v %v", m, err)
	}
}

func TestOfflineFromMissingFile(t *testing.T) {
	if _, err := NewOfflineFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file accepted")
	}
}
