package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShouldIgnore(t *testing.T) {
	cases := []struct {
		path   string
		target string
		want   bool
	}{
		{"/data/catalog.json", "catalog.json", false},
		{"/data/other.json", "catalog.json", true},
		{"/data/catalog.json.swp", "catalog.json", true},
		{"/data/catalog.json~", "catalog.json", true},
		{"/data/.#catalog.json", "catalog.json", true},
	}
	for _, c := range cases {
		if got := shouldIgnore(c.path, c.target); got != c.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestWatchDeliversCoalescedEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch, stop, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	// Burst of writes must coalesce into (at least) one event.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no event after file change")
	}
}

func TestWatchTinyDebounce(t *testing.T) {
	// A sub-2ns debounce leaves no room for jitter; the watcher must not
	// panic and must still deliver the event.
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch, stop, err := Watch(path, 1)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no event after file change")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch, stop, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ch:
		t.Fatal("event for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}
