package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"haat/browse/internal/domain"
)

//go:embed data/market.json
var embeddedMarket []byte

// Offline serves catalog data from a local source: the embedded sample
// market by default, or a JSON file on disk (same wire format as the API)
// when one is configured. Used with --offline and as the automatic
// fallback when the backend is unreachable.
type Offline struct {
	mu     sync.RWMutex
	market *domain.Market
	path   string
}

// Compile-time check.
var _ Service = (*Offline)(nil)

// NewOffline builds an offline service from the embedded sample catalog.
func NewOffline() *Offline {
	m, err := decodeMarket(embeddedMarket)
	if err != nil {
		// The embedded payload is fixed at build time; failure here is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("catalog: embedded market data invalid: %v", err))
	}
	return &Offline{market: m}
}

// NewOfflineFromFile builds an offline service backed by a catalog file.
// Reload re-reads the same path, which is what the file watcher calls.
func NewOfflineFromFile(path string) (*Offline, error) {
	o := &Offline{path: path}
	if err := o.Reload(); err != nil {
		return nil, err
	}
	return o, nil
}

// Reload re-reads the backing file, if any. The previous catalog is kept
// on error so a half-written file during save never blanks the screen.
func (o *Offline) Reload() error {
	if o.path == "" {
		return nil
	}
	data, err := os.ReadFile(o.path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	m, err := decodeMarket(data)
	if err != nil {
		return fmt.Errorf("parse catalog file %s: %w", o.path, err)
	}
	o.mu.Lock()
	o.market = m
	o.mu.Unlock()
	log.WithFields(log.Fields{
		"path":       o.path,
		"market_id":  m.ID,
		"categories": len(m.Categories),
	}).Info("offline catalog reloaded")
	return nil
}

// FetchMarket returns the loaded market when the id matches.
func (o *Offline) FetchMarket(_ context.Context, marketID int) (*domain.Market, error) {
	o.mu.RLock()
	m := o.market
	o.mu.RUnlock()
	if m == nil || m.ID != marketID {
		return nil, ErrNotFound
	}
	return m, nil
}

// FetchCategory returns a category from the loaded market. Offline data is
// already fully populated, so this never deepens anything.
func (o *Offline) FetchCategory(_ context.Context, marketID, categoryID int) (*domain.Category, error) {
	m, err := o.FetchMarket(context.Background(), marketID)
	if err != nil {
		return nil, err
	}
	cat := m.CategoryByID(categoryID)
	if cat == nil {
		return nil, ErrNotFound
	}
	return cat, nil
}

// MarketID reports the id of the loaded market, for default-market
// resolution when running offline.
func (o *Offline) MarketID() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.market == nil {
		return 0
	}
	return o.market.ID
}

func decodeMarket(data []byte) (*domain.Market, error) {
	var raw domain.APIMarket
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return domain.Normalize(&raw), nil
}
