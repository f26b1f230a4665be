// Package catalog supplies market hierarchies to the UI: a REST client for
// the delivery backend, a TTL cache decorator, and an embedded offline
// catalog used as the fallback data set when the network is unavailable.
package catalog

import (
	"context"
	"errors"

	"haat/browse/internal/domain"
)

// ErrNotFound is returned when the backend reports a missing market or
// category (HTTP 404). Callers fall back to already-loaded data.
var ErrNotFound = errors.New("catalog: not found")

// Service is the data-source contract the UI depends on. Implementations:
// Client (REST), Cached (TTL decorator), Offline (embedded/static data).
type Service interface {
	// FetchMarket loads the full market catalog.
	FetchMarket(ctx context.Context, marketID int) (*domain.Market, error)

	// FetchCategory lazily deepens a single category's data.
	FetchCategory(ctx context.Context, marketID, categoryID int) (*domain.Category, error)
}
