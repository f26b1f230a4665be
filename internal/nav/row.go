// Package nav implements the scroll-synchronized hierarchical navigation
// engine behind the market-detail screen: flattening the category tree into
// a single scrollable list, mapping scroll offsets back to entities, and
// keeping the two tab strips and the list in sync in both directions.
//
// Everything in this package is pure bookkeeping — it never renders, never
// sleeps, and never touches the network. Timers (settle windows, initial
// scroll retries) are driven by the caller; the engine only exposes the
// delays as tunable constants.
package nav

import (
	"fmt"

	"haat/browse/internal/domain"
)

// RowKind discriminates the flattened row variants.
type RowKind int

const (
	// RowCategoryHeader introduces a category section.
	RowCategoryHeader RowKind = iota
	// RowSubCategoryHeader introduces a subcategory section.
	RowSubCategoryHeader
	// RowItemGrid holds all items of one subcategory, laid out in a fixed
	// column grid. Only emitted for subcategories with at least one item.
	RowItemGrid
)

// String returns a short name for the row kind.
func (k RowKind) String() string {
	switch k {
	case RowCategoryHeader:
		return "category"
	case RowSubCategoryHeader:
		return "subcategory"
	case RowItemGrid:
		return "items-grid"
	default:
		return "unknown"
	}
}

// Row is one entry of the flattened scroll surface. Category is always set;
// SubCategory and Items are set depending on Kind.
type Row struct {
	Kind        RowKind
	Category    *domain.Category
	SubCategory *domain.SubCategory
	Items       []domain.Item
}

// Key returns a stable string identifier for the row, derived from its kind
// and the owning entity's id. Used as a list key and for index lookups.
func (r Row) Key() string {
	switch r.Kind {
	case RowCategoryHeader:
		return fmt.Sprintf("category-%d", r.Category.ID)
	case RowSubCategoryHeader:
		return fmt.Sprintf("subcategory-%d", r.SubCategory.ID)
	default:
		return fmt.Sprintf("items-%d", r.SubCategory.ID)
	}
}
