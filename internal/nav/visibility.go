package nav

import "haat/browse/internal/domain"

// DefaultThrottleThreshold is the minimum scroll-offset delta (layout units)
// between two accepted resolutions. Sub-threshold jitter — momentum
// micro-scrolls, rubber-banding — must not thrash tab highlights.
const DefaultThrottleThreshold = 50

// Visible is the category/subcategory pair a resolution produced. A
// category-header row yields a nil SubCategory.
type Visible struct {
	Category    *domain.Category
	SubCategory *domain.SubCategory
}

// SameAs compares two pairs by entity id, not pointer identity: the
// hierarchy may be rebuilt (pin reorder, reload) between resolutions.
func (v Visible) SameAs(o Visible) bool {
	return categoryID(v.Category) == categoryID(o.Category) &&
		subCategoryID(v.SubCategory) == subCategoryID(o.SubCategory)
}

func categoryID(c *domain.Category) int {
	if c == nil {
		return -1
	}
	return c.ID
}

func subCategoryID(s *domain.SubCategory) int {
	if s == nil {
		return -1
	}
	return s.ID
}

// Resolver maps scroll offsets to the visible entity pair, throttling
// sub-threshold offset changes. One instance per scroll surface; it carries
// the last accepted offset as its only state.
type Resolver struct {
	threshold  int
	lastOffset int
	primed     bool
}

// NewResolver creates a resolver with the given throttle threshold.
// A threshold <= 0 disables throttling.
func NewResolver(threshold int) *Resolver {
	return &Resolver{threshold: threshold}
}

// Resolve returns the visible pair for the given offset, or ok=false when
// the offset change is below the throttle threshold and the caller should
// keep its previous result. The first call is always accepted.
func (r *Resolver) Resolve(rows []Row, layouts []RowLayout, scrollOffset, viewportHeight int) (Visible, bool) {
	if r.primed && abs(scrollOffset-r.lastOffset) < r.threshold {
		return Visible{}, false
	}
	r.lastOffset = scrollOffset
	r.primed = true
	return resolveAt(rows, layouts, scrollOffset, viewportHeight), true
}

// ResolveFinal resolves without throttling and re-anchors the throttle at
// the given offset. Used on scroll-end, where the committed pair must
// reflect the final resting position.
func (r *Resolver) ResolveFinal(rows []Row, layouts []RowLayout, scrollOffset, viewportHeight int) Visible {
	r.lastOffset = scrollOffset
	r.primed = true
	return resolveAt(rows, layouts, scrollOffset, viewportHeight)
}

// LastOffset returns the throttle anchor (the last accepted offset).
func (r *Resolver) LastOffset() int { return r.lastOffset }

func resolveAt(rows []Row, layouts []RowLayout, scrollOffset, viewportHeight int) Visible {
	i := RowAtOffset(layouts, scrollOffset, viewportHeight)
	if i < 0 || i >= len(rows) {
		return Visible{}
	}
	row := rows[i]
	if row.Kind == RowCategoryHeader {
		return Visible{Category: row.Category}
	}
	return Visible{Category: row.Category, SubCategory: row.SubCategory}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
