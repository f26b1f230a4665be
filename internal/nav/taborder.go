package nav

import "haat/browse/internal/domain"

// Tab-strip geometry defaults, matching the reference mobile layout. The
// TUI substitutes its own cell-based widths; the math is the same.
const (
	DefaultCategoryTabWidth      = 120
	DefaultSubCategoryTabWidth   = 100
	DefaultCategoryStripWidth    = 300
	DefaultSubCategoryStripWidth = 250
)

// ProjectOrder returns entities reordered so the pinned one (identified by
// isPinned) comes first; everything else keeps its original order. No
// duplicates, nothing dropped, and the input is never mutated. Idempotent:
// projecting an already-projected sequence with the same pin is a no-op.
func ProjectOrder[T any](entities []T, isPinned func(T) bool) []T {
	idx := -1
	for i := range entities {
		if isPinned(entities[i]) {
			idx = i
			break
		}
	}
	if idx <= 0 {
		out := make([]T, len(entities))
		copy(out, entities)
		return out
	}
	out := make([]T, 0, len(entities))
	out = append(out, entities[idx])
	out = append(out, entities[:idx]...)
	out = append(out, entities[idx+1:]...)
	return out
}

// ProjectCategories orders category tabs with the pinned category first.
// A negative pinnedID keeps the original order.
func ProjectCategories(categories []domain.Category, pinnedID int) []domain.Category {
	return ProjectOrder(categories, func(c domain.Category) bool { return c.ID == pinnedID })
}

// ProjectSubCategories orders subcategory tabs with the pinned one first.
func ProjectSubCategories(subs []domain.SubCategory, pinnedID int) []domain.SubCategory {
	return ProjectOrder(subs, func(s domain.SubCategory) bool { return s.ID == pinnedID })
}

// CenterTabOffset computes the horizontal scroll position that centres the
// tab at index inside a strip of the given width, clamped to >= 0.
func CenterTabOffset(index, tabWidth, stripWidth int) int {
	target := index*tabWidth - stripWidth/2 + tabWidth/2
	if target < 0 {
		return 0
	}
	return target
}
