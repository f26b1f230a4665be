package nav

import "haat/browse/internal/domain"

// Flatten converts the nested category tree into the flat ordered row
// sequence the scroll surface renders. When pinnedCategoryID matches a
// category it is moved to the front; all other categories keep their
// relative order. Pass a negative id to keep the original order.
//
// Per category: one CategoryHeader row, then per subcategory one
// SubCategoryHeader row followed by one ItemGrid row — the grid row only
// when the subcategory actually has items. Empty subcategories keep their
// header so the user still sees the section exists.
//
// Pure function; cheap enough to call on every render.
func Flatten(categories []domain.Category, pinnedCategoryID int) []Row {
	ordered := pinFirst(categories, pinnedCategoryID)

	rows := make([]Row, 0, estimateRowCount(ordered))
	for ci := range ordered {
		cat := &ordered[ci]
		rows = append(rows, Row{Kind: RowCategoryHeader, Category: cat})
		for si := range cat.SubCategories {
			sub := &cat.SubCategories[si]
			rows = append(rows, Row{Kind: RowSubCategoryHeader, Category: cat, SubCategory: sub})
			if len(sub.Items) > 0 {
				rows = append(rows, Row{Kind: RowItemGrid, Category: cat, SubCategory: sub, Items: sub.Items})
			}
		}
	}
	return rows
}

// pinFirst returns categories with the pinned one (if found) at index 0.
// The input slice is never mutated.
func pinFirst(categories []domain.Category, pinnedID int) []domain.Category {
	idx := -1
	for i := range categories {
		if categories[i].ID == pinnedID {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return categories
	}
	out := make([]domain.Category, 0, len(categories))
	out = append(out, categories[idx])
	out = append(out, categories[:idx]...)
	out = append(out, categories[idx+1:]...)
	return out
}

func estimateRowCount(categories []domain.Category) int {
	n := 0
	for i := range categories {
		n += 1 + 2*len(categories[i].SubCategories)
	}
	return n
}

// IndexOfCategory returns the index of a category's header row, or -1.
func IndexOfCategory(rows []Row, categoryID int) int {
	for i, r := range rows {
		if r.Kind == RowCategoryHeader && r.Category.ID == categoryID {
			return i
		}
	}
	return -1
}

// IndexOfSubCategory returns the index of a subcategory's header row, or -1.
func IndexOfSubCategory(rows []Row, subCategoryID int) int {
	for i, r := range rows {
		if r.Kind == RowSubCategoryHeader && r.SubCategory.ID == subCategoryID {
			return i
		}
	}
	return -1
}
