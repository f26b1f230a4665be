// Package domain holds the strictly-typed catalog model the rest of the
// application works against. The raw API shape (localized name maps, hide
// flags, priorities) never leaves this package — see normalize.go.
package domain

// Item is a single purchasable product. Immutable once loaded; the browser
// is read-only.
type Item struct {
	ID          int
	Name        string
	Description string  // may be empty
	Price       float64 // never negative after normalization
	ImagePath   string  // may be empty; relative or absolute
}

// SubCategory groups items under a category. Item order is display order.
type SubCategory struct {
	ID         int
	Name       string
	CategoryID int
	Items      []Item
}

// HasItems reports whether the subcategory has at least one item.
func (s *SubCategory) HasItems() bool { return len(s.Items) > 0 }

// Category is the top level of the browsing hierarchy. Subcategory order is
// display order and defines the default scroll-target order.
type Category struct {
	ID            int
	Name          string
	ImagePath     string
	SubCategories []SubCategory
}

// FirstSellableSubCategory returns the first subcategory with at least one
// item, falling back to the first subcategory when all are empty. Returns
// nil for a category with no subcategories at all.
func (c *Category) FirstSellableSubCategory() *SubCategory {
	for i := range c.SubCategories {
		if c.SubCategories[i].HasItems() {
			return &c.SubCategories[i]
		}
	}
	if len(c.SubCategories) > 0 {
		return &c.SubCategories[0]
	}
	return nil
}

// SubCategoryByID looks up a subcategory by id.
func (c *Category) SubCategoryByID(id int) *SubCategory {
	for i := range c.SubCategories {
		if c.SubCategories[i].ID == id {
			return &c.SubCategories[i]
		}
	}
	return nil
}

// Market is a whole store catalog: an ordered list of categories.
type Market struct {
	ID         int
	Name       string
	Address    string
	Categories []Category
}

// CategoryByID looks up a category by id. Returns nil when absent.
func (m *Market) CategoryByID(id int) *Category {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			return &m.Categories[i]
		}
	}
	return nil
}

// ItemCount returns the total number of items across the whole hierarchy.
func (m *Market) ItemCount() int {
	n := 0
	for _, c := range m.Categories {
		for _, s := range c.SubCategories {
			n += len(s.Items)
		}
	}
	return n
}
