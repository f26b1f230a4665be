package domain

import (
	"fmt"
	"sort"
)

// Normalize converts a raw API market into the strict model:
//
//   - hidden categories/subcategories/products are dropped
//   - siblings are ordered by priority (stable, ties keep wire order)
//   - localized names collapse via the fallback chain; entities whose name
//     is empty in every locale get a generated placeholder label so they
//     never block rendering of their siblings
//   - the discounted price wins over the base price when present; negative
//     prices are clamped to zero
//
// The navigation core never handles raw-format ambiguity itself.
func Normalize(raw *APIMarket) *Market {
	m := &Market{
		ID:      raw.ID,
		Name:    raw.Name.Resolve(),
		Address: raw.Address.Resolve(),
	}
	if m.Name == "" {
		m.Name = fmt.Sprintf("Market %d", raw.ID)
	}
	for _, rc := range sortedByPriority(raw.MarketCategories, func(c APICategory) (int, bool) { return c.Priority, c.Hide }) {
		m.Categories = append(m.Categories, NormalizeCategory(rc))
	}
	return m
}

// NormalizeCategory converts one raw category, recursively normalizing its
// subcategories and products. Exported because the lazy category-detail
// endpoint returns a bare category payload.
func NormalizeCategory(rc APICategory) Category {
	c := Category{
		ID:        rc.ID,
		Name:      rc.Name.Resolve(),
		ImagePath: rc.ServerImageURL,
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("Category %d", rc.ID)
	}
	for _, rs := range sortedByPriority(rc.MarketSubcategories, func(s APISubCategory) (int, bool) { return s.Priority, s.Hide }) {
		c.SubCategories = append(c.SubCategories, normalizeSubCategory(rs, rc.ID))
	}
	return c
}

func normalizeSubCategory(rs APISubCategory, categoryID int) SubCategory {
	s := SubCategory{
		ID:         rs.ID,
		Name:       rs.Name.Resolve(),
		CategoryID: categoryID,
	}
	if s.Name == "" {
		s.Name = fmt.Sprintf("Subcategory %d", rs.ID)
	}
	for _, rp := range sortedByPriority(rs.Products, func(p APIProduct) (int, bool) { return p.Priority, p.Hide }) {
		s.Items = append(s.Items, normalizeItem(rp))
	}
	return s
}

func normalizeItem(rp APIProduct) Item {
	it := Item{
		ID:          rp.ID,
		Name:        rp.Name.Resolve(),
		Description: rp.Description.Resolve(),
		Price:       rp.BasePrice,
	}
	if it.Name == "" {
		it.Name = fmt.Sprintf("Product %d", rp.ID)
	}
	if rp.DiscountPrice > 0 {
		it.Price = rp.DiscountPrice
	}
	if it.Price < 0 {
		it.Price = 0
	}
	if len(rp.ProductImages) > 0 {
		img := rp.ProductImages[0]
		if img.ServerImageURL != "" {
			it.ImagePath = img.ServerImageURL
		} else {
			it.ImagePath = img.SmallImageURL
		}
	}
	return it
}

// sortedByPriority filters hidden entries and orders the remainder by
// priority, keeping wire order for equal priorities.
func sortedByPriority[T any](in []T, meta func(T) (priority int, hide bool)) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, hide := meta(v); !hide {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, _ := meta(out[i])
		pj, _ := meta(out[j])
		return pi < pj
	})
	return out
}
