package nav

import "testing"

func TestResolverFirstCallAlwaysAccepted(t *testing.T) {
	m := DefaultMetrics()
	rows := Flatten(testCategories(), -1)
	layouts := EstimateLayout(rows, m)
	r := NewResolver(50)

	pair, ok := r.Resolve(rows, layouts, 0, 800)
	if !ok {
		t.Fatal("first resolution throttled")
	}
	if pair.Category == nil || pair.Category.ID != 1 {
		t.Errorf("visible category = %v, want id 1", pair.Category)
	}
	if pair.SubCategory != nil {
		t.Errorf("category header row yielded subcategory %v", pair.SubCategory)
	}
}

func TestResolverThrottlesSmallDeltas(t *testing.T) {
	m := DefaultMetrics()
	rows := Flatten(testCategories(), -1)
	layouts := EstimateLayout(rows, m)
	r := NewResolver(50)

	if _, ok := r.Resolve(rows, layouts, 0, 800); !ok {
		t.Fatal("priming resolution throttled")
	}
	if _, ok := r.Resolve(rows, layouts, 49, 800); ok {
		t.Error("delta 49 accepted, want throttled")
	}
	// Anchor stays at the last accepted offset, so jitter can't creep.
	if _, ok := r.Resolve(rows, layouts, 49, 800); ok {
		t.Error("repeated sub-threshold delta accepted")
	}
	if _, ok := r.Resolve(rows, layouts, 50, 800); !ok {
		t.Error("delta 50 throttled, want accepted")
	}
	if r.LastOffset() != 50 {
		t.Errorf("anchor = %d, want 50", r.LastOffset())
	}
}

func TestResolverBackwardDeltaCounts(t *testing.T) {
	m := DefaultMetrics()
	rows := Flatten(testCategories(), -1)
	layouts := EstimateLayout(rows, m)
	r := NewResolver(50)

	r.Resolve(rows, layouts, 500, 800)
	if _, ok := r.Resolve(rows, layouts, 440, 800); !ok {
		t.Error("backward delta 60 throttled, want accepted")
	}
}

func TestResolveFinalIgnoresThrottle(t *testing.T) {
	m := DefaultMetrics()
	rows := Flatten(testCategories(), -1)
	layouts := EstimateLayout(rows, m)
	r := NewResolver(50)

	r.Resolve(rows, layouts, 0, 800)
	pair := r.ResolveFinal(rows, layouts, 10, 800)
	if pair.Category == nil {
		t.Fatal("final resolution returned nothing")
	}
	if r.LastOffset() != 10 {
		t.Errorf("final resolution did not re-anchor: offset = %d", r.LastOffset())
	}
}

func TestResolveSubCategoryRow(t *testing.T) {
	m := DefaultMetrics()
	rows := Flatten(testCategories(), -1)
	layouts := EstimateLayout(rows, m)
	r := NewResolver(0)

	// Scroll past the first category header: Burgers' header is on top.
	pair, ok := r.Resolve(rows, layouts, m.CategoryHeaderHeight, 800)
	if !ok {
		t.Fatal("resolution throttled with threshold 0")
	}
	if pair.Category == nil || pair.Category.ID != 1 {
		t.Errorf("category = %v, want id 1", pair.Category)
	}
	if pair.SubCategory == nil || pair.SubCategory.ID != 101 {
		t.Errorf("subcategory = %v, want id 101", pair.SubCategory)
	}
}

func TestResolveEmptyList(t *testing.T) {
	r := NewResolver(0)
	pair, ok := r.Resolve(nil, nil, 0, 800)
	if !ok {
		t.Fatal("resolution throttled")
	}
	if pair.Category != nil || pair.SubCategory != nil {
		t.Errorf("empty list yielded %+v", pair)
	}
}

func TestVisibleSameAsComparesByID(t *testing.T) {
	a := testCategories()
	b := testCategories()

	p1 := Visible{Category: &a[0], SubCategory: &a[0].SubCategories[0]}
	p2 := Visible{Category: &b[0], SubCategory: &b[0].SubCategories[0]}
	if !p1.SameAs(p2) {
		t.Error("identical ids across rebuilds not treated as same")
	}

	p3 := Visible{Category: &a[0], SubCategory: &a[0].SubCategories[1]}
	if p1.SameAs(p3) {
		t.Error("different subcategories treated as same")
	}
	if !(Visible{}).SameAs(Visible{}) {
		t.Error("two empty pairs differ")
	}
}
