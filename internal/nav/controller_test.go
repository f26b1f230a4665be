package nav

import (
	"testing"

	"haat/browse/internal/domain"
)

func newTestController() *Controller {
	return NewController(testCategories(), DefaultMetrics(), nil)
}

func TestMountSelectsTargetAndFirstSellableSub(t *testing.T) {
	c := newTestController()
	c.Mount(3)

	if c.Phase() != PhaseInitialScrollPending {
		t.Fatalf("phase = %v, want initial-scroll-pending", c.Phase())
	}
	if got := c.SelectedCategory(); got == nil || got.ID != 3 {
		t.Fatalf("selected category = %v, want id 3", got)
	}
	// Ice Cream (301) is empty, so Cakes (302) is auto-selected.
	if got := c.SelectedSubCategory(); got == nil || got.ID != 302 {
		t.Errorf("selected subcategory = %v, want id 302", got)
	}
	// Mount re-pins: the target leads the flattened list.
	if c.Rows()[0].Category.ID != 3 {
		t.Errorf("list not pinned on mount target, first id = %d", c.Rows()[0].Category.ID)
	}
}

func TestMountUnknownDeepLinkFallsBackToFirst(t *testing.T) {
	c := newTestController()
	c.Mount(999)

	if got := c.SelectedCategory(); got == nil || got.ID != 1 {
		t.Errorf("selected category = %v, want first (id 1)", got)
	}
	if c.Phase() != PhaseInitialScrollPending {
		t.Errorf("phase = %v, want initial-scroll-pending", c.Phase())
	}
}

func TestMountEmptyHierarchy(t *testing.T) {
	c := NewController(nil, DefaultMetrics(), nil)
	c.Mount(1)
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
	if _, ok := c.TryInitialScroll(); ok {
		t.Error("initial scroll fired with no rows")
	}
}

func TestInitialScrollFiresOnceThenIdempotent(t *testing.T) {
	c := newTestController()
	c.Mount(3)

	cmd, ok := c.TryInitialScroll()
	if !ok {
		t.Fatal("initial scroll did not fire")
	}
	if cmd.RowIndex != IndexOfCategory(c.Rows(), 3) {
		t.Errorf("scroll row = %d, want index of category 3", cmd.RowIndex)
	}
	if cmd.Offset != c.Layouts()[cmd.RowIndex].Offset {
		t.Errorf("scroll offset = %d, want %d", cmd.Offset, c.Layouts()[cmd.RowIndex].Offset)
	}
	if c.Phase() != PhaseProgrammaticScroll {
		t.Errorf("phase = %v, want programmatic-scroll", c.Phase())
	}

	// Later scheduled attempts are no-ops.
	if _, ok := c.TryInitialScroll(); ok {
		t.Error("second attempt fired after success")
	}
}

func TestInitialScrollGivesUpAfterSchedule(t *testing.T) {
	// Force a state where the target row is genuinely missing: mount on a
	// category, then swap in a hierarchy without it while still pending.
	c := newTestController()
	c.Mount(3)
	c.categories = testCategories()[:1] // Fast Food only
	c.rebuild()

	for i := 0; i < len(InitialScrollSchedule); i++ {
		if _, ok := c.TryInitialScroll(); ok {
			t.Fatalf("attempt %d fired for a missing target", i)
		}
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase after exhausted schedule = %v, want idle", c.Phase())
	}
}

func TestTapCategoryOptimisticSelection(t *testing.T) {
	c := newTestController()
	c.Mount(1)
	c.TryInitialScroll()
	c.ScrollSettled()

	cmd, ok := c.TapCategory(3)
	if !ok {
		t.Fatal("tap rejected")
	}
	if got := c.SelectedCategory(); got == nil || got.ID != 3 {
		t.Errorf("selected = %v, want id 3", got)
	}
	if got := c.SelectedSubCategory(); got == nil || got.ID != 302 {
		t.Errorf("selected sub = %v, want 302 (first sellable)", got)
	}
	if c.Phase() != PhaseProgrammaticScroll {
		t.Errorf("phase = %v, want programmatic-scroll", c.Phase())
	}
	// Re-pinned: tapped category now leads the list, scroll goes to its header.
	if c.Rows()[0].Category.ID != 3 {
		t.Error("list not re-pinned on tap")
	}
	if cmd.RowIndex != 0 || cmd.Offset != 0 {
		t.Errorf("scroll command = %+v, want row 0 offset 0 after re-pin", cmd)
	}
}

func TestTapUnknownCategoryLeavesStateUnchanged(t *testing.T) {
	c := newTestController()
	c.Mount(1)
	before := c.SelectedCategory().ID

	if _, ok := c.TapCategory(999); ok {
		t.Fatal("unknown tap accepted")
	}
	if c.SelectedCategory().ID != before {
		t.Error("selection changed on rejected tap")
	}
}

func TestTapSubCategoryScopedToSelected(t *testing.T) {
	c := newTestController()
	c.Mount(1)
	c.TryInitialScroll()
	c.ScrollSettled()

	cmd, ok := c.TapSubCategory(102)
	if !ok {
		t.Fatal("tap rejected")
	}
	if got := c.SelectedSubCategory(); got == nil || got.ID != 102 {
		t.Errorf("selected sub = %v, want 102", got)
	}
	// Subcategory taps never re-pin: Fast Food still leads.
	if c.Rows()[0].Category.ID != 1 {
		t.Error("subcategory tap re-pinned the list")
	}
	if wantIdx := IndexOfSubCategory(c.Rows(), 102); cmd.RowIndex != wantIdx {
		t.Errorf("scroll row = %d, want %d", cmd.RowIndex, wantIdx)
	}

	// A subcategory of a different category is rejected.
	if _, ok := c.TapSubCategory(302); ok {
		t.Error("out-of-scope subcategory tap accepted")
	}
}

func TestProgrammaticScrollSuppressesFeedback(t *testing.T) {
	c := newTestController()
	c.Mount(1)
	c.TryInitialScroll()
	c.ScrollSettled()
	c.TapCategory(3)

	// Transient offsets during the programmatic scroll sweep over Fast
	// Food's rows; the selection must not follow.
	offsets := []int{0, 120, 400, 700}
	for _, off := range offsets {
		c.HandleScroll(off, 800)
	}
	if got := c.SelectedCategory(); got == nil || got.ID != 3 {
		t.Errorf("selection drifted during programmatic scroll: %v", got)
	}
	// Scroll-end during the settle window is ignored too.
	c.ScrollEnded(700, 800)
	if got := c.SelectedCategory(); got == nil || got.ID != 3 {
		t.Errorf("scroll-end overwrote tap selection: %v", got)
	}
	if !c.IsProgrammaticScroll() {
		t.Errorf("phase = %v, want still programmatic", c.Phase())
	}

	c.ScrollSettled()
	if c.Phase() != PhaseIdle {
		t.Errorf("phase after settle = %v, want idle", c.Phase())
	}
	if c.IsProgrammaticScroll() {
		t.Error("still reported programmatic after settle")
	}
}

func TestUserScrollUpdatesVisibleNotSelected(t *testing.T) {
	c := newTestController()
	c.Mount(1)
	c.TryInitialScroll()
	c.ScrollSettled()

	// Scroll into Desserts territory.
	dessertsIdx := IndexOfCategory(c.Rows(), 3)
	offset := c.Layouts()[dessertsIdx].Offset

	c.HandleScroll(offset, 800)
	if c.Phase() != PhaseUserScrolling {
		t.Errorf("phase = %v, want user-scrolling", c.Phase())
	}
	if got := c.VisibleCategory(); got == nil || got.ID != 3 {
		t.Errorf("visible category = %v, want id 3", got)
	}
	if got := c.SelectedCategory(); got == nil || got.ID != 1 {
		t.Errorf("selection moved mid-scroll: %v, want id 1", got)
	}
}

func TestScrollEndPromotesVisibleToSelected(t *testing.T) {
	c := newTestController()
	c.Mount(1)
	c.TryInitialScroll()
	c.ScrollSettled()

	cakesIdx := IndexOfSubCategory(c.Rows(), 302)
	offset := c.Layouts()[cakesIdx].Offset

	c.HandleScroll(offset, 800)
	c.ScrollEnded(offset, 800)

	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
	if got := c.SelectedCategory(); got == nil || got.ID != 3 {
		t.Errorf("selected category = %v, want id 3", got)
	}
	if got := c.SelectedSubCategory(); got == nil || got.ID != 302 {
		t.Errorf("selected subcategory = %v, want id 302", got)
	}
	// Promotion re-orders tabs but never the list itself.
	if c.Rows()[0].Category.ID != 1 {
		t.Error("scroll-end promotion re-pinned the list")
	}
	if tabs := c.CategoryTabs(); tabs[0].ID != 3 {
		t.Errorf("first category tab = %d, want 3", tabs[0].ID)
	}
}

func TestCategoryTabsProjectSelectedFirst(t *testing.T) {
	c := newTestController()
	c.Mount(3)

	tabs := c.CategoryTabs()
	if tabs[0].ID != 3 || tabs[1].ID != 1 {
		t.Errorf("tab order = [%d %d], want [3 1]", tabs[0].ID, tabs[1].ID)
	}

	subTabs := c.SubCategoryTabs()
	if len(subTabs) != 2 {
		t.Fatalf("subcategory tabs = %d, want 2", len(subTabs))
	}
	if subTabs[0].ID != 302 {
		t.Errorf("first sub tab = %d, want selected 302", subTabs[0].ID)
	}
}

func TestSetCategoriesKeepsSelectionByID(t *testing.T) {
	c := newTestController()
	c.Mount(3)
	c.TryInitialScroll()
	c.ScrollSettled()

	// Deepen Ice Cream with an item; selection must survive by id.
	updated := testCategories()
	updated[1].SubCategories[0].Items = []domain.Item{{ID: 3001, Name: "Vanilla Ice Cream", Price: 4.99}}
	c.SetCategories(updated)

	if got := c.SelectedCategory(); got == nil || got.ID != 3 {
		t.Errorf("selection lost on reload: %v", got)
	}
	if got := c.SelectedSubCategory(); got == nil || got.ID != 302 {
		t.Errorf("sub selection lost on reload: %v", got)
	}
	// Ice Cream now has a grid row.
	idx := IndexOfSubCategory(c.Rows(), 301)
	if idx < 0 || c.Rows()[idx+1].Kind != RowItemGrid {
		t.Error("deepened subcategory has no grid row")
	}
}

func TestSetCategoriesDroppedSelectionFallsBack(t *testing.T) {
	c := newTestController()
	c.Mount(3)

	c.SetCategories(testCategories()[:1]) // Desserts gone
	if got := c.SelectedCategory(); got == nil || got.ID != 1 {
		t.Errorf("selection = %v, want fallback to first", got)
	}
	if got := c.SelectedSubCategory(); got == nil || got.ID != 101 {
		t.Errorf("sub selection = %v, want first sellable 101", got)
	}
}
