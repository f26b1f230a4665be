package nav

import "testing"

func TestProjectCategoriesPinnedFirst(t *testing.T) {
	cats := testCategories()
	out := ProjectCategories(cats, 3)

	if len(out) != len(cats) {
		t.Fatalf("projected length = %d, want %d", len(out), len(cats))
	}
	if out[0].ID != 3 {
		t.Errorf("first id = %d, want 3", out[0].ID)
	}
	if out[1].ID != 1 {
		t.Errorf("second id = %d, want 1", out[1].ID)
	}
	// Input untouched.
	if cats[0].ID != 1 {
		t.Errorf("input mutated: first id = %d", cats[0].ID)
	}
}

func TestProjectCategoriesNoPin(t *testing.T) {
	cats := testCategories()
	out := ProjectCategories(cats, -1)
	for i := range cats {
		if out[i].ID != cats[i].ID {
			t.Errorf("order changed at %d: %d != %d", i, out[i].ID, cats[i].ID)
		}
	}
}

func TestProjectOrderIdempotent(t *testing.T) {
	cats := testCategories()
	once := ProjectCategories(cats, 3)
	twice := ProjectCategories(once, 3)
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("re-projection changed order at %d", i)
		}
	}
}

func TestProjectSubCategories(t *testing.T) {
	subs := testCategories()[0].SubCategories
	out := ProjectSubCategories(subs, 102)
	if out[0].ID != 102 || out[1].ID != 101 {
		t.Errorf("projected order = [%d %d], want [102 101]", out[0].ID, out[1].ID)
	}
}

func TestCenterTabOffset(t *testing.T) {
	// Raw targets follow index*tabWidth - stripWidth/2 + tabWidth/2; the
	// first tab clamps to zero, as does any strip wide enough to fit all
	// of its tabs.
	cases := []struct {
		index, tabWidth, stripWidth, want int
	}{
		{0, DefaultCategoryTabWidth, DefaultCategoryStripWidth, 0},
		{1, DefaultCategoryTabWidth, DefaultCategoryStripWidth, 30},
		{2, DefaultCategoryTabWidth, DefaultCategoryStripWidth, 150},
		{5, DefaultSubCategoryTabWidth, DefaultSubCategoryStripWidth, 425},
		{0, 10, 1000, 0},
	}
	for _, c := range cases {
		if got := CenterTabOffset(c.index, c.tabWidth, c.stripWidth); got != c.want {
			t.Errorf("CenterTabOffset(%d, %d, %d) = %d, want %d",
				c.index, c.tabWidth, c.stripWidth, got, c.want)
		}
	}
}
