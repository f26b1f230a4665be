package nav

// Metrics holds the per-variant row heights used for scroll-offset math.
// These are configuration, not physics: they must agree with whatever the
// renderer actually produces, or scroll targets drift. The TUI builds its
// own Metrics from the real line counts of its row renderers; the defaults
// mirror the mobile app this engine was modelled on.
type Metrics struct {
	CategoryHeaderHeight    int
	SubCategoryHeaderHeight int
	ItemRowHeight           int // height of one grid row of items
	GridColumns             int

	// ThrottleThreshold is the minimum offset delta (same units as the
	// heights above) between visibility resolutions. Zero means
	// DefaultThrottleThreshold; it must shrink along with the heights
	// when a renderer uses finer units, or visibility goes numb.
	ThrottleThreshold int
}

// DefaultMetrics returns the reference metrics (abstract layout units).
func DefaultMetrics() Metrics {
	return Metrics{
		CategoryHeaderHeight:    120,
		SubCategoryHeaderHeight: 80,
		ItemRowHeight:           200,
		GridColumns:             2,
		ThrottleThreshold:       DefaultThrottleThreshold,
	}
}

// RowHeight returns the estimated height for a single row.
func (m Metrics) RowHeight(r Row) int {
	switch r.Kind {
	case RowCategoryHeader:
		return m.CategoryHeaderHeight
	case RowSubCategoryHeader:
		return m.SubCategoryHeaderHeight
	default:
		cols := m.GridColumns
		if cols < 1 {
			cols = 1
		}
		gridRows := (len(r.Items) + cols - 1) / cols
		return gridRows * m.ItemRowHeight
	}
}

// RowLayout is the estimated geometry of one flattened row.
type RowLayout struct {
	Height int
	Offset int // cumulative height of all preceding rows
}

// End returns the exclusive end offset of the row.
func (l RowLayout) End() int { return l.Offset + l.Height }

// EstimateLayout computes height and cumulative offset for every row,
// aligned by index with rows. Offsets are non-decreasing and
// offset[i]+height[i] == offset[i+1].
func EstimateLayout(rows []Row, m Metrics) []RowLayout {
	layouts := make([]RowLayout, len(rows))
	offset := 0
	for i, r := range rows {
		h := m.RowHeight(r)
		layouts[i] = RowLayout{Height: h, Offset: offset}
		offset += h
	}
	return layouts
}

// TotalHeight returns the summed height of all rows.
func TotalHeight(layouts []RowLayout) int {
	if len(layouts) == 0 {
		return 0
	}
	return layouts[len(layouts)-1].End()
}

// RowAtOffset returns the index of the first row whose interval
// [offset, offset+height) intersects [scrollOffset, scrollOffset+viewportHeight),
// or -1 when nothing intersects. First-in-order wins, so a header beats the
// content below it when both are partially visible.
func RowAtOffset(layouts []RowLayout, scrollOffset, viewportHeight int) int {
	viewEnd := scrollOffset + viewportHeight
	for i, l := range layouts {
		if l.Offset < viewEnd && l.End() > scrollOffset {
			return i
		}
	}
	return -1
}
