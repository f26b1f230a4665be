package nav

import (
	"time"

	"github.com/sirupsen/logrus"

	"haat/browse/internal/domain"
)

// Phase is the navigation state machine's current state.
type Phase int

const (
	// PhaseIdle: nothing in flight; organic scroll and tab taps accepted.
	PhaseIdle Phase = iota
	// PhaseInitialScrollPending: mounted, waiting for the initial
	// scroll-to-target to fire (layout may not be settled yet).
	PhaseInitialScrollPending
	// PhaseProgrammaticScroll: an engine-issued scroll is in flight;
	// visibility resolutions must not overwrite the selection.
	PhaseProgrammaticScroll
	// PhaseUserScrolling: the user is dragging/flinging the list.
	PhaseUserScrolling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitialScrollPending:
		return "initial-scroll-pending"
	case PhaseProgrammaticScroll:
		return "programmatic-scroll"
	case PhaseUserScrolling:
		return "user-scrolling"
	default:
		return "unknown"
	}
}

// SettleDelay is how long after issuing a scroll command the engine waits
// before declaring the scroll finished. The platform gives no reliable
// completion callback, so this is a tunable settle window, not a guarantee:
// callers should treat post-scroll state as eventually consistent.
const SettleDelay = 300 * time.Millisecond

// InitialScrollSchedule is the bounded retry schedule for the mount-time
// scroll-to-target, covering layout-timing races. Each attempt is
// idempotent and the sequence cancels once one attempt succeeds.
var InitialScrollSchedule = []time.Duration{0, 250 * time.Millisecond, 500 * time.Millisecond}

// ScrollCommand tells the scroll surface where to go, both as a row index
// (for index-based scroll APIs) and as an absolute offset in layout units.
type ScrollCommand struct {
	RowIndex int
	Offset   int
}

// Controller orchestrates the bidirectional sync between the tab strips and
// the scrollable flattened list. It owns the session's NavigationState and
// is driven entirely by UI events — tab taps, scroll offsets, timer ticks —
// from a single goroutine. All failures are logged and swallowed; nothing
// here ever panics the screen.
type Controller struct {
	log      logrus.FieldLogger
	metrics  Metrics
	resolver *Resolver

	categories []domain.Category

	phase Phase

	// pinID anchors the flattened list order. It changes on mount and on
	// category tab taps only — scroll-end promotion deliberately leaves it
	// alone so the content never jumps under the user's thumb.
	pinID int

	selectedCategory    *domain.Category
	selectedSubCategory *domain.SubCategory
	visibleCategory     *domain.Category
	visibleSubCategory  *domain.SubCategory

	rows    []Row
	layouts []RowLayout

	initialDone     bool
	initialAttempts int
}

// NewController creates a controller over the given hierarchy. A nil logger
// falls back to the process-wide logrus logger.
func NewController(categories []domain.Category, metrics Metrics, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	threshold := metrics.ThrottleThreshold
	if threshold <= 0 {
		threshold = DefaultThrottleThreshold
	}
	c := &Controller{
		log:        log.WithField("component", "nav"),
		metrics:    metrics,
		resolver:   NewResolver(threshold),
		categories: categories,
		pinID:      -1,
	}
	c.rebuild()
	return c
}

// Mount resolves the initial selection from an optional deep-link category
// id (pass a negative value for none) and arms the initial scroll. An
// unknown id falls back to the first category; this is logged, never an
// error. The first subcategory with items is auto-selected (else the plain
// first one).
func (c *Controller) Mount(targetCategoryID int) {
	if len(c.categories) == 0 {
		c.phase = PhaseIdle
		return
	}
	cat := c.findCategory(targetCategoryID)
	if cat == nil {
		if targetCategoryID >= 0 {
			c.log.WithField("category_id", targetCategoryID).
				Warn("deep-link category not found, defaulting to first")
		}
		cat = &c.categories[0]
	}
	c.selectCategory(cat)
	c.phase = PhaseInitialScrollPending
	c.initialDone = false
	c.initialAttempts = 0
}

// TryInitialScroll is called once per entry of InitialScrollSchedule. It
// returns the scroll command for the mount target, or ok=false when the
// attempt should be skipped (already fired, cancelled, or target still
// missing with retries left). After the schedule is exhausted the attempt
// is abandoned silently and the list stays where it is.
func (c *Controller) TryInitialScroll() (ScrollCommand, bool) {
	if c.initialDone || c.phase != PhaseInitialScrollPending || c.selectedCategory == nil {
		return ScrollCommand{}, false
	}
	c.initialAttempts++
	idx := IndexOfCategory(c.rows, c.selectedCategory.ID)
	if idx < 0 {
		if c.initialAttempts >= len(InitialScrollSchedule) {
			c.log.WithField("category_id", c.selectedCategory.ID).
				Warn("initial scroll target never appeared, giving up")
			c.phase = PhaseIdle
		}
		return ScrollCommand{}, false
	}
	c.initialDone = true
	c.phase = PhaseProgrammaticScroll
	return ScrollCommand{RowIndex: idx, Offset: c.layouts[idx].Offset}, true
}

// TapCategory handles a category tab tap: optimistic selection, re-pin, and
// a scroll command to the category's header. An unknown id leaves all state
// unchanged and returns ok=false.
func (c *Controller) TapCategory(categoryID int) (ScrollCommand, bool) {
	cat := c.findCategory(categoryID)
	if cat == nil {
		c.log.WithField("category_id", categoryID).Warn("tapped category not in hierarchy")
		return ScrollCommand{}, false
	}
	c.selectCategory(cat)
	idx := IndexOfCategory(c.rows, categoryID)
	if idx < 0 {
		c.log.WithField("category_id", categoryID).Error("category row missing after re-pin")
		return ScrollCommand{}, false
	}
	c.phase = PhaseProgrammaticScroll
	return ScrollCommand{RowIndex: idx, Offset: c.layouts[idx].Offset}, true
}

// TapSubCategory handles a subcategory tab tap, scoped to the currently
// selected category. The list order does not change (pin is untouched);
// only the selection and the scroll target do.
func (c *Controller) TapSubCategory(subCategoryID int) (ScrollCommand, bool) {
	if c.selectedCategory == nil {
		return ScrollCommand{}, false
	}
	sub := c.selectedCategory.SubCategoryByID(subCategoryID)
	if sub == nil {
		c.log.WithFields(logrus.Fields{
			"subcategory_id": subCategoryID,
			"category_id":    c.selectedCategory.ID,
		}).Warn("tapped subcategory not in selected category")
		return ScrollCommand{}, false
	}
	c.selectedSubCategory = sub
	c.visibleSubCategory = sub
	idx := IndexOfSubCategory(c.rows, subCategoryID)
	if idx < 0 {
		c.log.WithField("subcategory_id", subCategoryID).Error("subcategory row missing")
		return ScrollCommand{}, false
	}
	c.phase = PhaseProgrammaticScroll
	return ScrollCommand{RowIndex: idx, Offset: c.layouts[idx].Offset}, true
}

// HandleScroll feeds a scroll offset through the visibility resolver.
// Throttled offsets are dropped. While a programmatic scroll is in flight
// only the visible pair is updated — the selection is never overwritten by
// transient intermediate positions.
func (c *Controller) HandleScroll(scrollOffset, viewportHeight int) {
	if c.phase == PhaseIdle {
		c.phase = PhaseUserScrolling
	}
	pair, ok := c.resolver.Resolve(c.rows, c.layouts, scrollOffset, viewportHeight)
	if !ok {
		return
	}
	c.applyVisible(pair)
}

// ScrollEnded commits the pair at the final resting offset and promotes it
// to the selection so the tab strips re-pin to what the user is actually
// looking at. Ignored while a programmatic scroll is settling — the tap
// already chose the selection.
func (c *Controller) ScrollEnded(scrollOffset, viewportHeight int) {
	if c.phase == PhaseProgrammaticScroll {
		return
	}
	pair := c.resolver.ResolveFinal(c.rows, c.layouts, scrollOffset, viewportHeight)
	c.applyVisible(pair)
	if pair.Category != nil {
		c.selectedCategory = pair.Category
		c.selectedSubCategory = pair.SubCategory
	}
	c.phase = PhaseIdle
}

// ScrollSettled ends the settle window of a programmatic scroll. Safe to
// call from a stale timer: it only acts in the programmatic phase.
func (c *Controller) ScrollSettled() {
	if c.phase == PhaseProgrammaticScroll {
		c.phase = PhaseIdle
	}
}

// SetCategories swaps in a new hierarchy (lazy deepen, offline reload) and
// re-resolves the selection by id, defaulting to the first category when
// the previously selected one disappeared.
func (c *Controller) SetCategories(categories []domain.Category) {
	c.categories = categories
	selID, subID := -1, -1
	if c.selectedCategory != nil {
		selID = c.selectedCategory.ID
	}
	if c.selectedSubCategory != nil {
		subID = c.selectedSubCategory.ID
	}
	cat := c.findCategory(selID)
	if cat == nil && len(c.categories) > 0 {
		cat = &c.categories[0]
		subID = -1
	}
	if cat == nil {
		c.selectedCategory, c.selectedSubCategory = nil, nil
		c.visibleCategory, c.visibleSubCategory = nil, nil
		c.rebuild()
		return
	}
	c.selectedCategory = cat
	c.visibleCategory = cat
	if sub := cat.SubCategoryByID(subID); sub != nil {
		c.selectedSubCategory = sub
		c.visibleSubCategory = sub
	} else {
		sub := cat.FirstSellableSubCategory()
		c.selectedSubCategory = sub
		c.visibleSubCategory = sub
	}
	if c.pinID >= 0 && c.findCategory(c.pinID) == nil {
		c.pinID = cat.ID
	}
	c.rebuild()
}

// ── accessors ───────────────────────────────────────────────────────────────

// Phase returns the current state-machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// IsProgrammaticScroll reports whether an engine-issued scroll is in flight.
func (c *Controller) IsProgrammaticScroll() bool { return c.phase == PhaseProgrammaticScroll }

// Rows returns the current flattened rows (pin applied).
func (c *Controller) Rows() []Row { return c.rows }

// Layouts returns the estimated geometry aligned with Rows.
func (c *Controller) Layouts() []RowLayout { return c.layouts }

// SelectedCategory returns the explicitly chosen category, or nil.
func (c *Controller) SelectedCategory() *domain.Category { return c.selectedCategory }

// SelectedSubCategory returns the explicitly chosen subcategory, or nil.
func (c *Controller) SelectedSubCategory() *domain.SubCategory { return c.selectedSubCategory }

// VisibleCategory returns the category intersecting the viewport, or nil.
func (c *Controller) VisibleCategory() *domain.Category { return c.visibleCategory }

// VisibleSubCategory returns the subcategory intersecting the viewport, or nil.
func (c *Controller) VisibleSubCategory() *domain.SubCategory { return c.visibleSubCategory }

// LastScrollOffset returns the throttle anchor offset.
func (c *Controller) LastScrollOffset() int { return c.resolver.LastOffset() }

// CategoryTabs returns category tabs in projected order: selected first,
// the rest in hierarchy order.
func (c *Controller) CategoryTabs() []domain.Category {
	return ProjectCategories(c.categories, categoryID(c.selectedCategory))
}

// SubCategoryTabs returns the subcategory tabs for the visible category
// (falling back to the selected one), selected subcategory pinned first.
func (c *Controller) SubCategoryTabs() []domain.SubCategory {
	cat := c.visibleCategory
	if cat == nil {
		cat = c.selectedCategory
	}
	if cat == nil {
		return nil
	}
	return ProjectSubCategories(cat.SubCategories, subCategoryID(c.selectedSubCategory))
}

// ── internals ───────────────────────────────────────────────────────────────

func (c *Controller) findCategory(id int) *domain.Category {
	if id < 0 {
		return nil
	}
	for i := range c.categories {
		if c.categories[i].ID == id {
			return &c.categories[i]
		}
	}
	return nil
}

// selectCategory applies the optimistic selection for a category target:
// selection and visibility move immediately, the first sellable subcategory
// comes along, and the list re-pins.
func (c *Controller) selectCategory(cat *domain.Category) {
	c.selectedCategory = cat
	c.visibleCategory = cat
	sub := cat.FirstSellableSubCategory()
	c.selectedSubCategory = sub
	c.visibleSubCategory = sub
	c.pinID = cat.ID
	c.rebuild()
}

func (c *Controller) applyVisible(pair Visible) {
	if pair.Category != nil && categoryID(pair.Category) != categoryID(c.visibleCategory) {
		c.visibleCategory = pair.Category
	}
	if subCategoryID(pair.SubCategory) != subCategoryID(c.visibleSubCategory) {
		c.visibleSubCategory = pair.SubCategory
	}
}

// rebuild recomputes rows and layouts after any hierarchy or pin change.
// Selected/visible pointers are re-anchored into the new row set so later
// id comparisons and renders see one consistent generation.
func (c *Controller) rebuild() {
	c.rows = Flatten(c.categories, c.pinID)
	c.layouts = EstimateLayout(c.rows, c.metrics)
	for i := range c.rows {
		r := c.rows[i]
		if r.Kind != RowCategoryHeader {
			continue
		}
		if categoryID(r.Category) == categoryID(c.selectedCategory) {
			c.selectedCategory = r.Category
		}
		if categoryID(r.Category) == categoryID(c.visibleCategory) {
			c.visibleCategory = r.Category
		}
	}
}
