package ledger

import (
	"bennyevents/internal/domain"
	"bennyevents/internal/domain/models"
)

// View couples one session's snapshot, period filter and page into the
// derived state the rendering layer reads: the filtered record page and the
// stats for the active filter. Derivations recompute from the snapshot alone
// on every Apply or filter change; nothing is maintained incrementally.
//
// A View belongs to a single session goroutine and is not safe for concurrent
// use.
type View struct {
	snapshot Snapshot
	filter   PeriodFilter
	page     int

	filtered []models.Booking
	stats    domain.Stats
}

func NewView(filter PeriodFilter) *View {
	v := &View{filter: filter, page: 1}
	v.recompute()
	return v
}

// Apply replaces the snapshot wholesale and recomputes derived state. The
// current filter and page position are kept.
func (v *View) Apply(snap Snapshot) {
	v.snapshot = snap
	v.recompute()
}

// SetFilter changes the period and resets pagination to page 1; the two axes
// are coupled, not independent scroll positions.
func (v *View) SetFilter(f PeriodFilter) {
	v.filter = f
	v.page = 1
	v.recompute()
}

// SetPage moves to a 1-indexed page. Values below 1 clamp to 1; pages past
// the end simply render empty.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *View) Filter() PeriodFilter { return v.filter }

func (v *View) PageNumber() int { return v.page }

// Page returns the current page of the filtered, ordered set.
func (v *View) Page() []models.Booking {
	return Paginate(v.filtered, v.page)
}

// Stats returns the aggregates for the active filter.
func (v *View) Stats() domain.Stats {
	return v.stats
}

// FilteredCount is the size of the filtered set, for pagination totals.
func (v *View) FilteredCount() int {
	return len(v.filtered)
}

func (v *View) recompute() {
	v.filtered = FilterByPeriod(v.snapshot, v.filter)
	v.stats = domain.ComputeStats(v.filtered)
}
