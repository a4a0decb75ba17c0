package ledger

import (
	"time"

	"bennyevents/internal/domain/models"
)

// PageSize is the fixed display page size.
const PageSize = 10

// AllMonths selects every month of the filter year.
const AllMonths = -1

// PeriodFilter restricts the visible subset by createdAt. Month is zero-based
// (0 = January, 11 = December), matching the console's month selector;
// eventDate plays no part in filtering.
type PeriodFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Matches reports whether the record's createdAt falls in the period. Records
// without a timestamp never match a concrete period.
func (f PeriodFilter) Matches(b models.Booking) bool {
	if b.CreatedAt == nil {
		return false
	}
	t := b.CreatedAt.In(time.Local)
	if t.Year() != f.Year {
		return false
	}
	return f.Month == AllMonths || int(t.Month())-1 == f.Month
}

// FilterByPeriod returns the subset of records in the period, preserving
// snapshot order.
func FilterByPeriod(records []models.Booking, f PeriodFilter) []models.Booking {
	out := make([]models.Booking, 0, len(records))
	for _, b := range records {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// Paginate slices the filtered, ordered set into fixed-size pages. Pages are
// 1-indexed; a page past the end is an empty page, not an error.
func Paginate(records []models.Booking, page int) []models.Booking {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(records) {
		return []models.Booking{}
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// PageCount reports how many non-empty pages a set of n records yields.
func PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}
