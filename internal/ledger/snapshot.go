package ledger

import (
	"sort"

	"bennyevents/internal/domain/models"
)

// Snapshot is a complete ordered view of the ledger (or an owner-scoped
// subset) at a point in time. Consumers replace their copy wholesale on every
// emission; a snapshot is never a diff.
type Snapshot []models.Booking

// Order sorts records createdAt descending. Records without a timestamp have
// no relative ordering guarantee and surface first, as if most recent.
func Order(records []models.Booking) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].CreatedAt, records[j].CreatedAt
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		}
		return a.After(*b)
	})
}
