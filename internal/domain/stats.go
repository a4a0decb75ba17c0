package domain

import "bennyevents/internal/domain/models"

// CategoryCount is one slice of the category distribution. Order in
// Stats.CategoryCounts is first-seen order within the snapshot.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Stats is everything the dashboard derives from one filtered snapshot.
type Stats struct {
	TotalCount     int             `json:"totalCount"`
	ConfirmedCount int             `json:"confirmedCount"`
	PendingCount   int             `json:"pendingCount"`
	ActiveCount    int             `json:"activeCount"`
	TotalRevenue   int64           `json:"totalRevenue"`
	TotalBalance   int64           `json:"totalBalanceDue"`
	CategoryCounts []CategoryCount `json:"categoryCounts"`
	TopCategory    string          `json:"topCategory"`
}

// ComputeStats derives dashboard statistics from a filtered snapshot. It is a
// pure function of its input: a late joiner holding only the current snapshot
// computes exactly the same numbers as a session that saw every update.
// Records violating advanceAmount <= amount are not corrected here; their raw
// EffectivePaid/BalanceDue arithmetic flows into the totals.
func ComputeStats(records []models.Booking) Stats {
	stats := Stats{
		TotalCount:     len(records),
		CategoryCounts: []CategoryCount{},
	}

	categoryIndex := map[string]int{}
	for _, b := range records {
		switch b.Status {
		case models.StatusConfirmed:
			stats.ConfirmedCount++
		case models.StatusPending:
			stats.PendingCount++
		}
		if b.Status != models.StatusCompleted {
			stats.ActiveCount++
		}

		stats.TotalRevenue += b.EffectivePaid()
		stats.TotalBalance += b.BalanceDue()

		if i, ok := categoryIndex[b.EventCategory]; ok {
			stats.CategoryCounts[i].Count++
		} else {
			categoryIndex[b.EventCategory] = len(stats.CategoryCounts)
			stats.CategoryCounts = append(stats.CategoryCounts, CategoryCount{Category: b.EventCategory, Count: 1})
		}
	}

	// Top category: strictly greatest count wins; on a tie the entry seen
	// first in the snapshot keeps the title.
	best := -1
	for _, cc := range stats.CategoryCounts {
		if cc.Count > best {
			best = cc.Count
			stats.TopCategory = cc.Category
		}
	}

	return stats
}
