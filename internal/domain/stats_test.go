package domain

import (
	"reflect"
	"testing"

	"bennyevents/internal/domain/models"
)

func TestComputeStatsPartialPayment(t *testing.T) {
	records := []models.Booking{
		{Amount: 100000, AdvanceAmount: 30000, PaymentStatus: models.PaymentPartial, Status: models.StatusConfirmed, EventCategory: models.CategoryWedding},
	}

	stats := ComputeStats(records)

	if stats.TotalRevenue != 30000 {
		t.Fatalf("revenue = %d, want 30000", stats.TotalRevenue)
	}
	if stats.TotalBalance != 70000 {
		t.Fatalf("balance due = %d, want 70000", stats.TotalBalance)
	}
	if stats.ConfirmedCount != 1 || stats.ActiveCount != 1 {
		t.Fatalf("counts = %+v", stats)
	}
}

func TestComputeStatsFullyPaidIgnoresStaleAdvance(t *testing.T) {
	// FullyPaid substitutes amount for advanceAmount on the read side even
	// when the stored advance was never updated.
	records := []models.Booking{
		{Amount: 50000, AdvanceAmount: 0, PaymentStatus: models.PaymentFullyPaid, Status: models.StatusCompleted, EventCategory: models.CategoryCatering},
	}

	stats := ComputeStats(records)

	if stats.TotalRevenue != 50000 {
		t.Fatalf("revenue = %d, want 50000 (not the stale advance)", stats.TotalRevenue)
	}
	if stats.TotalBalance != 0 {
		t.Fatalf("balance due = %d, want 0", stats.TotalBalance)
	}
	if stats.ActiveCount != 0 {
		t.Fatalf("completed record counted as active: %+v", stats)
	}
}

func TestComputeStatsViolatedInvariantPassesThrough(t *testing.T) {
	// advanceAmount > amount should never reach the store through the
	// gateway, but rows that already violate it flow through with raw
	// arithmetic: a negative balance, not a clamped zero.
	records := []models.Booking{
		{Amount: 100, AdvanceAmount: 150, PaymentStatus: models.PaymentPartial, Status: models.StatusPending, EventCategory: models.CategoryOther},
	}

	stats := ComputeStats(records)

	if stats.TotalRevenue != 150 {
		t.Fatalf("revenue = %d, want 150", stats.TotalRevenue)
	}
	if stats.TotalBalance != -50 {
		t.Fatalf("balance due = %d, want -50 (documented, not fixed)", stats.TotalBalance)
	}
}

func TestComputeStatsCategoryOrderAndTop(t *testing.T) {
	records := []models.Booking{
		{EventCategory: models.CategoryBirthday, Status: models.StatusPending},
		{EventCategory: models.CategoryWedding, Status: models.StatusPending},
		{EventCategory: models.CategoryWedding, Status: models.StatusPending},
		{EventCategory: models.CategoryBirthday, Status: models.StatusPending},
		{EventCategory: models.CategoryCorporate, Status: models.StatusPending},
	}

	stats := ComputeStats(records)

	want := []CategoryCount{
		{Category: models.CategoryBirthday, Count: 2},
		{Category: models.CategoryWedding, Count: 2},
		{Category: models.CategoryCorporate, Count: 1},
	}
	if !reflect.DeepEqual(stats.CategoryCounts, want) {
		t.Fatalf("category counts = %+v, want %+v", stats.CategoryCounts, want)
	}
	// tie between Birthday and Wedding: first-seen wins
	if stats.TopCategory != models.CategoryBirthday {
		t.Fatalf("top category = %q, want Birthday on tie", stats.TopCategory)
	}
}

func TestComputeStatsDeterministic(t *testing.T) {
	records := []models.Booking{
		{Amount: 100000, AdvanceAmount: 30000, PaymentStatus: models.PaymentPartial, Status: models.StatusConfirmed, EventCategory: models.CategoryWedding},
		{Amount: 50000, PaymentStatus: models.PaymentFullyPaid, Status: models.StatusCompleted, EventCategory: models.CategoryCatering},
		{Amount: 20000, PaymentStatus: models.PaymentUnpaid, Status: models.StatusPending, EventCategory: models.CategoryWedding},
	}

	first := ComputeStats(records)
	for i := 0; i < 10; i++ {
		again := ComputeStats(records)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestComputeStatsEmptySnapshot(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalCount != 0 || stats.TopCategory != "" || len(stats.CategoryCounts) != 0 {
		t.Fatalf("empty snapshot produced %+v", stats)
	}
}
