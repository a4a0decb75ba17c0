package models

import "time"

// Booking lifecycle statuses.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
)

// Payment statuses.
const (
	PaymentUnpaid    = "Unpaid"
	PaymentPartial   = "Partial"
	PaymentFullyPaid = "FullyPaid"
)

// Event categories.
const (
	CategoryWedding   = "Wedding"
	CategoryBirthday  = "Birthday"
	CategoryCorporate = "Corporate"
	CategoryCatering  = "Catering"
	CategoryOther     = "Other"
)

// Booking is the single ledger entity. ID, OwnerID and CreatedAt are assigned
// by the store and never change afterwards. CreatedAt is nil on legacy rows
// that predate the timestamp column; such rows sort as most recent.
type Booking struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"ownerId"`
	ClientName    string     `json:"clientName"`
	ClientPhone   string     `json:"clientPhone"`
	ClientEmail   string     `json:"clientEmail"`
	EventLocation string     `json:"eventLocation"`
	Requirements  string     `json:"requirements"`
	EventDate     string     `json:"eventDate"`
	EventCategory string     `json:"eventCategory"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	Amount        int64      `json:"amount"`
	AdvanceAmount int64      `json:"advanceAmount"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// BookingInput carries the client-facing submission fields. Status, payment
// status and ownership are stamped by the mutation gateway, not the caller.
type BookingInput struct {
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail"`
	EventLocation string `json:"eventLocation"`
	Requirements  string `json:"requirements"`
	EventDate     string `json:"eventDate"`
	EventCategory string `json:"eventCategory"`
	Amount        int64  `json:"amount"`
	AdvanceAmount int64  `json:"advanceAmount"`
}

// EffectivePaid is the amount treated as received: the full contract value
// when the record is marked FullyPaid, otherwise the recorded advance. A stale
// advance on a FullyPaid record is deliberately ignored on the read side.
func (b Booking) EffectivePaid() int64 {
	if b.PaymentStatus == PaymentFullyPaid {
		return b.Amount
	}
	return b.AdvanceAmount
}

// BalanceDue is the outstanding receivable. It can go negative when a stored
// record violates advanceAmount <= amount; callers get the raw arithmetic,
// never a silently clamped value.
func (b Booking) BalanceDue() int64 {
	return b.Amount - b.EffectivePaid()
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentFullyPaid:
		return true
	}
	return false
}

func ValidCategory(s string) bool {
	switch s {
	case CategoryWedding, CategoryBirthday, CategoryCorporate, CategoryCatering, CategoryOther:
		return true
	}
	return false
}
