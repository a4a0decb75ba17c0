package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"bennyevents/internal/domain"
	"bennyevents/internal/domain/models"
	"bennyevents/internal/ledger"
	"bennyevents/internal/repositories"
	"bennyevents/internal/utils"
)

// clientFields is the self-service capability set: the only fields the owning
// client may patch. Everything else is operator-controlled.
var clientFields = map[string]bool{
	"clientName":  true,
	"clientPhone": true,
	"clientEmail": true,
}

// BookingService is the mutation gateway. Every write validates, hits the
// store, broadcasts the change signal and returns on store acceptance — it
// never waits for the echoed snapshot. A caller that needs to observe its own
// write waits for its subscription to re-emit.
type BookingService struct {
	Repo      repositories.BookingRepository
	Hub       *ledger.Hub
	RequestID string
}

// Create inserts a new record owned by the principal. Status and payment
// status are forced to their initial values regardless of input; createdAt is
// stamped by the store.
func (s BookingService) Create(p domain.Principal, in models.BookingInput) (string, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.ClientName == "" {
		return "", domain.ValidationError{Field: "clientName", Msg: "must not be empty"}
	}
	if in.EventDate != "" {
		if _, err := utils.ParseDate(in.EventDate); err != nil {
			return "", domain.ValidationError{Field: "eventDate", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	if in.EventCategory == "" {
		in.EventCategory = models.CategoryOther
	}
	if !models.ValidCategory(in.EventCategory) {
		return "", domain.ValidationError{Field: "eventCategory", Msg: "unknown category"}
	}
	if in.Amount < 0 || in.AdvanceAmount < 0 {
		return "", domain.ValidationError{Field: "amount", Msg: "must be non-negative"}
	}
	if in.AdvanceAmount > in.Amount {
		return "", domain.ValidationError{Field: "advanceAmount", Msg: "must not exceed amount"}
	}

	id, err := s.Repo.Insert(models.Booking{
		OwnerID:       p.Email,
		ClientName:    in.ClientName,
		ClientPhone:   strings.TrimSpace(in.ClientPhone),
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		EventLocation: strings.TrimSpace(in.EventLocation),
		Requirements:  strings.TrimSpace(in.Requirements),
		EventDate:     in.EventDate,
		EventCategory: in.EventCategory,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
		Amount:        in.Amount,
		AdvanceAmount: in.AdvanceAmount,
	})
	if err != nil {
		return "", err
	}

	utils.LogEvent(s.RequestID, "bookings", "create", "id="+id)
	s.broadcast()
	return id, nil
}

// Patch applies partial-field updates to one record. Each named field becomes
// its own single-column UPDATE, so two concurrent patches to different fields
// both land; two patches to the same field race and the later store arrival
// wins silently. That last-write-wins model is accepted deliberately — one
// operator console and infrequent edits make a version-counter CAS more
// machinery than the contention warrants.
func (s BookingService) Patch(p domain.Principal, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.ValidationError{Field: "fields", Msg: "no fields to update"}
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !repositories.MutableField(name) {
			return domain.ValidationError{Field: name, Msg: "not a mutable field"}
		}
		if !p.IsOperator() && !clientFields[name] {
			return domain.ForbiddenError{Action: "patch", Msg: "field " + name + " is operator-controlled"}
		}
	}
	if !p.IsOperator() && current.OwnerID != p.Email {
		return domain.ForbiddenError{Action: "patch", Msg: "not the record owner"}
	}

	merged := current
	values := make(map[string]any, len(fields))
	for _, name := range names {
		v, err := mergeField(&merged, name, fields[name])
		if err != nil {
			return err
		}
		values[name] = v
	}
	if err := validateMerged(merged); err != nil {
		return err
	}

	for _, name := range names {
		if err := s.Repo.UpdateField(id, name, values[name]); err != nil {
			return err
		}
	}

	utils.LogEvent(s.RequestID, "bookings", "patch", fmt.Sprintf("id=%s fields=%s", id, strings.Join(names, ",")))
	s.broadcast()
	return nil
}

// Delete removes a record permanently. Operator only; destructive and
// immediate, nothing is archived.
func (s BookingService) Delete(p domain.Principal, id string) error {
	if !p.IsOperator() {
		return domain.ForbiddenError{Action: "delete", Msg: "operator only"}
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "bookings", "delete", "id="+id)
	s.broadcast()
	return nil
}

func (s BookingService) broadcast() {
	if s.Hub != nil {
		s.Hub.Broadcast()
	}
}

// mergeField folds one patch value into the merged record and returns the
// store-ready value. JSON numbers arrive as float64 (or json.Number); both
// money fields coerce to int64.
func mergeField(b *models.Booking, name string, raw any) (any, error) {
	switch name {
	case "amount", "advanceAmount":
		n, err := amountValue(raw)
		if err != nil {
			return nil, domain.ValidationError{Field: name, Msg: "must be a number", Err: err}
		}
		if name == "amount" {
			b.Amount = n
		} else {
			b.AdvanceAmount = n
		}
		return n, nil
	default:
		v, ok := raw.(string)
		if !ok {
			return nil, domain.ValidationError{Field: name, Msg: "must be a string"}
		}
		v = strings.TrimSpace(v)
		switch name {
		case "clientName":
			b.ClientName = v
		case "clientPhone":
			b.ClientPhone = v
		case "clientEmail":
			b.ClientEmail = v
		case "eventLocation":
			b.EventLocation = v
		case "requirements":
			b.Requirements = v
		case "eventDate":
			b.EventDate = v
		case "eventCategory":
			b.EventCategory = v
		case "status":
			b.Status = v
		case "paymentStatus":
			b.PaymentStatus = v
		}
		return v, nil
	}
}

// validateMerged checks the record as it would stand after the patch. This is
// the pre-write invariant gate: violations are rejected here instead of being
// silently compensated downstream by the aggregation engine.
func validateMerged(b models.Booking) error {
	if !models.ValidStatus(b.Status) {
		return domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	if !models.ValidPaymentStatus(b.PaymentStatus) {
		return domain.ValidationError{Field: "paymentStatus", Msg: "unknown payment status"}
	}
	if !models.ValidCategory(b.EventCategory) {
		return domain.ValidationError{Field: "eventCategory", Msg: "unknown category"}
	}
	if b.EventDate != "" {
		if _, err := utils.ParseDate(b.EventDate); err != nil {
			return domain.ValidationError{Field: "eventDate", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	if b.Amount < 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be non-negative"}
	}
	if b.AdvanceAmount < 0 {
		return domain.ValidationError{Field: "advanceAmount", Msg: "must be non-negative"}
	}
	if b.AdvanceAmount > b.Amount {
		return domain.ValidationError{Field: "advanceAmount", Msg: "must not exceed amount"}
	}
	return nil
}

func amountValue(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}
