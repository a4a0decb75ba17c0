package repositories

import (
	"database/sql"

	intconfig "bennyevents/internal/config"
	"bennyevents/internal/domain"
	"bennyevents/internal/domain/models"

	"github.com/google/uuid"
)

// bookingColumns maps the record's mutable field names onto their columns.
// Patch targets outside this map are rejected before any SQL runs.
var bookingColumns = map[string]string{
	"clientName":    "client_name",
	"clientPhone":   "client_phone",
	"clientEmail":   "client_email",
	"eventLocation": "event_location",
	"requirements":  "requirements",
	"eventDate":     "event_date",
	"eventCategory": "event_category",
	"status":        "status",
	"paymentStatus": "payment_status",
	"amount":        "amount",
	"advanceAmount": "advance_amount",
}

// MutableField reports whether a patch may target the named field.
func MutableField(field string) bool {
	_, ok := bookingColumns[field]
	return ok
}

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT id, owner_id, client_name, client_phone, client_email,
	       event_location, COALESCE(requirements, ''), event_date, event_category,
	       status, payment_status, amount, advance_amount, created_at
	FROM bookings`

// List returns the ledger (or an owner-scoped subset) createdAt descending.
// Rows without a timestamp carry no ordering guarantee and come first, as if
// most recent.
func (r BookingRepository) List(ownerID string) ([]models.Booking, error) {
	query := bookingSelect
	args := []any{}
	if ownerID != "" {
		query += ` WHERE owner_id = ?`
		args = append(args, ownerID)
	}
	query += ` ORDER BY (created_at IS NULL) DESC, created_at DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bookings", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan booking", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list bookings", Err: err}
	}
	return out, nil
}

func (r BookingRepository) GetByID(id string) (models.Booking, error) {
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	row := r.db().QueryRow(bookingSelect+` WHERE id = ? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "get booking", Err: err}
	}
	return b, nil
}

// Insert stores a new record. The store assigns the id and stamps created_at
// server-side; both come back to the caller only through the next snapshot or
// a GetByID.
func (r BookingRepository) Insert(b models.Booking) (string, error) {
	id := uuid.NewString()
	_, err := r.db().Exec(`
		INSERT INTO bookings
			(id, owner_id, client_name, client_phone, client_email,
			 event_location, requirements, event_date, event_category,
			 status, payment_status, amount, advance_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		id, b.OwnerID, b.ClientName, b.ClientPhone, b.ClientEmail,
		b.EventLocation, b.Requirements, b.EventDate, b.EventCategory,
		b.Status, b.PaymentStatus, b.Amount, b.AdvanceAmount,
	)
	if err != nil {
		return "", domain.InternalError{Msg: "insert booking", Err: err}
	}
	return id, nil
}

// UpdateField applies one named field's new value. Each call is its own
// UPDATE touching a single column, so concurrent writes to different fields
// never clobber each other; concurrent writes to the same field race and the
// later arrival wins with no conflict signal.
func (r BookingRepository) UpdateField(id, field string, value any) error {
	col, ok := bookingColumns[field]
	if !ok {
		return domain.ValidationError{Field: field, Msg: "not a mutable field"}
	}
	_, err := r.db().Exec(`UPDATE bookings SET `+col+` = ? WHERE id = ?`, value, id)
	if err != nil {
		return domain.InternalError{Msg: "update booking", Err: err}
	}
	return nil
}

// Delete removes the record permanently. No archive, no soft delete.
func (r BookingRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete booking", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var created sql.NullTime
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.ClientName, &b.ClientPhone, &b.ClientEmail,
		&b.EventLocation, &b.Requirements, &b.EventDate, &b.EventCategory,
		&b.Status, &b.PaymentStatus, &b.Amount, &b.AdvanceAmount, &created,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if created.Valid {
		t := created.Time
		b.CreatedAt = &t
	}
	return b, nil
}
