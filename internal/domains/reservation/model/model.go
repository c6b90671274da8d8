package model

import (
	"time"

	"grandresort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldReference       = "reference"
	FieldRoomID          = "room_id"
	FieldRoomName        = "room_name"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldGuestAddress    = "guest_address"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldNights          = "nights"
	FieldSubtotal        = "subtotal"
	FieldTax             = "tax"
	FieldTotal           = "total"
	FieldPaymentMethod   = "payment_method"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
)

const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
)

// Reservation is the settled outcome of the booking wizard. The price
// columns are frozen at confirmation time so later rate changes never
// rewrite history.
type Reservation struct {
	ID              string          `db:"id"`
	Reference       string          `db:"reference"`
	RoomID          string          `db:"room_id"`
	RoomName        string          `db:"room_name"`
	GuestName       string          `db:"guest_name"`
	GuestEmail      string          `db:"guest_email"`
	GuestPhone      string          `db:"guest_phone"`
	GuestAddress    string          `db:"guest_address"`
	CheckIn         time.Time       `db:"check_in"`
	CheckOut        time.Time       `db:"check_out"`
	Guests          int             `db:"guests"`
	Nights          int             `db:"nights"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	Tax             decimal.Decimal `db:"tax"`
	Total           decimal.Decimal `db:"total"`
	PaymentMethod   string          `db:"payment_method"`
	SpecialRequests string          `db:"special_requests"`
	Status          string          `db:"status"`
	model.Metadata
}
