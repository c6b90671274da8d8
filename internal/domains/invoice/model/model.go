package model

import (
	"time"

	"grandresort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldNumber        = "invoice_number"
	FieldReservationID = "reservation_id"
	FieldGuestName     = "guest_name"
	FieldSubtotal      = "subtotal"
	FieldTax           = "tax"
	FieldTotal         = "total"
	FieldStatus        = "status"
	FieldIssuedAt      = "issued_at"
	FieldDueAt         = "due_at"
)

const (
	StatusIssued = "ISSUED"
	StatusPaid   = "PAID"
	StatusVoid   = "VOID"
)

type Invoice struct {
	ID            string          `db:"id"`
	Number        string          `db:"invoice_number"`
	ReservationID string          `db:"reservation_id"`
	GuestName     string          `db:"guest_name"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	Tax           decimal.Decimal `db:"tax"`
	Total         decimal.Decimal `db:"total"`
	Status        string          `db:"status"`
	IssuedAt      time.Time       `db:"issued_at"`
	DueAt         time.Time       `db:"due_at"`
	model.Metadata
}
