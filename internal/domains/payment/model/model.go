package model

import (
	"time"

	"grandresort/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldReservationID = "reservation_id"
	FieldReference     = "reference"
	FieldAmount        = "amount"
	FieldMethod        = "method"
	FieldStatus        = "status"
	FieldPaidAt        = "paid_at"
)

const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusRefunded = "REFUNDED"
)

type Payment struct {
	ID            string          `db:"id"`
	ReservationID string          `db:"reservation_id"`
	Reference     string          `db:"reference"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	Status        string          `db:"status"`
	PaidAt        *time.Time      `db:"paid_at"`
	model.Metadata
}
