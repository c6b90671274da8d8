package dto

import (
	"fmt"
	"math/rand"

	"grandresort/internal/domains/invoice/model"
	resModel "grandresort/internal/domains/reservation/model"
	"grandresort/shared"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest carries only the reservation to bill. The amounts
// are never accepted from the client; they are copied from the
// reservation's frozen pricing columns so invoice and receipt always agree.
type CreateInvoiceRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	DueDays       int    `json:"due_days"       validate:"omitempty,min=0,max=90"`
}

func (c *CreateInvoiceRequest) ToModel(user string, reservation resModel.Reservation) model.Invoice {
	issuedAt := timezone.Now()

	dueDays := c.DueDays
	if dueDays == 0 {
		dueDays = 14
	}

	return model.Invoice{
		ID:            uuid.NewString(),
		Number:        NewInvoiceNumber(issuedAt.Year()),
		ReservationID: reservation.ID,
		GuestName:     reservation.GuestName,
		Subtotal:      reservation.Subtotal,
		Tax:           reservation.Tax,
		Total:         reservation.Total,
		Status:        model.StatusIssued,
		IssuedAt:      issuedAt,
		DueAt:         issuedAt.AddDate(0, 0, dueDays),
		Metadata: gModel.Metadata{
			CreatedAt:  issuedAt,
			ModifiedAt: issuedAt,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// NewInvoiceNumber fabricates a yearly-prefixed invoice number.
func NewInvoiceNumber(year int) string {
	return fmt.Sprintf("INV-%d-%06d", year, rand.Intn(1000000))
}

type InvoiceResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"invoice_number"`
	ReservationID string          `json:"reservation_id"`
	GuestName     string          `json:"guest_name"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	IssuedAt      string          `json:"issued_at"`
	DueAt         string          `json:"due_at"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(model model.Invoice) {
	r.ID = model.ID
	r.Number = model.Number
	r.ReservationID = model.ReservationID
	r.GuestName = model.GuestName
	r.Subtotal = model.Subtotal
	r.Tax = model.Tax
	r.Total = model.Total
	r.Status = model.Status
	r.IssuedAt = model.IssuedAt.Format(constant.DateFormat)
	r.DueAt = model.DueAt.Format(constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
