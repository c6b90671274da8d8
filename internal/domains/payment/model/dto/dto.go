package dto

import (
	"time"

	"grandresort/internal/domains/payment/model"
	"grandresort/shared"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	ReservationID string          `json:"reservation_id" validate:"required"`
	Reference     string          `json:"reference"      validate:"required,max=20"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	Method        string          `json:"method"         validate:"required,oneof=UPI CARD CASH"`
	Status        string          `json:"status"         validate:"omitempty,oneof=PENDING PAID REFUNDED"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := model.StatusPaid
	if c.Status != "" {
		status = c.Status
	}

	var paidAt *time.Time
	if status == model.StatusPaid {
		now := timezone.Now()
		paidAt = &now
	}

	return model.Payment{
		ID:            uuid.NewString(),
		ReservationID: c.ReservationID,
		Reference:     c.Reference,
		Amount:        c.Amount,
		Method:        c.Method,
		Status:        status,
		PaidAt:        paidAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=PENDING PAID REFUNDED"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	ReservationID string          `json:"reservation_id"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	PaidAt        string          `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.Reference = model.Reference
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status

	if model.PaidAt != nil {
		r.PaidAt = model.PaidAt.Format(constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
