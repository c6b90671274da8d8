package dto

import (
	"time"

	"grandresort/internal/domains/reservation/model"
	"grandresort/shared"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	RoomID          string          `json:"room_id"          validate:"required"`
	RoomName        string          `json:"room_name"        validate:"required,max=100"`
	GuestName       string          `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string          `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string          `json:"guest_phone"      validate:"required,max=20"`
	GuestAddress    string          `json:"guest_address"    validate:"omitempty,max=200"`
	CheckIn         string          `json:"check_in"         validate:"required"`
	CheckOut        string          `json:"check_out"        validate:"required"`
	Guests          int             `json:"guests"           validate:"required,min=1"`
	Nights          int             `json:"nights"           validate:"required,min=1"`
	Subtotal        decimal.Decimal `json:"subtotal"         validate:"required"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"            validate:"required"`
	PaymentMethod   string          `json:"payment_method"   validate:"required,oneof=UPI CARD"`
	SpecialRequests string          `json:"special_requests" validate:"omitempty"`
}

func (c *CreateReservationRequest) ToModel(user, reference string) (model.Reservation, error) {
	checkIn, err := time.Parse(constant.StayDateFormat, c.CheckIn)
	if err != nil {
		return model.Reservation{}, err
	}

	checkOut, err := time.Parse(constant.StayDateFormat, c.CheckOut)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		Reference:       reference,
		RoomID:          c.RoomID,
		RoomName:        c.RoomName,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		GuestAddress:    c.GuestAddress,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		Nights:          c.Nights,
		Subtotal:        c.Subtotal,
		Tax:             c.Tax,
		Total:           c.Total,
		PaymentMethod:   c.PaymentMethod,
		SpecialRequests: c.SpecialRequests,
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateReservationRequest struct {
	GuestName       string `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string `db:"guest_email"      json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	GuestAddress    string `db:"guest_address"    json:"guest_address"    validate:"omitempty,max=200"`
	SpecialRequests string `db:"special_requests" json:"special_requests" validate:"omitempty"`
	Status          string `db:"status"           json:"status"           validate:"omitempty,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED"`
}

type ReservationResponse struct {
	ID              string          `json:"id"`
	Reference       string          `json:"reference"`
	RoomID          string          `json:"room_id"`
	RoomName        string          `json:"room_name"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	GuestPhone      string          `json:"guest_phone"`
	GuestAddress    string          `json:"guest_address"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Guests          int             `json:"guests"`
	Nights          int             `json:"nights"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	SpecialRequests string          `json:"special_requests"`
	Status          string          `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.GuestAddress = model.GuestAddress
	r.CheckIn = model.CheckIn.Format(constant.StayDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.StayDateFormat)
	r.Guests = model.Guests
	r.Nights = model.Nights
	r.Subtotal = model.Subtotal
	r.Tax = model.Tax
	r.Total = model.Total
	r.PaymentMethod = model.PaymentMethod
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
