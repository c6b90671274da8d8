package dto

import (
	"grandresort/internal/domains/booking/pricing"
	"grandresort/internal/domains/booking/wizard"
	"grandresort/shared/constant"

	"github.com/shopspring/decimal"
)

// StartWizardRequest carries the entry-point query parameters verbatim.
// Parsing and fallback live in the wizard package.
type StartWizardRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   string `json:"guests"`
}

type SelectRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type GuestProfileRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	SpecialRequests  string `json:"special_requests"`
	AgreedToPolicies bool   `json:"agreed_to_policies"`
}

func (r *GuestProfileRequest) ToProfile() wizard.GuestProfile {
	return wizard.GuestProfile{
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		SpecialRequests:  r.SpecialRequests,
		AgreedToPolicies: r.AgreedToPolicies,
	}
}

type PaymentMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=UPI CARD"`
}

type RoomSelectionResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
}

type QuoteResponse struct {
	Nights   int             `json:"nights"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func (r *QuoteResponse) FromQuote(quote pricing.Quote) {
	r.Nights = quote.Nights
	r.Subtotal = quote.Subtotal
	r.Tax = quote.Tax
	r.Total = quote.Total
}

// WizardResponse is the full draft state returned after every wizard
// mutation. The frontend renders whatever step and errors it carries, so a
// reload never loses progress.
type WizardResponse struct {
	ID            string                 `json:"id"`
	Step          int                    `json:"step"`
	CheckIn       string                 `json:"check_in,omitempty"`
	CheckOut      string                 `json:"check_out,omitempty"`
	Guests        int                    `json:"guests"`
	Room          *RoomSelectionResponse `json:"room,omitempty"`
	Profile       GuestProfileRequest    `json:"profile"`
	FieldErrors   map[string]string      `json:"field_errors,omitempty"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	Reference     string                 `json:"reference,omitempty"`
	Quote         QuoteResponse          `json:"quote"`
	Exit          bool                   `json:"exit,omitempty"`
}

func (r *WizardResponse) FromDraft(draft *wizard.Draft) {
	r.ID = draft.ID
	r.Step = int(draft.Step)
	r.Guests = draft.Guests

	if !draft.CheckIn.IsZero() {
		r.CheckIn = draft.CheckIn.Format(constant.StayDateFormat)
	}

	if !draft.CheckOut.IsZero() {
		r.CheckOut = draft.CheckOut.Format(constant.StayDateFormat)
	}

	if draft.Room != nil {
		r.Room = &RoomSelectionResponse{
			ID:          draft.Room.ID,
			Name:        draft.Room.Name,
			NightlyRate: draft.Room.NightlyRate,
		}
	}

	r.Profile = GuestProfileRequest{
		FullName:         draft.Profile.FullName,
		Email:            draft.Profile.Email,
		Phone:            draft.Profile.Phone,
		Address:          draft.Profile.Address,
		SpecialRequests:  draft.Profile.SpecialRequests,
		AgreedToPolicies: draft.Profile.AgreedToPolicies,
	}

	r.FieldErrors = draft.FieldErrors
	r.PaymentMethod = string(draft.PaymentMethod)
	r.Reference = draft.Reference
	r.Quote.FromQuote(draft.Quote())
}

// ReservationConfirmedEvent is the message published after a wizard draft
// settles into a reservation.
type ReservationConfirmedEvent struct {
	ReservationID string          `json:"reservation_id"`
	Reference     string          `json:"reference"`
	RoomID        string          `json:"room_id"`
	GuestEmail    string          `json:"guest_email"`
	Total         decimal.Decimal `json:"total"`
}
