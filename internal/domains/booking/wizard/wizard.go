package wizard

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"grandresort/internal/domains/booking/pricing"
	"grandresort/shared/constant"
	"grandresort/shared/timezone"

	"github.com/shopspring/decimal"
)

// Step is the wizard position. Transitions move one step at a time;
// StepConfirmation is terminal.
type Step int

const (
	StepSelectRoom Step = iota + 1
	StepGuestDetails
	StepPayment
	StepConfirmation
)

type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "CARD"
)

var (
	ErrExitWizard        = errors.New("exit wizard")
	ErrRoomNotSelected   = errors.New("no room selected")
	ErrInvalidProfile    = errors.New("guest profile is incomplete")
	ErrNoPaymentMethod   = errors.New("no payment method selected")
	ErrInvalidMethod     = errors.New("unknown payment method")
	ErrSettlementPending = errors.New("a settlement is already in progress")
	ErrNotAtPaymentStep  = errors.New("settlement is only possible at the payment step")
	ErrAlreadyConfirmed  = errors.New("booking is already confirmed")
)

// Guest-profile field keys, also used as error-map keys.
const (
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldAgreedToPolicies = "agreed_to_policies"
)

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// RoomSelection is the snapshot of the chosen room offering. The catalog is
// responsible for only offering available rooms; the wizard does not
// re-check availability.
type RoomSelection struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
}

type GuestProfile struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address,omitempty"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	AgreedToPolicies bool   `json:"agreed_to_policies"`
}

// Draft is the single mutable record accumulated across the four wizard
// steps. It is owned by exactly one session; all mutation happens through
// its methods.
type Draft struct {
	ID            string            `json:"id"`
	Step          Step              `json:"step"`
	CheckIn       time.Time         `json:"check_in,omitzero"`
	CheckOut      time.Time         `json:"check_out,omitzero"`
	Guests        int               `json:"guests"`
	Room          *RoomSelection    `json:"room,omitempty"`
	Profile       GuestProfile      `json:"profile"`
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
	PaymentMethod PaymentMethod     `json:"payment_method,omitempty"`
	Settling      bool              `json:"settling"`
	Reference     string            `json:"reference,omitempty"`
}

const defaultGuests = 2

// Seed carries the raw query parameters of the booking entry point.
// Malformed values are ignored silently and the draft keeps its defaults.
type Seed struct {
	CheckIn  string
	CheckOut string
	Guests   string
}

func New(id string, seed Seed) *Draft {
	draft := &Draft{
		ID:     id,
		Step:   StepSelectRoom,
		Guests: defaultGuests,
	}

	if t, err := timezone.Parse(constant.StayDateFormat, seed.CheckIn); err == nil {
		draft.CheckIn = t
	}

	if t, err := timezone.Parse(constant.StayDateFormat, seed.CheckOut); err == nil {
		draft.CheckOut = t
	}

	if guests, err := strconv.Atoi(seed.Guests); err == nil && guests > 0 {
		draft.Guests = guests
	}

	return draft
}

// Advance validates the current step and, if it passes, moves one step
// forward. At the terminal step it is a no-op. Validation failures leave the
// draft on its current step with FieldErrors populated; every failing field
// is reported at once.
func (d *Draft) Advance() error {
	switch d.Step {
	case StepSelectRoom:
		if d.Room == nil {
			return ErrRoomNotSelected
		}
	case StepGuestDetails:
		if fieldErrors := ValidateGuestProfile(d.Profile); len(fieldErrors) > 0 {
			d.FieldErrors = fieldErrors

			return ErrInvalidProfile
		}

		d.FieldErrors = nil
	case StepPayment:
		if d.PaymentMethod == "" {
			return ErrNoPaymentMethod
		}
	case StepConfirmation:
		return nil
	}

	d.Step++

	return nil
}

// Retreat moves one step back. At the first step it returns ErrExitWizard
// instead of underflowing; the caller is responsible for leaving the wizard.
func (d *Draft) Retreat() error {
	if d.Step == StepSelectRoom {
		return ErrExitWizard
	}

	d.Step--

	return nil
}

func (d *Draft) SelectRoom(room RoomSelection) {
	d.Room = &room
}

// SetGuestProfile replaces the profile wholesale. Any outstanding field
// error is cleared the moment its field is edited, independent of
// re-validation.
func (d *Draft) SetGuestProfile(profile GuestProfile) {
	previous := d.Profile
	d.Profile = profile

	if len(d.FieldErrors) == 0 {
		return
	}

	if profile.FullName != previous.FullName {
		delete(d.FieldErrors, FieldFullName)
	}

	if profile.Email != previous.Email {
		delete(d.FieldErrors, FieldEmail)
	}

	if profile.Phone != previous.Phone {
		delete(d.FieldErrors, FieldPhone)
	}

	if profile.AgreedToPolicies != previous.AgreedToPolicies {
		delete(d.FieldErrors, FieldAgreedToPolicies)
	}

	if len(d.FieldErrors) == 0 {
		d.FieldErrors = nil
	}
}

func (d *Draft) SetPaymentMethod(method PaymentMethod) error {
	switch method {
	case PaymentMethodUPI, PaymentMethodCard:
		d.PaymentMethod = method

		return nil
	default:
		return ErrInvalidMethod
	}
}

// Quote derives the price breakdown for the current selection. Without a
// selected room every amount is zero.
func (d *Draft) Quote() pricing.Quote {
	if d.Room == nil {
		return pricing.Quote{}
	}

	return pricing.ForStay(d.Room.NightlyRate, d.CheckIn, d.CheckOut)
}

// BeginSettlement marks the draft as settling. A second call while a
// settlement is in flight is rejected, so a double-submitted payment cannot
// confirm twice.
func (d *Draft) BeginSettlement() error {
	if d.Step == StepConfirmation {
		return ErrAlreadyConfirmed
	}

	if d.Step != StepPayment {
		return ErrNotAtPaymentStep
	}

	if d.PaymentMethod == "" {
		return ErrNoPaymentMethod
	}

	if d.Settling {
		return ErrSettlementPending
	}

	d.Settling = true

	return nil
}

// CompleteSettlement finishes a settlement started with BeginSettlement,
// stamping the booking reference and moving to the terminal step.
func (d *Draft) CompleteSettlement(reference string) {
	d.Settling = false
	d.Reference = reference
	d.Step = StepConfirmation
}

// AbortSettlement releases the in-flight settlement without advancing, so
// the draft can be confirmed again after a gateway failure.
func (d *Draft) AbortSettlement() {
	d.Settling = false
}

// ValidateGuestProfile checks the guest-details step. All failures are
// collected and reported simultaneously, never short-circuited on the first
// one.
func ValidateGuestProfile(profile GuestProfile) map[string]string {
	fieldErrors := map[string]string{}

	if profile.FullName == "" {
		fieldErrors[FieldFullName] = "full name is required"
	}

	if profile.Email == "" {
		fieldErrors[FieldEmail] = "email is required"
	} else if !emailShape.MatchString(profile.Email) {
		fieldErrors[FieldEmail] = "email must be a valid email address"
	}

	if profile.Phone == "" {
		fieldErrors[FieldPhone] = "phone is required"
	}

	if !profile.AgreedToPolicies {
		fieldErrors[FieldAgreedToPolicies] = "the property policies must be accepted"
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}
