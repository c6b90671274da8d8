package wizard_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grandresort/internal/domains/booking/wizard"
)

func validProfile() wizard.GuestProfile {
	return wizard.GuestProfile{
		FullName:         "Asha Rao",
		Email:            "asha@example.com",
		Phone:            "+91 98765 43210",
		AgreedToPolicies: true,
	}
}

func draftAtPayment(t *testing.T) *wizard.Draft {
	t.Helper()

	draft := wizard.New("draft-1", wizard.Seed{CheckIn: "2026-03-10", CheckOut: "2026-03-13"})
	draft.SelectRoom(wizard.RoomSelection{
		ID:          "room-1",
		Name:        "Deluxe Suite",
		NightlyRate: decimal.NewFromInt(2500),
	})
	require.NoError(t, draft.Advance())

	draft.SetGuestProfile(validProfile())
	require.NoError(t, draft.Advance())

	require.NoError(t, draft.SetPaymentMethod(wizard.PaymentMethodUPI))

	return draft
}

func TestNew_SeedDefaults(t *testing.T) {
	tests := []struct {
		name       string
		seed       wizard.Seed
		wantGuests int
		wantDates  bool
	}{
		{
			name:       "empty seed keeps defaults",
			seed:       wizard.Seed{},
			wantGuests: 2,
		},
		{
			name:       "valid seed is applied",
			seed:       wizard.Seed{CheckIn: "2026-03-10", CheckOut: "2026-03-13", Guests: "4"},
			wantGuests: 4,
			wantDates:  true,
		},
		{
			name:       "malformed dates are ignored",
			seed:       wizard.Seed{CheckIn: "10/03/2026", CheckOut: "garbage", Guests: "3"},
			wantGuests: 3,
		},
		{
			name:       "non-numeric guests falls back",
			seed:       wizard.Seed{Guests: "lots"},
			wantGuests: 2,
		},
		{
			name:       "zero guests falls back",
			seed:       wizard.Seed{Guests: "0"},
			wantGuests: 2,
		},
		{
			name:       "negative guests falls back",
			seed:       wizard.Seed{Guests: "-3"},
			wantGuests: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := wizard.New("draft-1", tt.seed)

			assert.Equal(t, wizard.StepSelectRoom, draft.Step)
			assert.Equal(t, tt.wantGuests, draft.Guests)

			if tt.wantDates {
				assert.False(t, draft.CheckIn.IsZero())
				assert.False(t, draft.CheckOut.IsZero())
			} else {
				assert.True(t, draft.CheckIn.IsZero())
				assert.True(t, draft.CheckOut.IsZero())
			}
		})
	}
}

func TestDraft_AdvanceRequiresRoom(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})

	err := draft.Advance()

	assert.ErrorIs(t, err, wizard.ErrRoomNotSelected)
	assert.Equal(t, wizard.StepSelectRoom, draft.Step)

	draft.SelectRoom(wizard.RoomSelection{ID: "room-1", NightlyRate: decimal.NewFromInt(2000)})

	assert.NoError(t, draft.Advance())
	assert.Equal(t, wizard.StepGuestDetails, draft.Step)
}

func TestDraft_AdvanceReportsAllFieldErrorsAtOnce(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})
	draft.SelectRoom(wizard.RoomSelection{ID: "room-1", NightlyRate: decimal.NewFromInt(2000)})
	require.NoError(t, draft.Advance())

	err := draft.Advance()

	assert.ErrorIs(t, err, wizard.ErrInvalidProfile)
	assert.Equal(t, wizard.StepGuestDetails, draft.Step)
	assert.Len(t, draft.FieldErrors, 4)
	assert.Contains(t, draft.FieldErrors, wizard.FieldFullName)
	assert.Contains(t, draft.FieldErrors, wizard.FieldEmail)
	assert.Contains(t, draft.FieldErrors, wizard.FieldPhone)
	assert.Contains(t, draft.FieldErrors, wizard.FieldAgreedToPolicies)
}

func TestDraft_SetGuestProfileClearsOnlyEditedFieldErrors(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})
	draft.SelectRoom(wizard.RoomSelection{ID: "room-1", NightlyRate: decimal.NewFromInt(2000)})
	require.NoError(t, draft.Advance())
	require.ErrorIs(t, draft.Advance(), wizard.ErrInvalidProfile)
	require.Len(t, draft.FieldErrors, 4)

	// Edit only the name; the other three errors must survive.
	profile := draft.Profile
	profile.FullName = "Asha Rao"
	draft.SetGuestProfile(profile)

	assert.NotContains(t, draft.FieldErrors, wizard.FieldFullName)
	assert.Contains(t, draft.FieldErrors, wizard.FieldEmail)
	assert.Contains(t, draft.FieldErrors, wizard.FieldPhone)
	assert.Contains(t, draft.FieldErrors, wizard.FieldAgreedToPolicies)
}

func TestDraft_SetGuestProfileNilsEmptyErrorMap(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})
	draft.SelectRoom(wizard.RoomSelection{ID: "room-1", NightlyRate: decimal.NewFromInt(2000)})
	require.NoError(t, draft.Advance())
	require.ErrorIs(t, draft.Advance(), wizard.ErrInvalidProfile)

	draft.SetGuestProfile(validProfile())

	assert.Nil(t, draft.FieldErrors)
	assert.NoError(t, draft.Advance())
	assert.Equal(t, wizard.StepPayment, draft.Step)
}

func TestDraft_AdvanceRequiresPaymentMethod(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})
	draft.SelectRoom(wizard.RoomSelection{ID: "room-1", NightlyRate: decimal.NewFromInt(2000)})
	require.NoError(t, draft.Advance())
	draft.SetGuestProfile(validProfile())
	require.NoError(t, draft.Advance())

	err := draft.Advance()

	assert.ErrorIs(t, err, wizard.ErrNoPaymentMethod)
	assert.Equal(t, wizard.StepPayment, draft.Step)
}

func TestDraft_AdvanceAtConfirmationIsNoOp(t *testing.T) {
	draft := draftAtPayment(t)
	require.NoError(t, draft.BeginSettlement())
	draft.CompleteSettlement("GR-000123")

	assert.NoError(t, draft.Advance())
	assert.Equal(t, wizard.StepConfirmation, draft.Step)
}

func TestDraft_RetreatAtFirstStepExits(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})

	err := draft.Retreat()

	assert.ErrorIs(t, err, wizard.ErrExitWizard)
	assert.Equal(t, wizard.StepSelectRoom, draft.Step)
}

func TestDraft_RetreatMovesBack(t *testing.T) {
	draft := draftAtPayment(t)

	require.NoError(t, draft.Retreat())
	assert.Equal(t, wizard.StepGuestDetails, draft.Step)

	require.NoError(t, draft.Retreat())
	assert.Equal(t, wizard.StepSelectRoom, draft.Step)
}

func TestDraft_SetPaymentMethod(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})

	assert.NoError(t, draft.SetPaymentMethod(wizard.PaymentMethodUPI))
	assert.Equal(t, wizard.PaymentMethodUPI, draft.PaymentMethod)

	assert.NoError(t, draft.SetPaymentMethod(wizard.PaymentMethodCard))
	assert.Equal(t, wizard.PaymentMethodCard, draft.PaymentMethod)

	assert.ErrorIs(t, draft.SetPaymentMethod("CASH"), wizard.ErrInvalidMethod)
	assert.Equal(t, wizard.PaymentMethodCard, draft.PaymentMethod)
}

func TestDraft_QuoteWithoutRoomIsZero(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{CheckIn: "2026-03-10", CheckOut: "2026-03-13"})

	quote := draft.Quote()

	assert.Equal(t, 0, quote.Nights)
	assert.True(t, quote.Total.IsZero())
}

func TestDraft_QuoteUsesFrozenRate(t *testing.T) {
	draft := draftAtPayment(t)

	quote := draft.Quote()

	assert.Equal(t, 3, quote.Nights)
	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(7500)), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.Tax.Equal(decimal.NewFromInt(900)), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(8400)), "total %s", quote.Total)
}

func TestDraft_Settlement(t *testing.T) {
	draft := draftAtPayment(t)

	require.NoError(t, draft.BeginSettlement())
	assert.True(t, draft.Settling)

	// A second submission while in flight must conflict.
	assert.ErrorIs(t, draft.BeginSettlement(), wizard.ErrSettlementPending)

	draft.CompleteSettlement("GR-000123")

	assert.False(t, draft.Settling)
	assert.Equal(t, "GR-000123", draft.Reference)
	assert.Equal(t, wizard.StepConfirmation, draft.Step)

	// Re-confirming a settled draft reports it as already confirmed.
	assert.ErrorIs(t, draft.BeginSettlement(), wizard.ErrAlreadyConfirmed)
}

func TestDraft_AbortSettlementAllowsRetry(t *testing.T) {
	draft := draftAtPayment(t)

	require.NoError(t, draft.BeginSettlement())
	draft.AbortSettlement()

	assert.False(t, draft.Settling)
	assert.Equal(t, wizard.StepPayment, draft.Step)
	assert.NoError(t, draft.BeginSettlement())
}

func TestDraft_BeginSettlementOutsidePaymentStep(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})

	assert.ErrorIs(t, draft.BeginSettlement(), wizard.ErrNotAtPaymentStep)
}

func TestDraft_BeginSettlementWithoutMethod(t *testing.T) {
	draft := wizard.New("draft-1", wizard.Seed{})
	draft.SelectRoom(wizard.RoomSelection{ID: "room-1", NightlyRate: decimal.NewFromInt(2000)})
	require.NoError(t, draft.Advance())
	draft.SetGuestProfile(validProfile())
	require.NoError(t, draft.Advance())

	assert.ErrorIs(t, draft.BeginSettlement(), wizard.ErrNoPaymentMethod)
}

func TestValidateGuestProfile(t *testing.T) {
	tests := []struct {
		name       string
		profile    wizard.GuestProfile
		wantFields []string
	}{
		{
			name:    "valid profile",
			profile: validProfile(),
		},
		{
			name: "malformed email",
			profile: wizard.GuestProfile{
				FullName:         "Asha Rao",
				Email:            "not-an-email",
				Phone:            "+91 98765 43210",
				AgreedToPolicies: true,
			},
			wantFields: []string{wizard.FieldEmail},
		},
		{
			name: "policies not accepted",
			profile: wizard.GuestProfile{
				FullName: "Asha Rao",
				Email:    "asha@example.com",
				Phone:    "+91 98765 43210",
			},
			wantFields: []string{wizard.FieldAgreedToPolicies},
		},
		{
			name:    "everything missing",
			profile: wizard.GuestProfile{},
			wantFields: []string{
				wizard.FieldFullName,
				wizard.FieldEmail,
				wizard.FieldPhone,
				wizard.FieldAgreedToPolicies,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := wizard.ValidateGuestProfile(tt.profile)

			if len(tt.wantFields) == 0 {
				assert.Nil(t, fieldErrors)

				return
			}

			assert.Len(t, fieldErrors, len(tt.wantFields))

			for _, field := range tt.wantFields {
				assert.Contains(t, fieldErrors, field)
			}
		})
	}
}
