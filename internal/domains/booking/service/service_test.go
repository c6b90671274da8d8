package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandresort/config"
	kafkaMocks "grandresort/infras/kafka/mocks"
	"grandresort/infras/otel/mocks"
	bookingMocks "grandresort/internal/domains/booking/mocks"
	"grandresort/internal/domains/booking/model/dto"
	"grandresort/internal/domains/booking/service"
	"grandresort/internal/domains/booking/wizard"
	resMocks "grandresort/internal/domains/reservation/mocks"
	roomMocks "grandresort/internal/domains/room/mocks"
	roomModel "grandresort/internal/domains/room/model"
	cacheMocks "grandresort/shared/cache/mocks"
	"grandresort/shared/failure"
)

type bookingFixture struct {
	roomRepo *roomMocks.MockRoom
	resRepo  *resMocks.MockReservation
	gateway  *bookingMocks.MockGateway
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
	svc      service.Booking
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &bookingFixture{
		roomRepo: roomMocks.NewMockRoom(ctrl),
		resRepo:  resMocks.NewMockReservation(ctrl),
		gateway:  bookingMocks.NewMockGateway(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.DraftTTLSeconds = 1800
	cfg.Kafka.Topics.ReservationConfirmed = "reservation.confirmed"

	f.svc = service.New(f.roomRepo, f.resRepo, f.gateway, cfg, f.cache, f.kafka, mocks.NewOtel())

	return f
}

// expectDraftLoad copies the prepared draft into the destination the service
// hands to the cache, the same way the real cache unmarshals into it.
func (f *bookingFixture) expectDraftLoad(draft *wizard.Draft) {
	f.cache.EXPECT().
		Get(gomock.Any(), "wizard:draft:"+draft.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*wizard.Draft) = *draft

			return nil
		})
}

func (f *bookingFixture) expectDraftSave() *gomock.Call {
	return f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 1800).
		Return(nil)
}

func paymentStepDraft(id string) *wizard.Draft {
	return &wizard.Draft{
		ID:       id,
		Step:     wizard.StepPayment,
		CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Room: &wizard.RoomSelection{
			ID:          "room-1",
			Name:        "Deluxe Suite",
			NightlyRate: decimal.NewFromInt(2500),
		},
		Profile: wizard.GuestProfile{
			FullName:         "Asha Rao",
			Email:            "asha@example.com",
			Phone:            "9876543210",
			AgreedToPolicies: true,
		},
		PaymentMethod: wizard.PaymentMethodUPI,
	}
}

func TestBookingService_Start(t *testing.T) {
	f := newBookingFixture(t)

	f.expectDraftSave()

	res, err := f.svc.Start(context.Background(), dto.StartWizardRequest{
		CheckIn:  "2026-03-10",
		CheckOut: "2026-03-13",
		Guests:   "3",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, int(wizard.StepSelectRoom), res.Step)
	assert.Equal(t, "2026-03-10", res.CheckIn)
	assert.Equal(t, 3, res.Guests)
}

func TestBookingService_Start_SaveError(t *testing.T) {
	f := newBookingFixture(t)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 1800).
		Return(errors.New("redis down"))

	_, err := f.svc.Start(context.Background(), dto.StartWizardRequest{})

	assert.Error(t, err)
}

func TestBookingService_Get_UnknownSession(t *testing.T) {
	f := newBookingFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), "wizard:draft:missing", gomock.Any()).
		Return(errors.New("cache: nil"))

	_, err := f.svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Advance_ValidationKeepsStep(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.Step = wizard.StepGuestDetails
	draft.Profile = wizard.GuestProfile{}

	f.expectDraftLoad(draft)
	f.expectDraftSave()

	_, err := f.svc.Advance(context.Background(), "draft-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.NotEmpty(t, failure.GetFields(err))
}

func TestBookingService_Advance_MovesForward(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.Step = wizard.StepGuestDetails

	f.expectDraftLoad(draft)
	f.expectDraftSave()

	res, err := f.svc.Advance(context.Background(), "draft-1")

	assert.NoError(t, err)
	assert.Equal(t, int(wizard.StepPayment), res.Step)
}

func TestBookingService_Retreat_FirstStepExits(t *testing.T) {
	f := newBookingFixture(t)

	draft := &wizard.Draft{ID: "draft-1", Step: wizard.StepSelectRoom, Guests: 2}

	f.expectDraftLoad(draft)
	f.cache.EXPECT().
		Delete(gomock.Any(), "wizard:draft:draft-1").
		Return(nil)

	res, err := f.svc.Retreat(context.Background(), "draft-1")

	assert.NoError(t, err)
	assert.True(t, res.Exit)
}

func TestBookingService_Retreat_MovesBack(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")

	f.expectDraftLoad(draft)
	f.expectDraftSave()

	res, err := f.svc.Retreat(context.Background(), "draft-1")

	assert.NoError(t, err)
	assert.Equal(t, int(wizard.StepGuestDetails), res.Step)
	assert.False(t, res.Exit)
}

func TestBookingService_SelectRoom(t *testing.T) {
	tests := []struct {
		name     string
		room     roomModel.Room
		repoErr  error
		wantErr  bool
		wantCode int
	}{
		{
			name: "available room is snapshotted",
			room: roomModel.Room{
				ID:          "room-1",
				Name:        "Deluxe Suite",
				NightlyRate: decimal.NewFromInt(2500),
				Available:   true,
			},
		},
		{
			name:     "unavailable room is rejected",
			room:     roomModel.Room{ID: "room-1", Available: false},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown room is rejected",
			room:     roomModel.Room{},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "repository error",
			repoErr: errors.New("database error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)

			draft := &wizard.Draft{ID: "draft-1", Step: wizard.StepSelectRoom, Guests: 2}

			f.expectDraftLoad(draft)
			f.roomRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.room, tt.repoErr)

			if !tt.wantErr {
				f.expectDraftSave()
			}

			res, err := f.svc.SelectRoom(context.Background(), "draft-1", dto.SelectRoomRequest{RoomID: "room-1"})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Deluxe Suite", res.Room.Name)
			assert.True(t, res.Room.NightlyRate.Equal(decimal.NewFromInt(2500)))
		})
	}
}

func TestBookingService_SetPaymentMethod_RejectsUnknown(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.PaymentMethod = ""

	f.expectDraftLoad(draft)

	_, err := f.svc.SetPaymentMethod(context.Background(), "draft-1", dto.PaymentMethodRequest{Method: "CASH"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_SetGuestProfile(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.Step = wizard.StepGuestDetails

	f.expectDraftLoad(draft)
	f.expectDraftSave()

	res, err := f.svc.SetGuestProfile(context.Background(), "draft-1", dto.GuestProfileRequest{
		FullName:         "Ravi Kumar",
		Email:            "ravi@example.com",
		Phone:            "9000000000",
		AgreedToPolicies: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", res.Profile.FullName)
}

func TestBookingService_Confirm(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")

	f.expectDraftLoad(draft)
	f.expectDraftSave().Times(2)
	f.gateway.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		Return(nil)

	// The goroutine publishing the confirmation may or may not run before
	// the test returns.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), "reservation.confirmed", gomock.Any()).Return(nil).AnyTimes()

	f.resRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := f.svc.Confirm(context.Background(), "draft-1")

	assert.NoError(t, err)
	assert.Equal(t, int(wizard.StepConfirmation), res.Step)
	assert.NotEmpty(t, res.Reference)
	assert.True(t, res.Quote.Total.Equal(decimal.NewFromInt(8400)))
}

func TestBookingService_Confirm_AlreadyConfirmedIsIdempotent(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.Step = wizard.StepConfirmation
	draft.Reference = "GR-204417"

	f.expectDraftLoad(draft)

	res, err := f.svc.Confirm(context.Background(), "draft-1")

	assert.NoError(t, err)
	assert.Equal(t, "GR-204417", res.Reference)
}

func TestBookingService_Confirm_PendingSettlementConflicts(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.Settling = true

	f.expectDraftLoad(draft)

	_, err := f.svc.Confirm(context.Background(), "draft-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_Confirm_SettleFailureReleasesLock(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")

	f.expectDraftLoad(draft)
	f.expectDraftSave().Times(2)
	f.gateway.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		Return(errors.New("provider declined"))

	_, err := f.svc.Confirm(context.Background(), "draft-1")

	assert.Error(t, err)
}

func TestBookingService_Confirm_WithoutPaymentMethod(t *testing.T) {
	f := newBookingFixture(t)

	draft := paymentStepDraft("draft-1")
	draft.PaymentMethod = ""

	f.expectDraftLoad(draft)

	_, err := f.svc.Confirm(context.Background(), "draft-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
