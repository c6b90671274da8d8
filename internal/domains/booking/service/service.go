package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"grandresort/config"
	"grandresort/infras/kafka"
	"grandresort/infras/otel"
	"grandresort/internal/domains/booking/gateway"
	"grandresort/internal/domains/booking/model/dto"
	"grandresort/internal/domains/booking/wizard"
	resModel "grandresort/internal/domains/reservation/model"
	resRepo "grandresort/internal/domains/reservation/repository"
	roomModel "grandresort/internal/domains/room/model"
	roomRepo "grandresort/internal/domains/room/repository"
	"grandresort/shared"
	"grandresort/shared/cache"
	"grandresort/shared/constant"
	"grandresort/shared/failure"
	gModel "grandresort/shared/model"
	"grandresort/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheDraft = "wizard:draft"

	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

// Booking drives the four-step public booking wizard. Drafts live in Redis
// under a TTL so an abandoned session expires on its own; the database only
// ever sees settled reservations.
type Booking interface {
	Start(ctx context.Context, req dto.StartWizardRequest) (dto.WizardResponse, error)
	Get(ctx context.Context, id string) (dto.WizardResponse, error)
	Advance(ctx context.Context, id string) (dto.WizardResponse, error)
	Retreat(ctx context.Context, id string) (dto.WizardResponse, error)
	SelectRoom(ctx context.Context, id string, req dto.SelectRoomRequest) (dto.WizardResponse, error)
	SetGuestProfile(ctx context.Context, id string, req dto.GuestProfileRequest) (dto.WizardResponse, error)
	SetPaymentMethod(ctx context.Context, id string, req dto.PaymentMethodRequest) (dto.WizardResponse, error)
	Confirm(ctx context.Context, id string) (dto.WizardResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	resRepo  resRepo.Reservation
	gateway  gateway.Gateway
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	resRepo resRepo.Reservation,
	gateway gateway.Gateway,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		roomRepo: roomRepo,
		resRepo:  resRepo,
		gateway:  gateway,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafka,
		otel:     otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, req dto.StartWizardRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft := wizard.New(uuid.NewString(), wizard.Seed{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
	})

	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	res.FromDraft(draft)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromDraft(draft)

	return res, nil
}

// Advance validates the current step before moving on. A validation miss
// keeps the draft in place; the failing fields are persisted so a page
// reload still shows them.
func (s *serviceImpl) Advance(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Advance")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	advanceErr := draft.Advance()

	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	if advanceErr != nil {
		if errors.Is(advanceErr, wizard.ErrInvalidProfile) {
			return res, failure.Validation(draft.FieldErrors) // nolint:wrapcheck
		}

		return res, failure.BadRequestFromString(advanceErr.Error()) // nolint:wrapcheck
	}

	res.FromDraft(draft)

	return res, nil
}

// Retreat steps back one page. Backing out of the first step discards the
// draft entirely and signals the caller to leave the wizard.
func (s *serviceImpl) Retreat(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Retreat")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if retreatErr := draft.Retreat(); retreatErr != nil {
		if deleteErr := s.cache.Delete(ctx, shared.BuildCacheKey(cacheDraft, id)); deleteErr != nil {
			log.Error().Err(deleteErr).Msg("failed to discard wizard draft")
		}

		res.FromDraft(draft)
		res.Exit = true

		return res, nil
	}

	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	res.FromDraft(draft)

	return res, nil
}

// SelectRoom snapshots the chosen room's name and rate into the draft so a
// later rate change never reprices an in-flight booking.
func (s *serviceImpl) SelectRoom(ctx context.Context, id string, req dto.SelectRoomRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Available {
		return res, failure.BadRequestFromString("room is not available") // nolint:wrapcheck
	}

	draft.SelectRoom(wizard.RoomSelection{
		ID:          room.ID,
		Name:        room.Name,
		NightlyRate: room.NightlyRate,
	})

	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	res.FromDraft(draft)

	return res, nil
}

func (s *serviceImpl) SetGuestProfile(ctx context.Context, id string, req dto.GuestProfileRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetGuestProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	draft.SetGuestProfile(req.ToProfile())

	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	res.FromDraft(draft)

	return res, nil
}

func (s *serviceImpl) SetPaymentMethod(ctx context.Context, id string, req dto.PaymentMethodRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPaymentMethod")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if methodErr := draft.SetPaymentMethod(wizard.PaymentMethod(req.Method)); methodErr != nil {
		return res, failure.BadRequestFromString(methodErr.Error()) // nolint:wrapcheck
	}

	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	res.FromDraft(draft)

	return res, nil
}

// Confirm settles the payment and persists the reservation. Confirming an
// already-confirmed draft returns the existing confirmation unchanged, so a
// double-submitted payment form cannot book the stay twice.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadDraft(ctx, id)
	if err != nil {
		return res, err
	}

	if settleErr := draft.BeginSettlement(); settleErr != nil {
		if errors.Is(settleErr, wizard.ErrAlreadyConfirmed) {
			res.FromDraft(draft)

			return res, nil
		}

		if errors.Is(settleErr, wizard.ErrSettlementPending) {
			return res, failure.Conflict(settleErr.Error()) // nolint:wrapcheck
		}

		return res, failure.BadRequestFromString(settleErr.Error()) // nolint:wrapcheck
	}

	// Persist the settling flag first so a concurrent confirm conflicts
	// instead of double charging.
	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	quote := draft.Quote()

	settleErr := s.gateway.Settle(ctx, gateway.SettlementRequest{
		DraftID: draft.ID,
		Method:  string(draft.PaymentMethod),
		Amount:  quote.Total,
	})
	if settleErr != nil {
		log.Error().Err(settleErr).Msg("failed to settle payment")

		draft.AbortSettlement()

		if saveErr := s.saveDraft(ctx, draft); saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to release settlement lock")
		}

		return res, fmt.Errorf("failed to settle payment: %w", settleErr)
	}

	draft.CompleteSettlement(shared.NewBookingReference())

	reservation := s.toReservation(draft)

	if err = s.resRepo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	// Keep the confirmed draft around until its TTL so the confirmation
	// page survives a reload.
	if err = s.saveDraft(ctx, draft); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)

		event := dto.ReservationConfirmedEvent{
			ReservationID: reservation.ID,
			Reference:     reservation.Reference,
			RoomID:        reservation.RoomID,
			GuestEmail:    reservation.GuestEmail,
			Total:         reservation.Total,
		}

		if publishErr := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationConfirmed, kafka.Message{
			Key:   reservation.ID,
			Value: event,
		}); publishErr != nil {
			log.Error().Err(publishErr).Msg("failed to publish reservation confirmed event")
		}
	}()

	scope.AddEvent("Reservation confirmed with reference " + reservation.Reference)

	res.FromDraft(draft)

	return res, nil
}

func (s *serviceImpl) toReservation(draft *wizard.Draft) resModel.Reservation {
	quote := draft.Quote()

	return resModel.Reservation{
		ID:              uuid.NewString(),
		Reference:       draft.Reference,
		RoomID:          draft.Room.ID,
		RoomName:        draft.Room.Name,
		GuestName:       draft.Profile.FullName,
		GuestEmail:      draft.Profile.Email,
		GuestPhone:      draft.Profile.Phone,
		GuestAddress:    draft.Profile.Address,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		Guests:          draft.Guests,
		Nights:          quote.Nights,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		Total:           quote.Total,
		PaymentMethod:   string(draft.PaymentMethod),
		SpecialRequests: draft.Profile.SpecialRequests,
		Status:          resModel.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func (s *serviceImpl) loadDraft(ctx context.Context, id string) (*wizard.Draft, error) {
	draft := &wizard.Draft{}

	if err := s.cache.Get(ctx, shared.BuildCacheKey(cacheDraft, id), draft); err != nil {
		return nil, failure.NotFound("booking session not found") // nolint:wrapcheck
	}

	return draft, nil
}

func (s *serviceImpl) saveDraft(ctx context.Context, draft *wizard.Draft) error {
	key := shared.BuildCacheKey(cacheDraft, draft.ID)

	if err := s.cache.Save(ctx, key, draft, s.cfg.Booking.DraftTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save wizard draft")

		return fmt.Errorf("failed to save wizard draft: %w", err)
	}

	return nil
}
