package booking

import (
	"net/http"

	"grandresort/infras/otel"
	"grandresort/internal/domains/booking/model/dto"
	"grandresort/internal/domains/booking/service"
	"grandresort/shared/constant"
	"grandresort/shared/validator"
	"grandresort/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizard", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartWizard)
		routerGroup.Get("/{id}", handler.GetWizard)
		routerGroup.Post("/{id}/advance", handler.Advance)
		routerGroup.Post("/{id}/retreat", handler.Retreat)
		routerGroup.Put("/{id}/room", handler.SelectRoom)
		routerGroup.Put("/{id}/guest", handler.SetGuestProfile)
		routerGroup.Put("/{id}/payment-method", handler.SetPaymentMethod)
		routerGroup.Post("/{id}/confirm", handler.Confirm)
	})
}

// StartWizard opens a new booking session.
// @Summary Start a booking session
// @Description Create a new four-step booking session, optionally seeded with stay dates and guest count.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body dto.StartWizardRequest true "Start Wizard Request"
// @Success 201 {object} response.Data[dto.WizardResponse] "Booking session created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizard [post]
func (handler *Handler) StartWizard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartWizard")
	defer scope.End()

	req := dto.StartWizardRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start booking session")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking session started " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetWizard returns the current state of a booking session.
// @Summary Get a booking session
// @Description Retrieve the current step, selections, and any field errors of a booking session.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking session state"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizard/{id} [get]
func (handler *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWizard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Advance moves a booking session to the next step.
// @Summary Advance a booking session
// @Description Validate the current step and move the session forward. Validation problems are returned per field.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/wizard/{id}/advance [post]
func (handler *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Advance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Advance(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Retreat moves a booking session back one step.
// @Summary Retreat a booking session
// @Description Move the session back one step. Retreating from the first step exits the wizard and discards the session.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking session state"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizard/{id}/retreat [post]
func (handler *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Retreat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Retreat(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to retreat booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SelectRoom records the room choice for a booking session.
// @Summary Select a room
// @Description Attach an available room to the session. The nightly rate is frozen at selection time.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectRoomRequest true "Select Room Request"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizard/{id}/room [put]
func (handler *Handler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SelectRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SelectRoom(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetGuestProfile records guest details for a booking session.
// @Summary Set guest details
// @Description Store the guest profile fields on the session. Field errors are cleared only for fields that changed.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.GuestProfileRequest true "Guest Profile Request"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizard/{id}/guest [put]
func (handler *Handler) SetGuestProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetGuestProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.GuestProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetGuestProfile(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set guest profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetPaymentMethod records the payment method for a booking session.
// @Summary Set payment method
// @Description Choose UPI or CARD for settling the booking.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PaymentMethodRequest true "Payment Method Request"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizard/{id}/payment-method [put]
func (handler *Handler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPaymentMethod")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PaymentMethodRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetPaymentMethod(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set payment method")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Confirm settles the payment and creates the reservation.
// @Summary Confirm a booking
// @Description Settle the payment and create the reservation. Repeating a confirmed session returns the same confirmation.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.WizardResponse] "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizard/{id}/confirm [post]
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Confirm(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed " + res.ID)

	response.WithJSON(w, http.StatusOK, res)
}
