package settings

import (
	"net/http"

	"grandresort/infras/otel"
	"grandresort/internal/domains/settings/model/dto"
	"grandresort/internal/domains/settings/service"
	"grandresort/shared/constant"
	"grandresort/shared/validator"
	"grandresort/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Get("/{key}", handler.GetSettingByKey)
		routerGroup.Put("/{key}", handler.UpsertSetting)
	})
}

// GetSettings retrieves all site settings.
// @Summary Get all settings
// @Description Retrieve every site setting, ordered by key.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetSettingsResponse] "List of settings"
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// GetSettingByKey retrieves a single setting by its key.
// @Summary Get a setting by key
// @Description Retrieve a single site setting by its key.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} response.Data[dto.SettingResponse] "Setting value"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [get]
// @Security BearerAuth
func (handler *Handler) GetSettingByKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettingByKey")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	setting, err := handler.service.Get(ctx, key)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get setting by key")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, setting)
}

// UpsertSetting creates or replaces a setting value.
// @Summary Upsert a setting
// @Description Create the setting if it does not exist, otherwise replace its value.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.UpsertSettingRequest true "Upsert Setting Request"
// @Success 200 {object} response.Message "Setting saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [put]
// @Security BearerAuth
func (handler *Handler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSetting")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	req := dto.UpsertSettingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save setting")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Setting " + key + " saved by user " + user)

	response.WithMessage(w, http.StatusOK, "Setting saved successfully")
}
