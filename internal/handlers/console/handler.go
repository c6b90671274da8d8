package console

import (
	"net/http"

	"grandresort/infras/otel"
	"grandresort/permissions"
	"grandresort/shared/constant"
	"grandresort/shared/failure"
	"grandresort/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	permission *permissions.PermissionData
	otel       otel.Otel
}

func New(permission *permissions.PermissionData, otel otel.Otel) Handler {
	return Handler{
		permission: permission,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/console", func(routerGroup chi.Router) {
		routerGroup.Get("/pages", handler.GetPages)
	})
}

// GetPages returns the console pages visible to the caller's role. The
// frontend builds its navigation from this list, so the menu and the route
// guards always agree.
// @Summary Get console pages
// @Description Retrieve the console pages the authenticated role may open, in display order.
// @Tags Console
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]permissions.Page] "Visible console pages"
// @Failure 401 {object} response.Error
// @Router /v1/console/pages [get]
// @Security BearerAuth
func (handler *Handler) GetPages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPages")
	defer scope.End()

	role, ok := ctx.Value(constant.ContextKeyUserRole).(string)
	if !ok || role == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)
		log.Error().Msg("failed to get role from context")

		response.WithError(w, err)

		return
	}

	pages := handler.permission.PagesFor(role)

	response.WithJSON(w, http.StatusOK, pages)
}
