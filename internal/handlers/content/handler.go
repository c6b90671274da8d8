package content

import (
	"net/http"

	"grandresort/infras/otel"
	"grandresort/internal/domains/content/model"
	"grandresort/internal/domains/content/model/dto"
	"grandresort/internal/domains/content/service"
	"grandresort/shared/constant"
	gDto "grandresort/shared/dto"
	"grandresort/shared/validator"
	"grandresort/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Get("/published", handler.GetPublishedContent)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Post("/", handler.CreateContent)
		routerGroup.Get("/", handler.GetContents)
		routerGroup.Get("/{id}", handler.GetContentByID)
		routerGroup.Patch("/{id}", handler.UpdateContent)
		routerGroup.Delete("/{id}", handler.DeleteContent)
	})
}

// GetPublishedContent returns the published marketing content blocks. Public
// endpoint backing the landing page.
// @Summary Get published content
// @Description Retrieve published content blocks ordered by position.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PublishedContentResponse] "Published content blocks"
// @Failure 500 {object} response.Error
// @Router /v1/content/published [get]
func (handler *Handler) GetPublishedContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublishedContent")
	defer scope.End()

	content, err := handler.service.GetPublished(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get published content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, content)
}

// CreateContent handles the creation of a new content block.
// @Summary Create a new content block
// @Description Create a marketing content block with the provided details.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CreateContentRequest true "Create Content Request"
// @Success 201 {object} response.Message "Content block created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content [post]
// @Security BearerAuth
func (handler *Handler) CreateContent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContent")
	defer scope.End()

	req := dto.CreateContentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create content block")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content block created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Content block created successfully")
}

// GetContents retrieves all content blocks based on query parameters.
// @Summary Get all content blocks
// @Description Retrieve all content blocks with optional filtering and pagination.
// @Tags Content
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param section query string false "Filter by section"
// @Param published query string false "Filter by published flag (true, false)"
// @Success 200 {object} response.Data[dto.GetContentsResponse] "List of content blocks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content [get]
// @Security BearerAuth
func (handler *Handler) GetContents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	section := r.URL.Query().Get(model.FieldSection)
	published := r.URL.Query().Get(model.FieldPublished)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if section != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSection,
			Operator: gDto.FilterOperatorEq,
			Value:    section,
			Table:    model.TableName,
		})
	}

	if published != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    published,
			Table:    model.TableName,
		})
	}

	contents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content blocks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contents)
}

// GetContentByID retrieves a content block by its ID.
// @Summary Get a content block by ID
// @Description Retrieve a content block by its unique identifier.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Data[dto.ContentResponse] "Content block details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	content, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content block by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, content)
}

// UpdateContent updates an existing content block by its ID.
// @Summary Update a content block by ID
// @Description Update the details of an existing content block.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param request body dto.UpdateContentRequest true "Update Content Request"
// @Success 200 {object} response.Message "Content block updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/content/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update content block")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content block updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content block updated successfully")
}

// DeleteContent deletes a content block by its ID.
// @Summary Delete a content block by ID
// @Description Delete a content block and its stored image, if any.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Message "Content block deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete content block")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content block deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content block deleted successfully")
}

// UploadImage stores an image for use in content blocks.
// @Summary Upload a content image
// @Description Upload an image to object storage and return its public URL.
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (JPEG, PNG, or WebP, max 5 MB)"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/content/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	res, err := handler.service.UploadImage(ctx, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
