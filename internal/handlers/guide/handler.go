package guide

import (
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/guide/model"
	"summit/internal/domains/guide/model/dto"
	"summit/internal/domains/guide/service"
	"summit/shared"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/validator"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guide
	otel    otel.Otel
}

func New(service service.Guide, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guides", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterGuide)
		routerGroup.Get("/", handler.GetGuides)
		routerGroup.Get("/{id}", handler.GetGuideByID)
	})
}

// RegisterGuide creates the guide profile of the calling account.
// @Summary Register as a guide
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body dto.RegisterGuideRequest true "Guide profile"
// @Success 201 {object} response.Data[dto.GuideResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/guides [post]
// @Security BearerAuth
func (handler *Handler) RegisterGuide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterGuide")
	defer scope.End()

	req := dto.RegisterGuideRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guide, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register guide")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide registered " + guide.ID)

	response.WithJSON(w, http.StatusCreated, guide)
}

// GetGuides lists guides.
// @Summary Get guides
// @Tags Guide
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param available query bool false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetGuidesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides [get]
func (handler *Handler) GetGuides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := query.Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(query.Get(model.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	guides, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guides")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guides)
}

// GetGuideByID retrieves a guide profile.
// @Summary Get a guide by ID
// @Tags Guide
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.Data[dto.GuideResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guides/{id} [get]
func (handler *Handler) GetGuideByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuideByID")
	defer scope.End()

	guide, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guide)
}
