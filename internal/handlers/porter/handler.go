package porter

import (
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/porter/model"
	"summit/internal/domains/porter/model/dto"
	"summit/internal/domains/porter/service"
	"summit/shared"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/validator"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Porter
	otel    otel.Otel
}

func New(service service.Porter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/porters", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterPorter)
		routerGroup.Get("/", handler.GetPorters)
		routerGroup.Get("/{id}", handler.GetPorterByID)
	})
}

// RegisterPorter creates the porter profile of the calling account.
// @Summary Register as a porter
// @Tags Porter
// @Accept json
// @Produce json
// @Param request body dto.RegisterPorterRequest true "Porter profile"
// @Success 201 {object} response.Data[dto.PorterResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/porters [post]
// @Security BearerAuth
func (handler *Handler) RegisterPorter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterPorter")
	defer scope.End()

	req := dto.RegisterPorterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	porter, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register porter")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Porter registered " + porter.ID)

	response.WithJSON(w, http.StatusCreated, porter)
}

// GetPorters lists porters.
// @Summary Get porters
// @Tags Porter
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param available query bool false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetPortersResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/porters [get]
func (handler *Handler) GetPorters(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPorters")
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

	porters, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get porters")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, porters)
}

// GetPorterByID retrieves a porter profile.
// @Summary Get a porter by ID
// @Tags Porter
// @Produce json
// @Param id path string true "Porter ID"
// @Success 200 {object} response.Data[dto.PorterResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/porters/{id} [get]
func (handler *Handler) GetPorterByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPorterByID")
	defer scope.End()

	porter, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get porter by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, porter)
}
