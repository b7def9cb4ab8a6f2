package adventure

import (
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/adventure/model"
	"summit/internal/domains/adventure/model/dto"
	"summit/internal/domains/adventure/service"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/validator"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Adventure
	otel    otel.Otel
}

func New(service service.Adventure, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/adventures", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAdventure)
		routerGroup.Get("/", handler.GetAdventures)
		routerGroup.Get("/{id}", handler.GetAdventureByID)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
		routerGroup.Post("/{id}/windows", handler.AddWindow)
		routerGroup.Post("/{id}/blackouts", handler.AddBlackout)
	})

	router.Route("/gear-providers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGearProvider)
		routerGroup.Get("/{id}", handler.GetGearProviderByID)
	})
}

// CreateAdventure publishes a new adventure.
// @Summary Create an adventure
// @Description Providers publish adventures with their pricing rules. Administrators may publish on any provider's behalf.
// @Tags Adventure
// @Accept json
// @Produce json
// @Param request body dto.CreateAdventureRequest true "Create Adventure Request"
// @Success 201 {object} response.Data[dto.AdventureResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/adventures [post]
// @Security BearerAuth
func (handler *Handler) CreateAdventure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdventure")
	defer scope.End()

	req := dto.CreateAdventureRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	adventure, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create adventure")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Adventure created successfully")

	response.WithJSON(w, http.StatusCreated, adventure)
}

// GetAdventures lists adventures.
// @Summary Get adventures
// @Tags Adventure
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param difficulty query string false "Filter by difficulty (easy, moderate, strenuous, extreme)"
// @Param provider_id query string false "Filter by provider ID"
// @Success 200 {object} response.Data[dto.GetAdventuresResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/adventures [get]
func (handler *Handler) GetAdventures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdventures")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldName, model.FieldLocation} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	for _, field := range []string{model.FieldDifficulty, model.FieldProviderID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	adventures, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get adventures")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, adventures)
}

// GetAdventureByID retrieves an adventure by its ID.
// @Summary Get an adventure by ID
// @Tags Adventure
// @Produce json
// @Param id path string true "Adventure ID"
// @Success 200 {object} response.Data[dto.AdventureResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/adventures/{id} [get]
func (handler *Handler) GetAdventureByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdventureByID")
	defer scope.End()

	adventure, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get adventure by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, adventure)
}

// CheckAvailability reports whether a date range can be booked.
// @Summary Check availability
// @Description Blackout dates and closed availability windows make a range unbookable. Dates without a window are open.
// @Tags Adventure
// @Produce json
// @Param id path string true "Adventure ID"
// @Param start_date query string true "First day (YYYY-MM-DD)"
// @Param end_date query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/adventures/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := r.URL.Query()

	availability, err := handler.service.CheckAvailability(
		ctx,
		chi.URLParam(r, constant.RequestParamID),
		query.Get(constant.RequestParamStartDate),
		query.Get(constant.RequestParamEndDate),
	)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

// AddWindow opens or closes a range of days.
// @Summary Add an availability window
// @Tags Adventure
// @Accept json
// @Produce json
// @Param id path string true "Adventure ID"
// @Param request body dto.CreateWindowRequest true "Window"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/adventures/{id}/windows [post]
// @Security BearerAuth
func (handler *Handler) AddWindow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddWindow")
	defer scope.End()

	req := dto.CreateWindowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.AddWindow(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add availability window")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Availability window added successfully")
}

// AddBlackout closes a single day.
// @Summary Add a blackout date
// @Tags Adventure
// @Accept json
// @Produce json
// @Param id path string true "Adventure ID"
// @Param request body dto.CreateBlackoutRequest true "Blackout"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/adventures/{id}/blackouts [post]
// @Security BearerAuth
func (handler *Handler) AddBlackout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBlackout")
	defer scope.End()

	req := dto.CreateBlackoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.AddBlackout(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add blackout date")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Blackout date added successfully")
}

// CreateGearProvider registers a gear rental business.
// @Summary Create a gear provider
// @Tags Gear Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateGearProviderRequest true "Gear provider"
// @Success 201 {object} response.Data[dto.GearProviderResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/gear-providers [post]
// @Security BearerAuth
func (handler *Handler) CreateGearProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGearProvider")
	defer scope.End()

	req := dto.CreateGearProviderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	provider, err := handler.service.CreateGearProvider(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gear provider")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, provider)
}

// GetGearProviderByID retrieves a gear provider.
// @Summary Get a gear provider by ID
// @Tags Gear Provider
// @Produce json
// @Param id path string true "Gear provider ID"
// @Success 200 {object} response.Data[dto.GearProviderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/gear-providers/{id} [get]
func (handler *Handler) GetGearProviderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGearProviderByID")
	defer scope.End()

	provider, err := handler.service.GetGearProvider(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, provider)
}
