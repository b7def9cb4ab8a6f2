package booking

import (
	"context"
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/booking/model"
	"summit/internal/domains/booking/model/dto"
	"summit/internal/domains/booking/service"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/validator"
	"summit/transport/http/response"

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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/number/{number}", handler.GetBookingByNumber)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{id}/start", handler.StartBooking)
		routerGroup.Post("/{id}/progress", handler.RecordProgress)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)
		routerGroup.Get("/{id}/cancellation", handler.GetCancellationEligibility)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/payments", handler.RecordPayment)
		routerGroup.Post("/{id}/refund", handler.RefundBooking)
	})
}

// CreateBooking handles a booking request.
// @Summary Request a booking
// @Description Price and reserve an adventure for a group. The booking starts as pending with a unique booking number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + booking.BookingNumber + " created")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings lists bookings visible to the caller.
// @Summary Get bookings
// @Description Administrators see every booking. Everyone else sees the bookings they are a party to.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, in_progress, completed, cancelled, refunded)"
// @Param adventure_id query string false "Filter by adventure ID"
// @Param customer_id query string false "Filter by customer ID"
// @Param start_date query string false "Trips starting on or after (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldAdventureID, model.FieldCustomerID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if startDate := query.Get(constant.RequestParamStartDate); startDate != "" {
		if err := validator.ValidateVar(startDate, "date"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStartDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    startDate,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingByNumber retrieves a booking by its human readable number.
// @Summary Get a booking by number
// @Tags Booking
// @Produce json
// @Param number path string true "Booking number, e.g. BK-2026-000042"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/number/{number} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByNumber")
	defer scope.End()

	booking, err := handler.service.GetByNumber(ctx, chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by number")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// ConfirmBooking confirms a pending booking.
// @Summary Confirm a booking
// @Description The assigned guide or porter, or an administrator, accepts a pending booking.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ConfirmBooking", handler.service.Confirm)
}

// StartBooking marks a confirmed trip as underway.
// @Summary Start a trip
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "StartBooking", handler.service.Start)
}

// CompleteBooking closes a trip that is underway.
// @Summary Complete a trip
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CompleteBooking", handler.service.Complete)
}

// RecordProgress appends a milestone or daily report to a trip.
// @Summary Record trip progress
// @Description The first update on a confirmed booking moves it to in_progress.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RecordProgressRequest true "Progress update"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/progress [post]
// @Security BearerAuth
func (handler *Handler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordProgress")
	defer scope.End()

	req := dto.RecordProgressRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.RecordProgress(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record progress")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetCancellationEligibility previews what cancelling now would mean.
// @Summary Preview cancellation
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.EligibilityResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/cancellation [get]
// @Security BearerAuth
func (handler *Handler) GetCancellationEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCancellationEligibility")
	defer scope.End()

	eligibility, err := handler.service.CancellationEligibility(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, eligibility)
}

// CancelBooking cancels a booking and records the refund it is owed.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancellation"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + booking.BookingNumber + " cancelled by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// RecordPayment records money received for a booking.
// @Summary Record a payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	req := dto.RecordPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.RecordPayment(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// RefundBooking settles the refund of a cancelled or completed booking.
// @Summary Refund a booking
// @Description Administrators only. An amount of 0 refunds what the cancellation granted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RefundBookingRequest true "Refund"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/refund [post]
// @Security BearerAuth
func (handler *Handler) RefundBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefundBooking")
	defer scope.End()

	req := dto.RefundBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Refund(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refund booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	apply func(ctx context.Context, id string) (dto.BookingResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	booking, err := apply(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("handler", name).Msg("failed to change booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + booking.BookingNumber + " is now " + booking.Status)

	response.WithJSON(w, http.StatusOK, booking)
}
