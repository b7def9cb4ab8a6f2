package review

import (
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/review/model"
	"summit/internal/domains/review/model/dto"
	"summit/internal/domains/review/service"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/validator"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Get("/{id}", handler.GetReviewByID)
		routerGroup.Patch("/{id}", handler.UpdateReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
		routerGroup.Post("/{id}/votes", handler.VoteReview)
	})
}

// SubmitReview stores a review of one party of a completed booking.
// @Summary Submit a review
// @Description Only the booking's customer can review, once per target, after the trip is completed.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.SubmitReviewRequest true "Review"
// @Success 201 {object} response.Data[dto.SubmitReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitReview")
	defer scope.End()

	req := dto.SubmitReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review submitted for " + req.TargetType + " " + req.TargetID)

	response.WithJSON(w, http.StatusCreated, review)
}

// GetReviews lists reviews.
// @Summary Get reviews
// @Tags Review
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param target_type query string false "Filter by target type (guide, porter, adventure, gear_provider)"
// @Param target_id query string false "Filter by target ID"
// @Param booking_id query string false "Filter by booking ID"
// @Param reviewer_id query string false "Filter by reviewer ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldTargetType, model.FieldTargetID, model.FieldBookingID, model.FieldReviewerID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviewByID retrieves a review.
// @Summary Get a review by ID
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reviews/{id} [get]
func (handler *Handler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewByID")
	defer scope.End()

	review, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, review)
}

// UpdateReview edits the caller's own review.
// @Summary Update a review
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Changes"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reviews/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	req := dto.UpdateReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	review, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update review")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, review)
}

// DeleteReview removes a review.
// @Summary Delete a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}

// VoteReview records whether a review was helpful.
// @Summary Vote on a review
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.VoteRequest true "Vote"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reviews/{id}/votes [post]
// @Security BearerAuth
func (handler *Handler) VoteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VoteReview")
	defer scope.End()

	req := dto.VoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	review, err := handler.service.MarkHelpful(ctx, chi.URLParam(r, constant.RequestParamID), *req.Helpful)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, review)
}
