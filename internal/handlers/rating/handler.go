package rating

import (
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/rating/service"
	reviewModel "summit/internal/domains/review/model"
	"summit/shared/constant"
	"summit/shared/failure"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rating
	otel    otel.Otel
}

func New(service service.Rating, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ratings/{target_type}/{target_id}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRating)
		routerGroup.Post("/recompute", handler.RecomputeRating)
	})
}

func target(r *http.Request) (reviewModel.Target, error) {
	t, err := reviewModel.NewTarget(chi.URLParam(r, constant.RequestParamTargetType), chi.URLParam(r, constant.RequestParamTargetID))
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	return t, nil
}

// GetRating returns the rating aggregate of a reviewed entity.
// @Summary Get a rating
// @Tags Rating
// @Produce json
// @Param target_type path string true "guide, porter, adventure or gear_provider"
// @Param target_id path string true "Entity ID"
// @Success 200 {object} response.Data[dto.RatingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/ratings/{target_type}/{target_id} [get]
func (handler *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRating")
	defer scope.End()

	t, err := target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rating, err := handler.service.Get(ctx, t)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rating)
}

// RecomputeRating rebuilds a rating from the stored reviews.
// @Summary Recompute a rating
// @Description Administrators only. Used to repair a rating after a lost review event.
// @Tags Rating
// @Produce json
// @Param target_type path string true "guide, porter, adventure or gear_provider"
// @Param target_id path string true "Entity ID"
// @Success 200 {object} response.Data[dto.RatingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/ratings/{target_type}/{target_id}/recompute [post]
// @Security BearerAuth
func (handler *Handler) RecomputeRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecomputeRating")
	defer scope.End()

	t, err := target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rating, err := handler.service.Recompute(ctx, t)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("target", reviewModel.TargetKey(t)).Msg("failed to recompute rating")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rating)
}
