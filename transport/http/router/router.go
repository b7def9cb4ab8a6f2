package router

import (
	"summit/internal/handlers/adventure"
	"summit/internal/handlers/booking"
	"summit/internal/handlers/guide"
	"summit/internal/handlers/media"
	"summit/internal/handlers/porter"
	"summit/internal/handlers/rating"
	"summit/internal/handlers/review"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Adventure adventure.Handler
	Guide     guide.Handler
	Porter    porter.Handler
	Booking   booking.Handler
	Review    review.Handler
	Rating    rating.Handler
	Media     media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Adventure.Router(routerGroup)
		r.DomainHandlers.Guide.Router(routerGroup)
		r.DomainHandlers.Porter.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Rating.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
