package router

import (
	"slotbook/internal/handlers/catalog"
	"slotbook/internal/handlers/reservation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog     catalog.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
