package router

import (
	"grandresort/internal/handlers/auth"
	"grandresort/internal/handlers/booking"
	"grandresort/internal/handlers/console"
	"grandresort/internal/handlers/content"
	"grandresort/internal/handlers/guest"
	"grandresort/internal/handlers/invoice"
	"grandresort/internal/handlers/payment"
	"grandresort/internal/handlers/reservation"
	"grandresort/internal/handlers/room"
	"grandresort/internal/handlers/settings"
	"grandresort/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Booking     booking.Handler
	Console     console.Handler
	Content     content.Handler
	Guest       guest.Handler
	Invoice     invoice.Handler
	Payment     payment.Handler
	Reservation reservation.Handler
	Room        room.Handler
	Settings    settings.Handler
	Staff       staff.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Console.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
