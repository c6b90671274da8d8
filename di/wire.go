//go:build wireinject
// +build wireinject

package di

import (
	"grandresort/config"
	"grandresort/infras/jwt"
	"grandresort/infras/kafka"
	"grandresort/infras/otel"
	"grandresort/infras/postgres"
	"grandresort/infras/redis"
	"grandresort/infras/s3"
	"grandresort/permissions"
	"grandresort/shared/cache"
	"grandresort/transport/http"
	"grandresort/transport/http/middleware"
	"grandresort/transport/http/router"

	"github.com/google/wire"

	authService "grandresort/internal/domains/auth/service"
	bookingGateway "grandresort/internal/domains/booking/gateway"
	bookingService "grandresort/internal/domains/booking/service"
	contentRepository "grandresort/internal/domains/content/repository"
	contentService "grandresort/internal/domains/content/service"
	guestRepository "grandresort/internal/domains/guest/repository"
	guestService "grandresort/internal/domains/guest/service"
	invoiceRepository "grandresort/internal/domains/invoice/repository"
	invoiceService "grandresort/internal/domains/invoice/service"
	paymentRepository "grandresort/internal/domains/payment/repository"
	paymentService "grandresort/internal/domains/payment/service"
	reservationRepository "grandresort/internal/domains/reservation/repository"
	reservationService "grandresort/internal/domains/reservation/service"
	roomRepository "grandresort/internal/domains/room/repository"
	roomService "grandresort/internal/domains/room/service"
	settingsRepository "grandresort/internal/domains/settings/repository"
	settingsService "grandresort/internal/domains/settings/service"
	staffRepository "grandresort/internal/domains/staff/repository"
	staffService "grandresort/internal/domains/staff/service"

	authHandler "grandresort/internal/handlers/auth"
	bookingHandler "grandresort/internal/handlers/booking"
	consoleHandler "grandresort/internal/handlers/console"
	contentHandler "grandresort/internal/handlers/content"
	guestHandler "grandresort/internal/handlers/guest"
	invoiceHandler "grandresort/internal/handlers/invoice"
	paymentHandler "grandresort/internal/handlers/payment"
	reservationHandler "grandresort/internal/handlers/reservation"
	roomHandler "grandresort/internal/handlers/room"
	settingsHandler "grandresort/internal/handlers/settings"
	staffHandler "grandresort/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingGateway.NewSimulated,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	reservationDomain,
	guestDomain,
	paymentDomain,
	invoiceDomain,
	staffDomain,
	authDomain,
	contentDomain,
	settingsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	consoleHandler.New,
	contentHandler.New,
	guestHandler.New,
	invoiceHandler.New,
	paymentHandler.New,
	reservationHandler.New,
	roomHandler.New,
	settingsHandler.New,
	staffHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
