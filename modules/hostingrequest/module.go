package hostingrequest

import (
	"time"

	"meca-api/core/cache"
	"meca-api/core/database"
	"meca-api/core/middleware"
	"meca-api/core/storage"
	"meca-api/modules/hostingrequest/controller"
	"meca-api/modules/hostingrequest/repository"
	"meca-api/modules/hostingrequest/router"
	"meca-api/modules/hostingrequest/service"
	profileService "meca-api/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Options carries the collaborators the workflow depends on. Cache may be nil.
type Options struct {
	Profiles profileService.ProfileServiceInterface
	Events   service.EventCreator
	Notifier service.Notifier
	Cache    cache.Cache
	Archiver storage.Archiver
	StatsTTL time.Duration
}

func Init(public, private *echo.Group, db database.Database, mw *middleware.Middleware, opts Options) *service.HostingRequestService {
	svc := service.NewHostingRequestService(service.Dependencies{
		Repo:     repository.NewHostingRequestRepository(db),
		Messages: repository.NewMessageRepository(db),
		Tx:       &db,
		Profiles: opts.Profiles,
		Events:   opts.Events,
		Notifier: opts.Notifier,
		Cache:    opts.Cache,
		Archiver: opts.Archiver,
		StatsTTL: opts.StatsTTL,
	})

	ctrl := controller.NewHostingRequestController(svc)
	router.NewHostingRequestRouter(ctrl).Register(public, private, mw)

	return svc
}
