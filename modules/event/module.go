package event

import (
	"meca-api/core/database"
	"meca-api/core/middleware"
	"meca-api/modules/event/controller"
	"meca-api/modules/event/repository"
	"meca-api/modules/event/router"
	"meca-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init registers the event routes and returns the service used by hosting requests to materialize events.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(g, mw)

	return svc
}
