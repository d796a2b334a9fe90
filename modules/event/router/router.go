package router

import (
	"meca-api/core/middleware"
	"meca-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events", mw.AuthMiddleware())
	events.GET("/directed", r.controller.GetDirectedEvents)
	events.GET("/:id", r.controller.GetEvent)
}
