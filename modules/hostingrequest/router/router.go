package router

import (
	"meca-api/core/constants"
	"meca-api/core/middleware"
	"meca-api/modules/hostingrequest/controller"

	"github.com/labstack/echo/v4"
)

type HostingRequestRouter struct {
	controller *controller.HostingRequestController
}

func NewHostingRequestRouter(controller *controller.HostingRequestController) *HostingRequestRouter {
	return &HostingRequestRouter{controller: controller}
}

// Register mounts the intake form on public and everything else on private.
func (r *HostingRequestRouter) Register(public, private *echo.Group, mw *middleware.Middleware) {
	public.POST("/hosting-requests", r.controller.CreateHostingRequest)

	admin := private.Group("/hosting-requests", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	admin.GET("", r.controller.ListHostingRequests)
	admin.GET("/stats", r.controller.GetStats)
	admin.GET("/available-event-directors", r.controller.ListAvailableEventDirectors)
	admin.GET("/event-director/:edId", r.controller.ListByEventDirector)
	admin.GET("/event-director/:edId/stats", r.controller.GetEventDirectorStats)
	admin.PUT("/:id", r.controller.UpdateHostingRequest)
	admin.DELETE("/:id", r.controller.DeleteHostingRequest)
	admin.POST("/:id/respond", r.controller.Respond)
	admin.POST("/:id/assign", r.controller.Assign)
	admin.POST("/:id/reassign", r.controller.Reassign)
	admin.POST("/:id/revoke-assignment", r.controller.RevokeAssignment)
	admin.POST("/:id/final-approval", r.controller.SetFinalApproval)
	admin.POST("/:id/create-event", r.controller.CreateEvent)

	authed := private.Group("/hosting-requests", mw.AuthMiddleware())
	authed.GET("/user/:userId", r.controller.ListByUser)
	authed.GET("/:id", r.controller.GetHostingRequest)
	authed.GET("/:id/messages", r.controller.GetMessages)
	authed.POST("/:id/messages", r.controller.AddMessage)
	authed.POST("/:id/request-info", r.controller.RequestInfo)
	authed.POST("/:id/requestor-respond", r.controller.RequestorRespond)

	director := private.Group("/hosting-requests", mw.AuthMiddleware(), mw.RequireRole(constants.RoleEventDirector, constants.RoleAdmin))
	director.POST("/:id/ed-accept", r.controller.EDAccept)
	director.POST("/:id/ed-reject", r.controller.EDReject)
}
