package notification

import (
	"meca-api/core/constants"
	"meca-api/core/database"
	"meca-api/core/middleware"
	"meca-api/core/queue"
	"meca-api/modules/notification/controller"
	"meca-api/modules/notification/repository"
	"meca-api/modules/notification/router"
	"meca-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification routes. When q is non-nil notifications are
// delivered through the worker queue and the task handler is registered on it.
func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, q *queue.Queue) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)

	var svc *service.NotificationService
	if q != nil {
		svc = service.NewNotificationService(repo, q)
		q.Handle(constants.TaskNotificationCreate, svc.HandleCreateTask)
	} else {
		svc = service.NewNotificationService(repo, nil)
	}

	ctrl := controller.NewNotificationController(svc)
	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
