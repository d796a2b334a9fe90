package controller

import (
	"meca-api/core/controller"
	"meca-api/core/errors"
	"meca-api/core/middleware"
	"meca-api/core/utils"
	"meca-api/modules/event/service"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// GetEvent handles GET /events/:id
// @Summary Get event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	id := utils.ToUUID(ctx.Param("id"))
	if id == uuid.Nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	event, appErr := c.EventService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, event, "get event success")
}

// GetDirectedEvents handles GET /events/directed for the calling event director.
func (c *EventController) GetDirectedEvents(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	events, appErr := c.EventService.ListByEventDirector(ctx.Request().Context(), profileEntity.ProfileID(claims.UserID))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, events, "get events success")
}
