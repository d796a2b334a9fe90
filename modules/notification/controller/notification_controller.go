package controller

import (
	"meca-api/core/controller"
	"meca-api/core/errors"
	"meca-api/core/middleware"
	"meca-api/core/params"
	"meca-api/core/utils"
	"meca-api/core/validator"
	"meca-api/modules/notification/dto"
	"meca-api/modules/notification/service"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service *service.NotificationService
	controller.BaseController
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetMyNotifications retrieves the caller's notifications
// @Summary List notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /private/notifications [get]
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	queryParams := params.NewQueryParams(ctx)
	result, getErr := c.service.GetMyNotifications(ctx.Request().Context(), userID, *queryParams)
	if getErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get notifications", nil)
	}

	return c.SuccessResponse(ctx, result, "Notifications retrieved successfully")
}

// MarkAsRead marks specific notifications as read
// @Summary Mark notifications read
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MarkAsReadRequest true "Notification IDs"
// @Success 200 {object} map[string]string
// @Router /private/notifications/mark-read [put]
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	req := new(dto.MarkAsReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.Struct(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), userID, req.IDs); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark as read", nil)
	}

	return c.SuccessResponse(ctx, nil, "Marked as read successfully")
}

// MarkAllAsRead marks all of the caller's notifications as read
// @Router /private/notifications/mark-all-read [put]
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), userID); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark all as read", nil)
	}

	return c.SuccessResponse(ctx, nil, "Marked all as read successfully")
}

// CountUnread counts unread notifications
// @Router /private/notifications/unread-count [get]
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	count, countErr := c.service.CountUnread(ctx.Request().Context(), userID)
	if countErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to count unread", nil)
	}

	return c.SuccessResponse(ctx, map[string]int{"count": count}, "Unread count retrieved")
}

// GetForHostingRequest lists the caller's notifications about one hosting request
// @Router /private/notifications/hosting-requests/{requestId} [get]
func (c *NotificationController) GetForHostingRequest(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	requestID := utils.ToUUID(ctx.Param("requestId"))
	if requestID == uuid.Nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid hosting request ID", nil)
	}

	items, listErr := c.service.GetForHostingRequest(ctx.Request().Context(), userID, requestID)
	if listErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get notifications", nil)
	}

	return c.SuccessResponse(ctx, items, "Notifications retrieved successfully")
}

// MarkHostingRequestRead marks the caller's notifications about one hosting request as read
// @Router /private/notifications/hosting-requests/{requestId}/mark-read [put]
func (c *NotificationController) MarkHostingRequestRead(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	requestID := utils.ToUUID(ctx.Param("requestId"))
	if requestID == uuid.Nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid hosting request ID", nil)
	}

	updated, markErr := c.service.MarkHostingRequestRead(ctx.Request().Context(), userID, requestID)
	if markErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark as read", nil)
	}

	return c.SuccessResponse(ctx, map[string]int64{"updated": updated}, "Marked as read successfully")
}

func callerID(ctx echo.Context) (profileEntity.ProfileID, error) {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return profileEntity.NilProfileID, appErr
	}
	return profileEntity.ProfileID(claims.UserID), nil
}
