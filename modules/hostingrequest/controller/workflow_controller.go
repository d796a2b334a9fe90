package controller

import (
	"meca-api/core/constants"
	"meca-api/core/errors"
	"meca-api/core/middleware"
	"meca-api/core/utils"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	"meca-api/modules/hostingrequest/validator"

	"github.com/labstack/echo/v4"
)

// actingRole clamps the role a caller asks to act as. Plain users are always
// the requestor; directors may also act as requestor; admins may act as anyone.
func actingRole(claims *utils.TokenClaims, requested entity.SenderRole) (entity.SenderRole, bool) {
	switch claims.Role {
	case constants.RoleAdmin:
		if requested == "" {
			return entity.SenderAdmin, true
		}
		return requested, requested.Valid()
	case constants.RoleEventDirector:
		switch requested {
		case "", entity.SenderEventDirector:
			return entity.SenderEventDirector, true
		case entity.SenderRequestor:
			return entity.SenderRequestor, true
		}
		return requested, false
	}
	return entity.SenderRequestor, requested == "" || requested == entity.SenderRequestor
}

// viewerRole never fails: an unknown or disallowed request reads as requestor.
func viewerRole(claims *utils.TokenClaims, requested string) entity.SenderRole {
	role, ok := actingRole(claims, entity.SenderRole(requested))
	if !ok {
		return entity.SenderRequestor
	}
	return role
}

// Assign handles POST /hosting-requests/:id/assign
// @Summary Assign an event director
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.AssignRequest true "Event director profile ID and notes"
// @Success 200 {object} entity.HostingRequest
// @Failure 404 {object} errors.AppError
// @Router /private/hosting-requests/{id}/assign [post]
func (c *HostingRequestController) Assign(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.AssignRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateAssign(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.Assign(ctx.Request().Context(), id, req.EventDirectorID, callerID(claims), req.Notes)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "assign event director success")
}

func (c *HostingRequestController) Reassign(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.ReassignRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateReassign(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.Reassign(ctx.Request().Context(), id, req.NewEventDirectorID, callerID(claims), req.Notes)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "reassign event director success")
}

func (c *HostingRequestController) RevokeAssignment(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.RevokeAssignmentRequest)
	if ctx.Request().ContentLength > 0 {
		if err := ctx.Bind(req); err != nil {
			return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
		}
	}

	updated, appErr := c.service.RevokeAssignment(ctx.Request().Context(), id, callerID(claims), req.Reason)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "revoke assignment success")
}

// EDAccept handles POST /hosting-requests/:id/ed-accept
// @Summary Accept an assignment as event director
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.EDAcceptRequest true "Event director registry ID"
// @Success 200 {object} entity.HostingRequest
// @Failure 400 {object} errors.AppError
// @Router /private/hosting-requests/{id}/ed-accept [post]
func (c *HostingRequestController) EDAccept(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.EDAcceptRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateEDAccept(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.AcceptAssignment(ctx.Request().Context(), id, req.EventDirectorID, callerID(claims))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "assignment accepted")
}

func (c *HostingRequestController) EDReject(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.EDRejectRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateEDReject(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.RejectAssignment(ctx.Request().Context(), id, req.EventDirectorID, callerID(claims), req.Reason)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "assignment rejected")
}

// GetMessages handles GET /hosting-requests/:id/messages
// @Summary List the message thread
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param viewer_role query string false "requestor, event_director or admin"
// @Success 200 {array} entity.RequestMessage
// @Router /private/hosting-requests/{id}/messages [get]
func (c *HostingRequestController) GetMessages(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	r, appErr := c.service.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if !canView(claims, r) {
		return c.Forbidden(errors.ErrForbidden, "You do not have access to this hosting request", nil)
	}

	messages, appErr := c.service.GetMessages(ctx.Request().Context(), id, viewerRole(claims, ctx.QueryParam("viewer_role")))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, messages, "get messages success")
}

// AddMessage handles POST /hosting-requests/:id/messages
// @Summary Post a message
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.AddMessageRequest true "Message"
// @Success 201 {object} entity.RequestMessage
// @Failure 403 {object} errors.AppError
// @Router /private/hosting-requests/{id}/messages [post]
func (c *HostingRequestController) AddMessage(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.AddMessageRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateAddMessage(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	role, ok := actingRole(claims, entity.SenderRole(req.SenderRole))
	if !ok {
		return c.Forbidden(errors.ErrForbidden, "You cannot send messages as "+req.SenderRole, nil)
	}

	r, appErr := c.service.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if !canView(claims, r) {
		return c.Forbidden(errors.ErrForbidden, "You do not have access to this hosting request", nil)
	}

	cmd := &dto.AddMessageCommand{
		RequestID:  id,
		SenderID:   callerID(claims),
		SenderRole: role,
		Message:    req.Message,
		IsPrivate:  req.IsPrivate,
	}
	if req.RecipientType != nil {
		rt := entity.RecipientType(*req.RecipientType)
		cmd.RecipientType = &rt
	}

	msg, appErr := c.service.AddMessage(ctx.Request().Context(), cmd)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, msg, "message sent")
}

// RequestInfo handles POST /hosting-requests/:id/request-info
// @Summary Ask the requestor for more information
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.RequestInfoRequest true "Question"
// @Success 200 {object} entity.HostingRequest
// @Router /private/hosting-requests/{id}/request-info [post]
func (c *HostingRequestController) RequestInfo(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.RequestInfoRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateRequestInfo(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	role, ok := actingRole(claims, entity.SenderRole(req.SenderRole))
	if !ok {
		return c.Forbidden(errors.ErrForbidden, "You cannot request information as "+req.SenderRole, nil)
	}

	updated, appErr := c.service.RequestFurtherInfo(ctx.Request().Context(), id, callerID(claims), role, req.Message)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "information requested")
}

// SetFinalApproval handles POST /hosting-requests/:id/final-approval
// @Summary Record the final decision
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.FinalApprovalRequest true "Decision"
// @Success 200 {object} entity.HostingRequest
// @Router /private/hosting-requests/{id}/final-approval [post]
func (c *HostingRequestController) SetFinalApproval(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.FinalApprovalRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateFinalApproval(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.SetFinalApproval(ctx.Request().Context(), id, callerID(claims), entity.FinalStatus(req.FinalStatus), req.Reason)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "final approval recorded")
}

// CreateEvent handles POST /hosting-requests/:id/create-event
// @Summary Create the event for an approved request
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hosting request ID"
// @Success 201 {object} eventEntity.Event
// @Failure 409 {object} errors.AppError
// @Router /private/hosting-requests/{id}/create-event [post]
func (c *HostingRequestController) CreateEvent(ctx echo.Context) error {
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	event, appErr := c.service.CreateEventFromRequest(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, event, "event created")
}

// RequestorRespond handles POST /hosting-requests/:id/requestor-respond
// @Summary Reply to an information request
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.RequestorRespondRequest true "Reply"
// @Success 200 {object} entity.HostingRequest
// @Failure 400 {object} errors.AppError
// @Router /private/hosting-requests/{id}/requestor-respond [post]
func (c *HostingRequestController) RequestorRespond(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.RequestorRespondRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateRequestorRespond(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.RequestorRespond(ctx.Request().Context(), id, callerID(claims), req.Message)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "response sent")
}
