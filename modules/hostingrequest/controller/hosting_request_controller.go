package controller

import (
	"meca-api/core/constants"
	"meca-api/core/controller"
	"meca-api/core/errors"
	"meca-api/core/middleware"
	"meca-api/core/params"
	"meca-api/core/utils"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	"meca-api/modules/hostingrequest/service"
	"meca-api/modules/hostingrequest/validator"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type HostingRequestController struct {
	controller.BaseController
	service service.HostingRequestServiceInterface
}

func NewHostingRequestController(svc service.HostingRequestServiceInterface) *HostingRequestController {
	return &HostingRequestController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

func (c *HostingRequestController) requestID(ctx echo.Context) (uuid.UUID, error) {
	id := utils.ToUUID(ctx.Param("id"))
	if id == uuid.Nil {
		return uuid.Nil, c.BadRequest(errors.ErrInvalidRequestData, "Invalid hosting request ID", nil)
	}
	return id, nil
}

func profileParam(ctx echo.Context, name string) (profileEntity.ProfileID, bool) {
	id, err := profileEntity.ParseProfileID(ctx.Param(name))
	if err != nil || id.IsZero() {
		return profileEntity.NilProfileID, false
	}
	return id, true
}

func callerID(claims *utils.TokenClaims) profileEntity.ProfileID {
	return profileEntity.ProfileID(claims.UserID)
}

// canView lets admins, the owning user and the assigned director read a request.
func canView(claims *utils.TokenClaims, r *entity.HostingRequest) bool {
	if claims.Role == constants.RoleAdmin {
		return true
	}
	caller := callerID(claims)
	if r.IsOwnedBy(caller) {
		return true
	}
	return r.AssignedEventDirectorID != nil && *r.AssignedEventDirectorID == caller
}

// CreateHostingRequest handles the public intake form
// @Summary Submit a hosting request
// @Tags HostingRequest
// @Accept json
// @Produce json
// @Param request body dto.CreateHostingRequestRequest true "Hosting request"
// @Success 201 {object} entity.HostingRequest
// @Failure 400 {object} errors.AppError
// @Router /public/hosting-requests [post]
func (c *HostingRequestController) CreateHostingRequest(ctx echo.Context) error {
	req := new(dto.CreateHostingRequestRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateCreateHostingRequest(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	created, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, created, "Hosting request submitted successfully")
}

// ListHostingRequests pages over every request
// @Summary List hosting requests
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter"
// @Param search query string false "Search text"
// @Success 200 {object} dto.HostingRequestListResponse
// @Router /private/hosting-requests [get]
func (c *HostingRequestController) ListHostingRequests(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	if queryParams.Status != "" && !entity.RequestStatus(queryParams.Status).Valid() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid status filter", nil)
	}

	result, appErr := c.service.List(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "get hosting requests success")
}

// GetStats handles GET /hosting-requests/stats
// @Summary Hosting request counts by status
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.HostingRequestStats
// @Router /private/hosting-requests/stats [get]
func (c *HostingRequestController) GetStats(ctx echo.Context) error {
	stats, appErr := c.service.GetStats(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, stats, "get stats success")
}

func (c *HostingRequestController) ListAvailableEventDirectors(ctx echo.Context) error {
	profiles, appErr := c.service.ListAvailableEventDirectors(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, profiles, "get event directors success")
}

// ListByEventDirector returns the requests assigned to a director's profile
// @Summary List requests assigned to an event director
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Param edId path string true "Event director profile ID"
// @Param status query string false "Status filter"
// @Success 200 {array} entity.HostingRequest
// @Router /private/hosting-requests/event-director/{edId} [get]
func (c *HostingRequestController) ListByEventDirector(ctx echo.Context) error {
	directorID, ok := profileParam(ctx, "edId")
	if !ok {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event director ID", nil)
	}

	var status *entity.RequestStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		s := entity.RequestStatus(raw)
		status = &s
	}

	items, appErr := c.service.ListByEventDirector(ctx.Request().Context(), directorID, status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, items, "get hosting requests success")
}

func (c *HostingRequestController) GetEventDirectorStats(ctx echo.Context) error {
	directorID, ok := profileParam(ctx, "edId")
	if !ok {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event director ID", nil)
	}

	stats, appErr := c.service.GetEventDirectorStats(ctx.Request().Context(), directorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, stats, "get stats success")
}

// ListByUser returns a user's own requests. Admins may read anyone's.
// @Summary List a user's hosting requests
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User profile ID"
// @Success 200 {array} entity.HostingRequest
// @Failure 403 {object} errors.AppError
// @Router /private/hosting-requests/user/{userId} [get]
func (c *HostingRequestController) ListByUser(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	userID, ok := profileParam(ctx, "userId")
	if !ok {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid user ID", nil)
	}
	if claims.Role != constants.RoleAdmin && callerID(claims) != userID {
		return c.Forbidden(errors.ErrForbidden, "You can only view your own hosting requests", nil)
	}

	items, appErr := c.service.ListByUser(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, items, "get hosting requests success")
}

// GetHostingRequest handles GET /hosting-requests/:id
// @Summary Get a hosting request
// @Tags HostingRequest
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hosting request ID"
// @Success 200 {object} entity.HostingRequest
// @Failure 404 {object} errors.AppError
// @Router /private/hosting-requests/{id} [get]
func (c *HostingRequestController) GetHostingRequest(ctx echo.Context) error {
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
	return c.SuccessResponse(ctx, r, "get hosting request success")
}

// UpdateHostingRequest applies a sparse patch
// @Summary Update a hosting request
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.UpdateHostingRequestRequest true "Fields to change"
// @Success 200 {object} entity.HostingRequest
// @Failure 409 {object} errors.AppError
// @Router /private/hosting-requests/{id} [put]
func (c *HostingRequestController) UpdateHostingRequest(ctx echo.Context) error {
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.UpdateHostingRequestRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateUpdateHostingRequest(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.Update(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "update hosting request success")
}

func (c *HostingRequestController) DeleteHostingRequest(ctx echo.Context) error {
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "delete hosting request success")
}

// Respond handles POST /hosting-requests/:id/respond
// @Summary Respond to a hosting request (single step)
// @Tags HostingRequest
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Hosting request ID"
// @Param request body dto.RespondRequest true "Response"
// @Success 200 {object} entity.HostingRequest
// @Router /private/hosting-requests/{id}/respond [post]
func (c *HostingRequestController) Respond(ctx echo.Context) error {
	claims, appErr := middleware.GetClaims(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	id, err := c.requestID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.RespondRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	if result := validator.ValidateRespond(req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", result)
	}

	updated, appErr := c.service.Respond(ctx.Request().Context(), id, callerID(claims), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, updated, "respond success")
}
