package controller

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ScheduleController struct {
	service service.ScheduleService
	controller.BaseController
}

func NewScheduleController(svc service.ScheduleService) *ScheduleController {
	return &ScheduleController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// Grid returns the team/slot board with current occupants
// @Summary Schedule grid
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/schedule/grid [get]
func (c *ScheduleController) Grid(ctx echo.Context) error {
	grid, appErr := c.service.Grid(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, grid, "Schedule grid retrieved successfully")
}

// Place drops a demo request onto a team/slot cell
// @Summary Place demo request
// @Description Validates role, draggability, occupancy and time fit, then
// @Description assigns the demo to the cell and attaches team members
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PlaceRequest true "Placement"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Failure 422 {object} errors.AppError
// @Router /private/schedule/place [post]
func (c *ScheduleController) Place(ctx echo.Context) error {
	claims, err := getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.PlaceRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.RequestID == uuid.Nil || req.Slot == "" {
		return c.BadRequest(errors.ErrInvalidInput, "request_id and slot are required")
	}

	demo, appErr := c.service.Place(ctx.Request().Context(), req, claims)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, demo, "Demo request placed successfully")
}

// ResetRotation clears the round-robin member counters
// @Summary Reset member rotation
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/schedule/rotation/reset [post]
func (c *ScheduleController) ResetRotation(ctx echo.Context) error {
	c.service.ResetRotation()
	return c.SuccessResponse(ctx, nil, "Member rotation reset")
}

func getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return nil, errors.New(errors.ErrUnauthorized, "user not authenticated")
	}
	return claims, nil
}
