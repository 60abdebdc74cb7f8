package controller

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DemoController struct {
	service service.DemoService
	controller.BaseController
}

func NewDemoController(svc service.DemoService) *DemoController {
	return &DemoController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// List returns all demo requests, paginated
// @Summary List demo requests
// @Tags Demo
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Client or assignee search"
// @Success 200 {object} map[string]interface{}
// @Router /private/demos [get]
func (c *DemoController) List(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	page, appErr := c.service.List(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, page, "Demo requests retrieved successfully")
}

// Create registers a new demo request from sales intake
// @Summary Create demo request
// @Tags Demo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDemoRequest true "Demo request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /private/demos [post]
func (c *DemoController) Create(ctx echo.Context) error {
	req := new(dto.CreateDemoRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.ClientName == "" || req.DemoDate == "" {
		return c.BadRequest(errors.ErrInvalidInput, "client_name and demo_date are required")
	}

	demo, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, demo, "Demo request created successfully")
}

// Unassigned returns the caller's eligible unassigned pool
// @Summary Unassigned demo pool
// @Description Role-filtered list of demo requests that can be placed next
// @Tags Demo
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/demos/unassigned [get]
func (c *DemoController) Unassigned(ctx echo.Context) error {
	claims, err := getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	pool, appErr := c.service.GetUnassignedPool(ctx.Request().Context(), claims.Role, claims.Name)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, pool, "Unassigned pool retrieved successfully")
}

// Update edits client fields, recipes and notes
// @Summary Update demo request
// @Tags Demo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Demo request ID"
// @Param request body dto.UpdateDemoRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /private/demos/{id} [put]
func (c *DemoController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid demo request ID")
	}

	req := new(dto.UpdateDemoRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	demo, appErr := c.service.Update(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, demo, "Demo request updated successfully")
}

// Reschedule moves a planned demo to a new date
// @Summary Reschedule demo request
// @Tags Demo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Demo request ID"
// @Param request body dto.RescheduleDemoRequest true "New date"
// @Success 200 {object} map[string]interface{}
// @Router /private/demos/{id}/reschedule [post]
func (c *DemoController) Reschedule(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid demo request ID")
	}

	req := new(dto.RescheduleDemoRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.DemoDate == "" {
		return c.BadRequest(errors.ErrInvalidInput, "demo_date is required")
	}

	demo, appErr := c.service.Reschedule(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, demo, "Demo request rescheduled successfully")
}

// Cancel marks a demo cancelled
// @Summary Cancel demo request
// @Tags Demo
// @Security BearerAuth
// @Produce json
// @Param id path string true "Demo request ID"
// @Success 200 {object} map[string]interface{}
// @Router /private/demos/{id}/cancel [post]
func (c *DemoController) Cancel(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid demo request ID")
	}

	demo, appErr := c.service.Cancel(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, demo, "Demo request cancelled successfully")
}

// Complete marks a demo as given
// @Summary Complete demo request
// @Tags Demo
// @Security BearerAuth
// @Produce json
// @Param id path string true "Demo request ID"
// @Success 200 {object} map[string]interface{}
// @Router /private/demos/{id}/complete [post]
func (c *DemoController) Complete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid demo request ID")
	}

	demo, appErr := c.service.Complete(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, demo, "Demo request completed successfully")
}

// getClaimsFromContext extracts the parsed JWT claims set by the auth
// middleware.
func getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return nil, errors.New(errors.ErrUnauthorized, "user not authenticated")
	}
	return claims, nil
}
