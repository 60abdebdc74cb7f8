package controller

import (
	"strconv"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/dto"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/service"

	"github.com/labstack/echo/v4"
)

type TeamController struct {
	service service.TeamService
	controller.BaseController
}

func NewTeamController(svc service.TeamService) *TeamController {
	return &TeamController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// List returns all kitchen teams with their rosters
// @Summary List teams
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /private/teams [get]
func (c *TeamController) List(ctx echo.Context) error {
	teams, appErr := c.service.GetAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, teams, "Teams retrieved successfully")
}

// UpdateMembers replaces a team roster
// @Summary Update team roster
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body dto.UpdateMembersRequest true "New roster"
// @Success 200 {object} map[string]interface{}
// @Router /private/teams/{id}/members [put]
func (c *TeamController) UpdateMembers(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid team ID")
	}

	req := new(dto.UpdateMembersRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	team, appErr := c.service.UpdateMembers(ctx.Request().Context(), id, req.Members)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, team, "Team roster updated successfully")
}
