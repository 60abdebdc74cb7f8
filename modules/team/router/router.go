package router

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/controller"

	"github.com/labstack/echo/v4"
)

type TeamRouter struct {
	Controller *controller.TeamController
}

func NewTeamRouter(ctrl *controller.TeamController) *TeamRouter {
	return &TeamRouter{Controller: ctrl}
}

func (r *TeamRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	priv := v1.Group("/private", mw.AuthMiddleware())

	teams := priv.Group("/teams")
	teams.GET("", r.Controller.List)
	// roster edits are an administrative side-concern
	teams.PUT("/:id/members", r.Controller.UpdateMembers, mw.RequireRoles(constants.RoleAdmin, constants.RoleHeadChef))
}
