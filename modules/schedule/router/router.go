package router

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	Controller *controller.ScheduleController
}

func NewScheduleRouter(ctrl *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{Controller: ctrl}
}

func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	priv := v1.Group("/private", mw.AuthMiddleware())

	sched := priv.Group("/schedule")
	sched.GET("/grid", r.Controller.Grid)
	sched.POST("/place", r.Controller.Place)
	sched.POST("/rotation/reset", r.Controller.ResetRotation,
		mw.RequireRoles(constants.RoleAdmin, constants.RoleHeadChef))
}
