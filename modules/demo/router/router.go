package router

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/controller"

	"github.com/labstack/echo/v4"
)

type DemoRouter struct {
	Controller *controller.DemoController
}

func NewDemoRouter(ctrl *controller.DemoController) *DemoRouter {
	return &DemoRouter{Controller: ctrl}
}

func (r *DemoRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	priv := v1.Group("/private", mw.AuthMiddleware())

	demos := priv.Group("/demos")
	demos.GET("", r.Controller.List)
	demos.POST("", r.Controller.Create)
	demos.GET("/unassigned", r.Controller.Unassigned)
	demos.PUT("/:id", r.Controller.Update)
	demos.POST("/:id/reschedule", r.Controller.Reschedule)
	demos.POST("/:id/cancel", r.Controller.Cancel)
	demos.POST("/:id/complete", r.Controller.Complete)
}
