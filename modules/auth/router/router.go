package router

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	Controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{Controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", r.Controller.Login)

	priv := v1.Group("/private", mw.AuthMiddleware())
	priv.POST("/auth/logout", r.Controller.Logout)
	priv.GET("/auth/me", r.Controller.Me)
}
