package router

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/controller"

	"github.com/labstack/echo/v4"
)

type RecipeRouter struct {
	Controller *controller.RecipeController
}

func NewRecipeRouter(ctrl *controller.RecipeController) *RecipeRouter {
	return &RecipeRouter{Controller: ctrl}
}

func (r *RecipeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	priv := v1.Group("/private", mw.AuthMiddleware())

	recipes := priv.Group("/recipes")
	recipes.GET("", r.Controller.List)
	recipes.POST("/media", r.Controller.UploadMedia)
}
