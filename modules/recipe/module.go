package recipe

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/config"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/repository"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/router"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewRecipeRepository(db)
	svc := service.NewRecipeService(repo)
	uploads := service.NewUploadService(config.Get().S3)

	ctrl := controller.NewRecipeController(svc, uploads)
	router.NewRecipeRouter(ctrl).Setup(e, mw)
}
