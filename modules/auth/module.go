package auth

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/cache"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/repository"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/router"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and returns the service so the server can build
// the shared auth middleware from it.
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache) (service.AuthServiceInterface, *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	mw := middleware.NewMiddleware(svc)

	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e, mw)
	return svc, mw
}
