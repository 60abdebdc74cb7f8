package notification

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/repository"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/router"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	router.NewNotificationRouter(ctrl).Setup(e, mw)
	return svc
}
