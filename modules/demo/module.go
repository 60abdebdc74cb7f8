package demo

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/queue"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/repository"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/router"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, q queue.Client, mw *middleware.Middleware) service.DemoService {
	repo := repository.NewDemoRepository(db)
	svc := service.NewDemoService(repo, q)
	ctrl := controller.NewDemoController(svc)
	router.NewDemoRouter(ctrl).Setup(e, mw)
	return svc
}
