package team

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/repository"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/router"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.TeamService {
	repo := repository.NewTeamRepository(db)
	svc := service.NewTeamService(repo)
	ctrl := controller.NewTeamController(svc)
	router.NewTeamRouter(ctrl).Setup(e, mw)
	return svc
}
