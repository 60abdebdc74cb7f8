package schedule

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/config"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/database"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/middleware"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/queue"
	demoRepository "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/demo/repository"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/router"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/schedule/service"
	teamRepository "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/team/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, q queue.Client, mw *middleware.Middleware) service.ScheduleService {
	demoRepo := demoRepository.NewDemoRepository(db)
	teamRepo := teamRepository.NewTeamRepository(db)
	assigner := service.NewMemberAssigner(config.Get().Scheduling.MemberAssignment)

	svc := service.NewScheduleService(demoRepo, teamRepo, assigner, q)
	ctrl := controller.NewScheduleController(svc)
	router.NewScheduleRouter(ctrl).Setup(e, mw)
	return svc
}
