package main

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/server"
)

// @title On2Cook Kitchen Scheduling API
// @version 1.0
// @description Backend for the On2Cook demo kitchen: demo request intake,
// @description team/slot placement and recipe media management.

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
