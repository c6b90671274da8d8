package main

import (
	"grandresort/config"
	"grandresort/di"
	"grandresort/shared/logger"
)

// @title Grand Resort API
// @version 1.0
// @description Booking wizard and admin console API for the Grand Resort site.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
