package main

import (
	"fmt"
	"os"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedGroups(); err != nil {
		logrus.Panicf("seed groups failed: %v", err)
	}
	if err := configs.SeedManager(
		os.Getenv("MANAGER_USERNAME"),
		os.Getenv("MANAGER_EMAIL"),
		os.Getenv("MANAGER_PASSWORD"),
	); err != nil {
		logrus.Panicf("seed manager failed: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
