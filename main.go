package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skybooks/config"
	"skybooks/controller"
	"skybooks/database"
	"skybooks/route"
	"skybooks/utils"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Info("Running in debug mode")
	}

	utils.SetJWTSecret(cfg.JWTSecret)
	controller.SetUploadDir(cfg.UploadDir)

	database.InitDatabase(cfg.DatabaseDSN)

	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	route.SkybooksRoutes(router)

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		logrus.Fatalf("Failed to create uploads directory: %v", err)
	}
	router.Static("/uploads", cfg.UploadDir)

	logrus.Infof("Starting server on %s", cfg.Address)
	if err := router.Run(cfg.Address); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
