package main

import (
	"time"

	"billing-dashboard-backend/internal/config"
	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on system env")
	}

	db := config.InitDB(logger)

	db.AutoMigrate(
		&models.Invoice{},
		&models.Customer{},
		&models.RevenueRecord{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logger)

	if err := r.Run(":" + config.Port()); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
