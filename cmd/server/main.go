package main

import (
	"log"
	"os"

	"pricepoint-api/config"
	"pricepoint-api/internal/datapoint"
	"pricepoint-api/internal/logs"
	"pricepoint-api/internal/middlewares"
	"pricepoint-api/internal/provider"
	"pricepoint-api/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&provider.Provider{},
		&datapoint.DataPoint{},
		&settings.Setting{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	corsOrigin := cfg.CORSOrigin
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	r.Use(middlewares.RequestAudit(logService))

	providerService := &provider.ProviderService{DB: db}
	provider.RegisterRoutes(r, providerService)

	dataPointService := &datapoint.DataPointService{DB: db}
	datapoint.RegisterRoutes(r, dataPointService, logService)

	settingsService := &settings.SettingsService{DB: db}
	if err := settingsService.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed settings:", err)
	}
	settings.RegisterRoutes(r, settingsService)

	logs.RegisterRoutes(r, logService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
