package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(context.Background(), configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to hydrate shipment store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		CarrierLatency:       parseLatency(goDotEnvVariable("CARRIER_LATENCY_MS")),
		TrackingSyncSchedule: goDotEnvVariable("TRACKING_SYNC_SCHEDULE"),
	}

	if config.TrackingSyncSchedule == "" {
		config.TrackingSyncSchedule = "*/10 * * * * *"
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func parseLatency(raw string) time.Duration {
	if raw == "" {
		return 0
	}

	ms, err := time.ParseDuration(raw + "ms")
	if err != nil {
		log.Fatalf("Invalid CARRIER_LATENCY_MS value: %v", err)
	}
	return ms
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.TrackingEventDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateScheduleShipmentCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateTrackShipmentQueryHandler(),
		app.CreateGetShipmentStatusQueryHandler(),
		app.CreateGetAllShipmentsQueryHandler(),
		app.CreateGetCarrierOptionsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
