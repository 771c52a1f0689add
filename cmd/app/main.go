package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory/cmd"
	httpadapter "inventory/internal/adapters/in/http"
	"inventory/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(ctx); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}

	e := buildEcho(&app, configs)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}

	// Closing the queue lets the worker drain and exit; StopAll waits for it.
	app.WorkQueue().Close()
	jobManager.StopAll()

	logger.Info("Shutdown complete")
}

func buildEcho(app *cmd.CompositionRoot, configs cmd.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	identityMW := httpadapter.IdentityMiddleware([]byte(configs.JWTSecret))

	app.CreateHTTPServer().RegisterRoutes(e, identityMW)

	wsHandler := app.CreateWSHandler()
	e.GET("/ws/orders", wsHandler.UserOrders, identityMW)
	e.GET("/ws/admin/orders", wsHandler.AdminOrders, identityMW)

	return e
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		ProcessingDelay:         durationVariable("PROCESSING_DELAY_SECONDS", 5*time.Second),
		StuckOrderSweepSchedule: defaultVariable("STUCK_ORDER_SWEEP_SCHEDULE", "0 * * * * *"),
		StuckOrderMaxAge:        durationVariable("STUCK_ORDER_MAX_AGE_SECONDS", 10*time.Minute),
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

func defaultVariable(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}

	seconds, err := time.ParseDuration(v + "s")
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return seconds
}
