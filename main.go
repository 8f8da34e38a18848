package main

import (
	"fmt"
	"os"

	"event-feedback-service/config"
	"event-feedback-service/models"
	"event-feedback-service/routes"
	"event-feedback-service/services"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		config.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := autoMigrate(db); err != nil {
		config.Error("database migration failed: %v", err)
		os.Exit(1)
	}

	// Seed a default admin account so role toggles are reachable on a
	// fresh install
	userService := services.NewUserService(db, cfg)
	if err := userService.EnsureAdmin(); err != nil {
		config.Error("failed to ensure admin account: %v", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	config.Info("server listening on http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB opens the database connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// autoMigrate migrates all models
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Speaker{},
		&models.Event{},
		&models.Survey{},
		&models.Comment{},
	)
}
