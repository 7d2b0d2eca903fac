package main

import (
	"context"
	"log"

	"exercise-tracker/internal/config"
	"exercise-tracker/internal/handler"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/server"
	"exercise-tracker/internal/services"
	"exercise-tracker/internal/transport/httpdto"
	"exercise-tracker/pkg/database"
	"exercise-tracker/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loggerMode := logger.DevelopmentMode
	if cfg.Server.Mode == server.ReleaseMode {
		loggerMode = logger.ProductionMode
	}
	l := logger.New(loggerMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	l.Infof("Database connection established")

	userRepo := repository.NewUserRepository(db.DB)
	exerciseRepo := repository.NewExerciseRepository(db.DB)

	userService := services.NewUserService(userRepo)
	exerciseService := services.NewExerciseService(userRepo, exerciseRepo)

	render := httpdto.NewRenderer(cfg.API)
	handlers := &server.Handlers{
		Users:     handler.NewUserHandler(userService, render),
		Exercises: handler.NewExerciseHandler(exerciseService, render),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, db)

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %s", err)
	}

	if err := db.Close(context.Background()); err != nil {
		l.Errorf("Error closing database connection: %s", err)
	}
}
