package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/strideapp/stride-api/internal/achievements"
	"github.com/strideapp/stride-api/internal/auth"
	"github.com/strideapp/stride-api/internal/config"
	"github.com/strideapp/stride-api/internal/database"
	"github.com/strideapp/stride-api/internal/handlers"
	"github.com/strideapp/stride-api/internal/notifier"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}

	// Connect to Database
	db := database.Connect(cfg)

	// Achievement pipeline
	calculator := achievements.NewCalculator(database.NewWorkoutStore(db))
	reconciler := achievements.NewReconciler(database.NewAchievementStore(db))

	var trophyNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		trophyNotifier = discordNotifier
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	workoutHandler := handlers.NewWorkoutHandler(db, calculator, reconciler, trophyNotifier, loc)
	trophyHandler := handlers.NewTrophyHandler(db)
	typeHandler := handlers.NewWorkoutTypeHandler(db)
	keyHandler := handlers.NewDeviceKeyHandler(db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, workoutHandler, trophyHandler, typeHandler, keyHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
