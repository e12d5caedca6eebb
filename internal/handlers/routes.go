package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/strideapp/stride-api/internal/auth"
)

func RegisterRoutes(
	r *chi.Mux,
	authHandler *auth.AuthHandler,
	workoutHandler *WorkoutHandler,
	trophyHandler *TrophyHandler,
	typeHandler *WorkoutTypeHandler,
	keyHandler *DeviceKeyHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Stride API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
		"deviceKey": {
			Type: "apiKey",
			In:   "header",
			Name: "X-Device-Key",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/discord/login", authHandler.HandleLogin)
	r.Get("/auth/discord/callback", authHandler.HandleCallback)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)

		secured := func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}, {"deviceKey": {}}}
		}

		huma.Post(api, "/workouts", workoutHandler.HandleLogWorkout, secured)
		huma.Get(api, "/workouts", workoutHandler.HandleListWorkouts, secured)
		huma.Delete(api, "/workouts/{id}", workoutHandler.HandleDeleteWorkout, secured)
		huma.Get(api, "/calendar/{year}/{month}", workoutHandler.HandleCalendar, secured)
		huma.Get(api, "/stats", workoutHandler.HandleStats, secured)

		huma.Get(api, "/trophies", trophyHandler.HandleListTrophies, secured)
		huma.Get(api, "/trophies/catalog", trophyHandler.HandleCatalog, secured)

		huma.Get(api, "/workout-types", typeHandler.HandleList, secured)
		huma.Put(api, "/workout-types/{slot}", typeHandler.HandleUpsert, secured)

		huma.Post(api, "/keys", keyHandler.HandleCreate, secured)
		huma.Get(api, "/keys", keyHandler.HandleList, secured)
		huma.Delete(api, "/keys/{id}", keyHandler.HandleDelete, secured)
	})
}
