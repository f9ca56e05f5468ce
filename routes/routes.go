package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/raoldfi/tennis-app-sub001/handlers"
	"github.com/raoldfi/tennis-app-sub001/middleware"
)

// SetupRoutes wires the full HTTP surface. Reads are public; anything that
// mutates league data requires the admin token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	leagueHandler *handlers.LeagueHandler,
	teamHandler *handlers.TeamHandler,
	scheduleHandler *handlers.ScheduleHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Post("/auth/login", authHandler.LoginHandler)

	router.Route("/leagues", func(r chi.Router) {
		r.Get("/", leagueHandler.ListHandler)
		r.Get("/{leagueID}", leagueHandler.GetByIDHandler)
		r.Get("/{leagueID}/full", scheduleHandler.FullDataHandler)
		r.Get("/{leagueID}/teams", teamHandler.ListByLeagueHandler)
		r.Get("/{leagueID}/matches", scheduleHandler.ListMatchesHandler)
		r.Get("/{leagueID}/matches/balance", scheduleHandler.BalanceHandler)
		r.Get("/{leagueID}/matches/export", scheduleHandler.ExportHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/", leagueHandler.CreateHandler)
			r.Patch("/{leagueID}", leagueHandler.UpdateHandler)
			r.Delete("/{leagueID}", leagueHandler.DeleteHandler)
			r.Post("/{leagueID}/teams", teamHandler.CreateHandler)
			r.Post("/{leagueID}/matches/generate", scheduleHandler.GenerateHandler)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", teamHandler.GetByIDHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Patch("/{teamID}", teamHandler.RenameHandler)
			r.Delete("/{teamID}", teamHandler.DeleteHandler)
		})
	})

	router.Get("/ws/leagues/{leagueID}", webSocketHandler.ServeWs)
}
