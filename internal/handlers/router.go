package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"wordnote/internal/config"
	"wordnote/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const requestTimeout = 60 * time.Second

// Handlers はルーターに載せるハンドラ一式
type Handlers struct {
	Auth      *AuthHandler
	Word      *WordHandler
	List      *ListHandler
	Flashcard *FlashcardHandler
	Reminder  *ReminderHandler
	Health    *HealthHandler
}

// NewRouter はミドルウェアとルートを組み立てます
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(requestTimeout))
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				logger.Warn("Authentication is disabled. Using X-Tenant-ID header (development only)")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			// SSE を含むので Timeout は付けない
			r.Mount("/list", h.List.Routes())

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.Timeout(requestTimeout))

				r.Get("/auth/me", h.Auth.GetMe)

				r.Route("/words", func(r chi.Router) {
					r.Post("/", h.Word.PostWord)
					r.Get("/", h.Word.GetWords)
					r.Get("/{word_id}", h.Word.GetWord)
					r.Put("/{word_id}", h.Word.PutWord)
					r.Patch("/{word_id}", h.Word.PatchWord)
					r.Delete("/{word_id}", h.Word.DeleteWord)
				})

				r.Route("/flashcards", func(r chi.Router) {
					r.Get("/", h.Flashcard.GetFlashcards)
					r.Put("/{word_id}/result", h.Flashcard.SubmitResult)
				})

				r.Route("/reminders", func(r chi.Router) {
					r.Get("/settings", h.Reminder.GetSettings)
					r.Put("/settings", h.Reminder.PutSettings)
					r.Get("/next", h.Reminder.NextTriggers)
				})
			})
		})
	})

	return r
}
