// Package api serves the operations over JSON HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/true1853/Nykha-bot/internal/app"
	"github.com/true1853/Nykha-bot/internal/constants"
	"github.com/true1853/Nykha-bot/internal/logger"
)

// NewRouter mounts every route on a chi router.
func NewRouter(a *app.App) http.Handler {
	h := NewHandler(a)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(api chi.Router) {
		api.Route("/users/{userID}", func(u chi.Router) {
			u.Put("/", h.TouchUser)
			u.Get("/", h.GetUser)
			u.Put("/location", h.UpdateLocation)
			u.Get("/phase", h.Phase)
			u.Post("/activity", h.MarkDone)
			u.Get("/activity/today", h.Today)
			u.Post("/streak", h.IncrementStreak)
			u.Get("/stats/weekly", h.UserWeekly)
			u.Post("/diary", h.AddDiaryEntry)
			u.Get("/diary", h.ListDiary)
		})
		api.Get("/stats/group", h.GroupWeekly)
		api.Route("/mantras", func(m chi.Router) {
			m.Get("/", h.ListMantras)
			m.Get("/random", h.RandomMantra)
			m.Get("/categories", h.MantraCategories)
			m.Post("/seed", h.SeedMantras)
		})
	})

	return r
}

// Serve runs the HTTP server on addr until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: constants.HTTPReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.HTTPShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
