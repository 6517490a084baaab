package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"flyweight-registry/internal/handlers"
	"flyweight-registry/internal/metrics"
	"flyweight-registry/internal/middleware"
)

// Options tunes the middleware stack.
type Options struct {
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

func SetupRouter(r *chi.Mux, baseLogger *zap.Logger, carHandler *handlers.CarHandler, opts Options) {
	r.Use(metrics.Middleware)

	// base middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)

	r.Use(middleware.LoggingContext(baseLogger))
	r.Use(middleware.Recoverer())
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.MaxBodySize(opts.MaxBodyBytes))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/cars/render", carHandler.Render)
		r.Get("/flyweights", carHandler.ListFlyweights)
		r.Get("/catalog", carHandler.ListCatalog)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", carHandler.Ready)

	r.Handle("/metrics", metrics.Handler())
}
