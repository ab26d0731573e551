package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/cycle-phase/docs"
	"github.com/blaisecz/cycle-phase/internal/api/handler"
	"github.com/blaisecz/cycle-phase/internal/api/middleware"
	"github.com/blaisecz/cycle-phase/pkg/problem"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	phaseHandler *handler.PhaseHandler
}

func NewRouter(phaseHandler *handler.PhaseHandler) *Router {
	return &Router{
		phaseHandler: phaseHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)
	r.Use(middleware.Recovery)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.NotFound("No route matches "+r.URL.Path).WithInstance(r.URL.Path).Write(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem.MethodNotAllowed(r.Method+" is not supported for "+r.URL.Path).WithInstance(r.URL.Path).Write(w)
	})

	// Health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, map[string]string{"status": "ok", "message": "Welcome to the Cycle Calculator API!"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Post("/calculate-phase", rt.phaseHandler.Calculate)
		r.Post("/cycle-forecast", rt.phaseHandler.Forecast)
	})

	return r
}

func writeStatus(w http.ResponseWriter, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}
