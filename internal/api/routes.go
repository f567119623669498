package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yegors/takeoff/internal/config"
	"github.com/yegors/takeoff/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	config     *config.Config
}

// NewRouter creates a new API router
func NewRouter(config *config.Config, logger *logger.Logger) *Router {
	return &Router{
		handler:    NewHandler(config, logger),
		middleware: NewMiddleware(logger),
		config:     config,
	}
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(r.middleware.CORS(r.config.Server.CORSAllowedOrigins))

	router.Route("/api/v1", func(router chi.Router) {
		router.Get("/health", r.handler.GetHealth)

		router.Get("/aircraft", r.handler.GetAllAircraft)
		router.Get("/aircraft/{name}/takeoff", r.handler.GetAircraftTakeOff)

		router.Post("/takeoff", r.handler.ComputeTakeOff)
	})

	return router
}
