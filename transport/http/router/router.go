package router

import (
	"net/http"
	"tatzy/config"
	"tatzy/internal/handlers/booking"
	"tatzy/shared/timezone"
	"tatzy/transport/http/middleware"
	"tatzy/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tatzy/docs" // swagger document
)

type DomainHandlers struct {
	Booking booking.Handler
}

type Middlewares struct {
	App   middleware.AppMiddleware
	Admin middleware.Admin
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
	Config         *config.Config
}

// Ready reports whether the process accepts traffic; health turns 503 when it does not.
type Ready func() bool

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type infoResponse struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	Endpoints map[string]any `json:"endpoints"`
}

func (r *Router) SetupRoutes(router chi.Router, ready Ready) {
	app := r.Middlewares.App

	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		app.Tracing,
		app.AccessLog,
		app.SecureHeaders,
		app.CORS(),
	)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})

	router.Get("/health", r.health(ready))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/", r.info)

		r.DomainHandlers.Booking.Router(routerGroup, booking.Guards{
			Intake: app.RateLimit(),
			Admin:  r.Middlewares.Admin.Admin,
		})
	})
}

// Handler builds a standalone mux, used by the serverless entrypoint.
func (r *Router) Handler(ready Ready) http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux, ready)

	return mux
}

// health reports liveness.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} response.Message
// @Router /health [get]
func (r *Router) health(ready Ready) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if ready != nil && !ready() {
			response.WithPreparingShutdown(w)

			return
		}

		response.WithRaw(w, http.StatusOK, healthResponse{
			Status:      "ok",
			Timestamp:   timezone.Now().UTC().Format(time.RFC3339Nano),
			Environment: r.Config.Server.Env,
		})
	}
}

// info lists the public endpoints.
// @Summary API information
// @Tags System
// @Produce json
// @Success 200 {object} infoResponse
// @Router /api [get]
func (r *Router) info(w http.ResponseWriter, _ *http.Request) {
	response.WithRaw(w, http.StatusOK, infoResponse{
		Name:    r.Config.App.Name,
		Version: r.Config.App.Version,
		Endpoints: map[string]any{
			"health": "GET /health",
			"bookings": map[string]string{
				"create": "POST /api/bookings",
				"list":   "GET /api/bookings",
				"get":    "GET /api/bookings/:id",
				"update": "PATCH /api/bookings/:id",
				"delete": "DELETE /api/bookings/:id",
			},
		},
	})
}

func New(domainHandlers DomainHandlers, middlewares Middlewares, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
		Config:         config,
	}
}
