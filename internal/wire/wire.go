package wire

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"movies-api/internal/adaptor"
	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/internal/web"
	"movies-api/pkg/middleware"
	"movies-api/pkg/utils"
)

// App holds the wired dependencies the server needs.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	pages, err := newWebHandler(service, config, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router:  setupRouter(handler, pages, config, logger),
		Service: service,
	}, nil
}

func newWebHandler(service *usecase.Service, config *utils.Config, logger *zap.Logger) (*web.Handler, error) {
	var catalog web.Catalog = web.NewServiceCatalog(service.Movie)
	if config.UI.SampleFallback {
		sample, err := web.NewSampleCatalog(service.Policy, logger)
		if err != nil {
			return nil, fmt.Errorf("wire web: %w", err)
		}
		catalog = web.NewFallbackCatalog(catalog, sample, logger)
	}
	return web.NewHandler(catalog, service.Policy, logger)
}

func setupRouter(
	handler *adaptor.Handler,
	pages *web.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	wireMovie(r, handler.Movie)
	wireSystem(r, handler.System)
	wireDocs(r, logger)
	pages.Routes(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, utils.Response{Message: "Method not allowed"})
	})

	return r
}
