package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"movies-api/docs"
	"movies-api/internal/adaptor"
	"movies-api/pkg/middleware"
)

func wireSystem(r chi.Router, systemHandler *adaptor.SystemHandler) {
	r.Get("/api", systemHandler.Info)
	r.Get("/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())
}

// wireDocs serves the OpenAPI document and the Swagger UI reading it.
func wireDocs(r chi.Router, logger *zap.Logger) {
	r.Get("/swagger.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if _, err := w.Write([]byte(docs.SwaggerInfo.ReadDoc())); err != nil {
			logger.Warn("Failed to write swagger document", zap.Error(err))
		}
	})

	r.Get("/api-docs", http.RedirectHandler("/api-docs/", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/api-docs/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger.json"),
	))
}
