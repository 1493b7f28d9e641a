package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"movies-api/internal/dto/response"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"
)

type SystemHandler struct {
	service usecase.SystemService
	log     *zap.Logger
}

func NewSystemHandler(service usecase.SystemService, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		service: service,
		log:     log.With(zap.String("handler", "system")),
	}
}

// Health godoc
// @Summary      Health check
// @Description  Process facts plus a store ping. Responds 503 while the store is unreachable.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Failure      503  {object}  response.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health(r.Context())

	code := http.StatusOK
	if health.Status != usecase.StatusOK {
		code = http.StatusServiceUnavailable
	}
	utils.ResponseJSON(w, code, health)
}

// Info godoc
// @Summary      API information
// @Tags         Info
// @Produce      json
// @Success      200  {object}  response.APIInfoResponse
// @Router       /api [get]
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	utils.ResponseJSON(w, http.StatusOK, response.APIInfoResponse{
		Message: "Welcome to the Movies API",
		Endpoints: response.APIEndpoints{
			Movies:  "/api/movies",
			Health:  "/health",
			Docs:    "/api-docs/",
			Swagger: "/swagger.json",
			Metrics: "/metrics",
		},
	})
}
