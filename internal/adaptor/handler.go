package adaptor

import (
	"go.uber.org/zap"

	"movies-api/internal/usecase"
	"movies-api/pkg/utils"
)

type Handler struct {
	Movie  *MovieHandler
	System *SystemHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, service.Policy, config.App.Debug, log),
		System: NewSystemHandler(service.System, log),
	}
}
