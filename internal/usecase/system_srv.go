package usecase

import (
	"context"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/response"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

type SystemService interface {
	Health(ctx context.Context) *response.HealthResponse
}

type systemService struct {
	repo    repository.MovieRepository
	driver  string
	env     string
	started time.Time
	timeout time.Duration
	log     *zap.Logger
}

func NewSystemService(repo repository.MovieRepository, driver, env string, log *zap.Logger) SystemService {
	return &systemService{
		repo:    repo,
		driver:  driver,
		env:     env,
		started: time.Now(),
		timeout: 2 * time.Second,
		log:     log.With(zap.String("service", "system")),
	}
}

// Health reports process facts and whether the store answers a ping.
func (s *systemService) Health(ctx context.Context) *response.HealthResponse {
	hostname, _ := os.Hostname()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := &response.HealthResponse{
		Status:    StatusOK,
		Timestamp: time.Now().UTC(),
		Hostname:  hostname,
		Uptime:    time.Since(s.started).Seconds(),
		MemoryUsage: response.MemoryUsage{
			Sys:        mem.Sys,
			HeapAlloc:  mem.HeapAlloc,
			HeapSys:    mem.HeapSys,
			StackInUse: mem.StackInuse,
			Goroutines: runtime.NumGoroutine(),
		},
		Environment: s.env,
		Database:    response.Database{Driver: s.driver, Status: "connected"},
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Ping(pingCtx); err != nil {
		s.log.Warn("Store ping failed", zap.Error(err))
		resp.Status = StatusDegraded
		resp.Database.Status = "disconnected"
		resp.Database.Error = err.Error()
	}
	return resp
}
