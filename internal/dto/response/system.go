package response

import "time"

type HealthResponse struct {
	Status      string      `json:"status" example:"ok"`
	Timestamp   time.Time   `json:"timestamp"`
	Hostname    string      `json:"hostname"`
	Uptime      float64     `json:"uptime" example:"12.5"`
	MemoryUsage MemoryUsage `json:"memoryUsage"`
	Environment string      `json:"environment" example:"development"`
	Database    Database    `json:"database"`
}

// MemoryUsage reports Go runtime memory in bytes.
type MemoryUsage struct {
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	HeapSys    uint64 `json:"heapSys"`
	StackInUse uint64 `json:"stackInUse"`
	Goroutines int    `json:"goroutines"`
}

type Database struct {
	Driver string `json:"driver" example:"mongo"`
	Status string `json:"status" example:"connected"`
	Error  string `json:"error,omitempty"`
}

type APIInfoResponse struct {
	Message   string       `json:"message" example:"Welcome to the Movies API"`
	Endpoints APIEndpoints `json:"endpoints"`
}

type APIEndpoints struct {
	Movies  string `json:"movies" example:"/api/movies"`
	Health  string `json:"health" example:"/health"`
	Docs    string `json:"docs" example:"/api-docs"`
	Swagger string `json:"swagger" example:"/swagger.json"`
	Metrics string `json:"metrics" example:"/metrics"`
}
