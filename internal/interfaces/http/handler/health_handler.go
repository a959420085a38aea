package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/hapkiduki/checkout-go/internal/application/dto"
)

// Pinger checks a dependency; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version   string
	startTime time.Time
	checks    map[string]Pinger
}

// NewHealthHandler creates a HealthHandler. Readiness pings every entry of
// checks; a nil map means the service is always ready.
func NewHealthHandler(version string, startTime time.Time, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, startTime: startTime, checks: checks}
}

// Health reports that the process is up.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.HealthResponse{
		Status:  dto.StatusHealthy,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready pings the dependencies and answers 503 when any of them fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{
		Status:  dto.StatusReady,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	}
	status := http.StatusOK

	if len(h.checks) > 0 {
		resp.Checks = make(map[string]dto.DependencyStatus, len(h.checks))
	}
	for name, p := range h.checks {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		start := time.Now()
		err := p.Ping(ctx)
		cancel()

		result := dto.DependencyStatus{Status: dto.StatusUp, LatencyMS: time.Since(start).Milliseconds()}
		if err != nil {
			result.Status = dto.StatusDown
			result.Message = err.Error()
			resp.Status = dto.StatusNotReady
			status = http.StatusServiceUnavailable
		}
		resp.Checks[name] = result
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
