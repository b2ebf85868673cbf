package server

import (
	"net/http"
	"time"

	"github.com/vrpkit/vrpctl/pkg/errors"
	"github.com/vrpkit/vrpctl/pkg/serializer"
)

// Probe states.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Name      string    `json:"name" yaml:"name"`
	Version   string    `json:"version" yaml:"version"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth reports liveness; it succeeds as long as the process serves.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.probe(StatusHealthy, ""))
}

// handleReady reports 503 until SetReady(true).
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if !s.IsReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable,
			s.probe(StatusNotReady, "validator is not accepting requests"))
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.probe(StatusReady, ""))
}

func (s *Server) probe(status, reason string) HealthResponse {
	return HealthResponse{
		Status:    status,
		Name:      s.name,
		Version:   s.version,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	}
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"method not allowed", false, map[string]any{"method": r.Method})
	return false
}
