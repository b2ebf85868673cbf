package api

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	vrperrors "github.com/vrpkit/vrpctl/pkg/errors"
	"github.com/vrpkit/vrpctl/pkg/header"
	"github.com/vrpkit/vrpctl/pkg/problem"
	"github.com/vrpkit/vrpctl/pkg/serializer"
	"github.com/vrpkit/vrpctl/pkg/server"
	"github.com/vrpkit/vrpctl/pkg/validator"
)

// LocationsKind is the header kind of locations responses.
const LocationsKind = "Locations"

// LocationsResponse lists the unique locations of a problem.
type LocationsResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Locations []problem.Location `json:"locations" yaml:"locations"`
}

// NewLocationsResponse lists the unique locations of p under a header
// stamped with version.
func NewLocationsResponse(p *problem.Problem, version string) *LocationsResponse {
	resp := &LocationsResponse{Locations: problem.UniqueLocations(p)}
	if resp.Locations == nil {
		resp.Locations = []problem.Location{}
	}
	resp.Set(LocationsKind, version)
	return resp
}

// Handler serves the validation API.
type Handler struct {
	validator *validator.Validator
	version   string
}

// NewHandler creates a Handler backed by v.
func NewHandler(v *validator.Validator) *Handler {
	return &Handler{validator: v, version: v.Version}
}

// Routes returns the API routes keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/validate":  h.HandleValidate,
		"/v1/locations": h.HandleLocations,
	}
}

// HandleValidate handles POST /v1/validate. The body is a JSON or YAML
// problem; the response is a validation report in the format named by
// Accept. Semantic violations are
// part of a 200 response, only unreadable problems are errors.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.readProblem(w, r)
	if !ok {
		return
	}

	report, err := h.validator.Report(r.Context(), p)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "validation failed", nil)
		return
	}

	slog.Debug("validated problem",
		"requestId", server.RequestID(r.Context()),
		"runId", report.RunID,
		"violations", report.Summary.Total)

	serializer.Respond(w, http.StatusOK, serializer.NegotiateFormat(r.Header.Get("Accept")), report)
}

// HandleLocations handles POST /v1/locations.
func (h *Handler) HandleLocations(w http.ResponseWriter, r *http.Request) {
	p, ok := h.readProblem(w, r)
	if !ok {
		return
	}

	serializer.Respond(w, http.StatusOK, serializer.NegotiateFormat(r.Header.Get("Accept")),
		NewLocationsResponse(p, h.version))
}

func (h *Handler) readProblem(w http.ResponseWriter, r *http.Request) (*problem.Problem, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, vrperrors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return nil, false
	}

	format, err := formatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		server.WriteError(w, r, http.StatusUnsupportedMediaType, vrperrors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return nil, false
	}

	p, err := problem.FromReader(format, r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, vrperrors.ErrCodeRequestTooLarge,
				"request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return nil, false
		}
		server.WriteErrorFromErr(w, r, err, "cannot read problem", nil)
		return nil, false
	}

	return p, true
}

// formatFromContentType picks the problem encoding. An empty content type
// means JSON.
func formatFromContentType(contentType string) (serializer.Format, error) {
	if contentType == "" {
		return serializer.FormatJSON, nil
	}

	media, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", err
	}

	f, ok := serializer.FormatFromMediaType(media)
	if !ok {
		return "", fmt.Errorf("unsupported content type %q, use %s or %s",
			media, serializer.MediaTypeJSON, serializer.MediaTypeYAML)
	}
	return f, nil
}
