package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vrpkit/vrpctl/pkg/problem"
	"github.com/vrpkit/vrpctl/pkg/server"
	"github.com/vrpkit/vrpctl/pkg/validator"
)

func testdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "problem", "testdata", name))
	require.NoError(t, err)
	return string(data)
}

func newHandler() *Handler {
	return NewHandler(validator.New(validator.WithVersion("v0.0.1")))
}

func TestHandleValidate_Valid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(testdata(t, "problem.json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	newHandler().HandleValidate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var report validator.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Valid)
	assert.Empty(t, report.Violations)
	assert.Equal(t, validator.ReportKind, report.Kind)
	assert.Equal(t, "v0.0.1", report.Metadata["version"])
}

func TestHandleValidate_YAML(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(testdata(t, "problem.yaml")))
	req.Header.Set("Content-Type", "application/yaml")
	req.Header.Set("Accept", "application/yaml")
	w := httptest.NewRecorder()

	newHandler().HandleValidate(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var report validator.Report
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Valid)
}

func TestHandleValidate_Violations(t *testing.T) {
	body := `{
		"plan": {"jobs": [
			{"id": "departure", "services": [{"places": [{"location": {"lat": 1, "lng": 1}, "duration": 1}]}]}
		]},
		"fleet": {"vehicles": [], "profiles": []},
		"objectives": {"primary": [{"type": "minimize-unassigned"}, {"type": "minimize-unassigned"}]}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(body))
	w := httptest.NewRecorder()

	newHandler().HandleValidate(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var report validator.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, []validator.Code{
		validator.CodeReservedJobID,
		validator.CodeEmptyProfiles,
		validator.CodeDuplicateObjective,
		validator.CodeMissingCostObjective,
	}, report.Codes())
}

func TestHandleValidate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{name: "wrong method", method: http.MethodGet, wantStatus: http.StatusMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED"},
		{name: "unsupported media", method: http.MethodPost, contentType: "text/csv", body: "a,b", wantStatus: http.StatusUnsupportedMediaType, wantCode: "INVALID_REQUEST"},
		{name: "not json", method: http.MethodPost, contentType: "application/json", body: "{", wantStatus: http.StatusBadRequest, wantCode: "E0001"},
		{name: "missing jobs", method: http.MethodPost, contentType: "application/json", body: `{"fleet":{"vehicles":[]}}`, wantStatus: http.StatusBadRequest, wantCode: "E0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/validate", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			newHandler().HandleValidate(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestHandleValidate_MethodNotAllowedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	w := httptest.NewRecorder()

	newHandler().HandleValidate(w, req)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestHandleLocations(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/locations", strings.NewReader(testdata(t, "problem.json")))
	w := httptest.NewRecorder()

	newHandler().HandleLocations(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LocationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, LocationsKind, resp.Kind)
	assert.Equal(t, []problem.Location{
		{Lat: 52.52599, Lng: 13.45413},
		{Lat: 52.5165, Lng: 13.3808},
		{Lat: 52.5316, Lng: 13.3884},
	}, resp.Locations)
}

func TestRoutesThroughServer(t *testing.T) {
	s := server.New(server.WithHandler(newHandler().Routes()))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/validate", "application/json", strings.NewReader(testdata(t, "problem.json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(server.HeaderRequestID))
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "json"},
		{in: "application/json; charset=utf-8", want: "json"},
		{in: "application/x-yaml", want: "yaml"},
		{in: "text/plain", wantErr: true},
		{in: ";;", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := formatFromContentType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
