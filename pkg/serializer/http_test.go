package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusCreated, testConfig{Name: testName, Value: 200})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, MediaTypeJSON, w.Header().Get("Content-Type"))

	var result testConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, testConfig{Name: testName, Value: 200}, result)
}

func TestRespond_YAML(t *testing.T) {
	w := httptest.NewRecorder()

	Respond(w, http.StatusOK, FormatYAML, testConfig{Name: testName, Value: 3})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MediaTypeYAML, w.Header().Get("Content-Type"))

	var result testConfig
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Value)
}

func TestRespondJSON_EncodingErrorDoesNotWritePartialResponse(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	RespondJSON(w, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestNegotiateFormat(t *testing.T) {
	tests := []struct {
		accept string
		want   Format
	}{
		{accept: "", want: FormatJSON},
		{accept: "*/*", want: FormatJSON},
		{accept: "application/yaml", want: FormatYAML},
		{accept: "text/html, application/x-yaml;q=0.9", want: FormatYAML},
		{accept: "application/json, application/yaml", want: FormatJSON},
		{accept: "not a media type", want: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, NegotiateFormat(tt.accept))
		})
	}
}
