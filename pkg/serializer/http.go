package serializer

import (
	"bytes"
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strings"
)

// Respond encodes data in format and writes it with statusCode. The body is
// encoded before any header is written, so an encoding failure still yields
// a clean 500.
func Respond(w http.ResponseWriter, statusCode int, format Format, data any) {
	buf := &bytes.Buffer{}
	if err := NewWriter(format, buf).Serialize(context.Background(), data); err != nil {
		slog.Error("response encoding failed", "format", format, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mediaTypeOf(format))
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// RespondJSON is Respond with FormatJSON.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	Respond(w, statusCode, FormatJSON, data)
}

// NegotiateFormat picks the response format from an Accept header: the
// first listed JSON or YAML media type wins, anything else means JSON.
func NegotiateFormat(accept string) Format {
	for _, part := range strings.Split(accept, ",") {
		media, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if f, ok := FormatFromMediaType(media); ok {
			return f
		}
	}
	return FormatJSON
}
