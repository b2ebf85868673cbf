package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
	"k8s.io/client-go/kubernetes"
)

// Reader decodes a single JSON or YAML document.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer

	closeOnce sync.Once
	closeErr  error
}

// NewReader creates a Reader over input. Table is not a readable format.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("unsupported input format: %q", format)
	}
	if input == nil {
		return nil, fmt.Errorf("input reader cannot be nil")
	}
	return &Reader{format: format, input: input}, nil
}

// NewFileReader opens path and creates a Reader over it.
func NewFileReader(format Format, path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}

	r, err := NewReader(format, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// OpenDocument returns a Reader for a file path or a cm://namespace/name URI.
// The client is only used for ConfigMap locations; nil selects the default
// client.
func OpenDocument(ctx context.Context, c kubernetes.Interface, location string) (*Reader, error) {
	if strings.HasPrefix(location, ConfigMapURIScheme) {
		return ReadConfigMapDocument(ctx, c, location)
	}
	return NewFileReader(FormatFromPath(location), location)
}

// Deserialize decodes the document into v.
func (r *Reader) Deserialize(v any) error {
	switch r.format {
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize json: %w", err)
		}
	}
	return nil
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		if r.closer != nil {
			r.closeErr = r.closer.Close()
		}
	})
	return r.closeErr
}
