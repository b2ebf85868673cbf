package serializer

// Locations accepted by readers and writers.
const (
	// ConfigMapURIScheme prefixes Kubernetes ConfigMap locations:
	// cm://namespace/configmap-name
	ConfigMapURIScheme = "cm://"

	// StdoutURI writes to stdout.
	StdoutURI = "-"
)

// Media types used on the HTTP surface.
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
	MediaTypeText = "text/plain; charset=utf-8"
)

// FormatFromMediaType maps a bare media type (no parameters) to a document
// format. Table is never negotiated over HTTP.
func FormatFromMediaType(media string) (Format, bool) {
	switch media {
	case MediaTypeJSON:
		return FormatJSON, true
	case MediaTypeYAML, "application/x-yaml", "text/yaml":
		return FormatYAML, true
	default:
		return "", false
	}
}

func mediaTypeOf(f Format) string {
	switch f {
	case FormatYAML:
		return MediaTypeYAML
	case FormatTable:
		return MediaTypeText
	default:
		return MediaTypeJSON
	}
}
