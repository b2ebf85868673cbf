package server

import (
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is used when the client does not ask for a version.
	DefaultAPIVersion = "v1"

	// HeaderAPIVersion reports the negotiated version on every response.
	HeaderAPIVersion = "X-API-Version"

	vendorMediaPrefix = "application/vnd.vrpkit."
)

var supportedAPIVersions = []string{"v1"}

// negotiateAPIVersion reads the version from a vendor media type such as
// "application/vnd.vrpkit.v1+json" and falls back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		media := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if !strings.HasPrefix(media, vendorMediaPrefix) {
			continue
		}
		v := strings.TrimPrefix(media, vendorMediaPrefix)
		v, _, _ = strings.Cut(v, "+")
		if isValidAPIVersion(v) {
			return v
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(v string) bool {
	return slices.Contains(supportedAPIVersions, v)
}
