package problem

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	vrperrors "github.com/vrpkit/vrpctl/pkg/errors"
	"github.com/vrpkit/vrpctl/pkg/serializer"
)

// Matrix is a routing matrix for one profile. Values are stored row major
// over the problem's unique locations.
type Matrix struct {
	Profile     string  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	TravelTimes []int64 `json:"travelTimes" yaml:"travelTimes"`
	Distances   []int64 `json:"distances" yaml:"distances"`
	ErrorCodes  []int64 `json:"errorCodes,omitempty" yaml:"errorCodes,omitempty"`
}

// Dimension returns the number of locations the matrix covers.
func (m *Matrix) Dimension() (int, error) {
	if len(m.TravelTimes) != len(m.Distances) {
		return 0, fmt.Errorf("travelTimes has %d values but distances has %d", len(m.TravelTimes), len(m.Distances))
	}
	if m.ErrorCodes != nil && len(m.ErrorCodes) != len(m.Distances) {
		return 0, fmt.Errorf("errorCodes has %d values but distances has %d", len(m.ErrorCodes), len(m.Distances))
	}
	n := int(math.Sqrt(float64(len(m.Distances))))
	if n*n != len(m.Distances) {
		return 0, fmt.Errorf("%d values do not form a square matrix", len(m.Distances))
	}
	return n, nil
}

// LoadMatrix reads a routing matrix from a file path or cm:// URI. Any
// failure, including a non square matrix, is E0002.
func LoadMatrix(ctx context.Context, location string, opts ...LoadOption) (*Matrix, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	fail := func(err error) error {
		return vrperrors.WrapWithContext(vrperrors.ErrCodeReadMatrix, "cannot read matrix", err,
			map[string]any{"location": location})
	}

	reader, err := serializer.OpenDocument(ctx, o.client, location)
	if err != nil {
		return nil, fail(err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close matrix reader", "error", closeErr)
		}
	}()

	var m Matrix
	if err := reader.Deserialize(&m); err != nil {
		return nil, fail(err)
	}
	n, err := m.Dimension()
	if err != nil {
		return nil, fail(err)
	}

	slog.Debug("loaded matrix", "location", location, "profile", m.Profile, "dimension", n)
	return &m, nil
}

// CheckMatrices verifies that every matrix covers exactly the unique
// locations of p and names a profile known to the fleet. A mismatch is E0002.
func CheckMatrices(p *Problem, matrices []*Matrix) error {
	want := len(UniqueLocations(p))
	profiles := make(map[string]struct{}, len(p.Fleet.Profiles))
	for _, prof := range p.Fleet.Profiles {
		profiles[prof.Name] = struct{}{}
	}

	for i, m := range matrices {
		n, err := m.Dimension()
		if err != nil {
			return vrperrors.WrapWithContext(vrperrors.ErrCodeReadMatrix, "invalid matrix", err,
				map[string]any{"index": i})
		}
		if n != want {
			return vrperrors.WrapWithContext(vrperrors.ErrCodeReadMatrix, "matrix does not match problem locations",
				fmt.Errorf("matrix covers %d locations, problem has %d", n, want),
				map[string]any{"index": i, "profile": m.Profile})
		}
		if m.Profile == "" {
			continue
		}
		if _, ok := profiles[m.Profile]; !ok {
			return vrperrors.WrapWithContext(vrperrors.ErrCodeReadMatrix, "matrix profile is not defined in the fleet",
				fmt.Errorf("unknown profile %q", m.Profile),
				map[string]any{"index": i, "profile": m.Profile})
		}
	}
	return nil
}
