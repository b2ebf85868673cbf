/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package interval

import (
	"fmt"
	"slices"
	"time"
)

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// String returns the window in RFC3339 form.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// MalformedIntervalError reports a raw pair that cannot be turned into a TimeWindow.
type MalformedIntervalError struct {
	Raw    []string
	Reason string
}

func (e *MalformedIntervalError) Error() string {
	return fmt.Sprintf("malformed interval %q: %s", e.Raw, e.Reason)
}

// ParseWindow parses a pair of RFC3339 timestamps.
// The pair must have exactly two elements and satisfy start < end.
func ParseWindow(raw []string) (TimeWindow, error) {
	if len(raw) != 2 {
		return TimeWindow{}, &MalformedIntervalError{
			Raw:    raw,
			Reason: fmt.Sprintf("expected 2 timestamps, got %d", len(raw)),
		}
	}

	start, err := time.Parse(time.RFC3339, raw[0])
	if err != nil {
		return TimeWindow{}, &MalformedIntervalError{Raw: raw, Reason: fmt.Sprintf("invalid start: %v", err)}
	}

	end, err := time.Parse(time.RFC3339, raw[1])
	if err != nil {
		return TimeWindow{}, &MalformedIntervalError{Raw: raw, Reason: fmt.Sprintf("invalid end: %v", err)}
	}

	if !start.Before(end) {
		return TimeWindow{}, &MalformedIntervalError{Raw: raw, Reason: "start must be before end"}
	}

	return TimeWindow{Start: start, End: end}, nil
}

// ParseWindows parses every pair in raw. Windows that parse are returned in
// input order; the failures are returned alongside so callers can report them
// without losing the rest of the list.
func ParseWindows(raw [][]string) ([]TimeWindow, []error) {
	windows := make([]TimeWindow, 0, len(raw))
	var errs []error
	for _, pair := range raw {
		w, err := ParseWindow(pair)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		windows = append(windows, w)
	}
	return windows, errs
}

// Overlaps reports whether any two windows intersect. The input is not modified.
func Overlaps(windows []TimeWindow) bool {
	if len(windows) < 2 {
		return false
	}

	sorted := slices.Clone(windows)
	slices.SortFunc(sorted, func(a, b TimeWindow) int {
		return a.Start.Compare(b.Start)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Before(sorted[i-1].End) {
			return true
		}
	}
	return false
}

// Contains reports whether inner lies entirely within outer.
func Contains(outer, inner TimeWindow) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}

// StartsWithin reports whether inner lies entirely at or after start.
// It is used for open-ended intervals that have no upper bound.
func StartsWithin(start time.Time, inner TimeWindow) bool {
	return !inner.Start.Before(start)
}
