/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{"without cause", New(ErrCodeReadConfig, "cannot read config"), "[E0004] cannot read config"},
		{"with cause", Wrap(ErrCodeReadProblem, "cannot read problem", stderrors.New("no such file")), "[E0000] cannot read problem: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_UnwrapAndAs(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := fmt.Errorf("loading: %w", WrapWithContext(ErrCodeDecodeProblem, "cannot deserialize problem", cause, map[string]any{"path": "p.json"}))

	var se *StructuredError
	if !stderrors.As(err, &se) {
		t.Fatalf("expected StructuredError, got %T", err)
	}
	if se.Code != ErrCodeDecodeProblem {
		t.Fatalf("expected code %s, got %s", ErrCodeDecodeProblem, se.Code)
	}
	if se.Context["path"] != "p.json" {
		t.Fatalf("expected path context, got %#v", se.Context)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
}
