/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"
)

// Violation is a single semantic problem found in a problem definition.
type Violation struct {
	// Code is the stable violation code.
	Code Code `json:"code" yaml:"code"`

	// Message is a human readable explanation.
	Message string `json:"message" yaml:"message"`

	// Subject identifies the offending entity: a job id, relation index,
	// vehicle type id, profile name or objective type.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Context holds code specific details.
	Context map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
}

// String returns "<code>: <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

func newViolation(code Code, subject, format string, args ...any) Violation {
	return Violation{
		Code:    code,
		Subject: subject,
		Message: fmt.Sprintf("%s: %s", code.Description(), fmt.Sprintf(format, args...)),
	}
}

func (v Violation) with(key string, value any) Violation {
	if v.Context == nil {
		v.Context = make(map[string]any)
	}
	v.Context[key] = value
	return v
}

// quoteList renders ids as 'a', 'b'.
func quoteList(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + id + "'"
	}
	return strings.Join(quoted, ", ")
}

// CodesOf returns the codes of vs in order.
func CodesOf(vs []Violation) []Code {
	codes := make([]Code, len(vs))
	for i, v := range vs {
		codes[i] = v.Code
	}
	return codes
}
