/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks the semantic consistency of routing problems.
//
// # Overview
//
// A problem that decodes cleanly can still be unsolvable or ambiguous: job ids
// may repeat, relations may reference unknown vehicles, shifts may end before
// they start. The validator runs one rule per problem area and reports every
// violation it finds instead of stopping at the first one.
//
// # Rules
//
// The built-in rules run in this reporting order:
//   - jobs (E1100-E1107)
//   - relations (E1200-E1204)
//   - vehicles (E1300-E1305)
//   - profiles (E1500-E1501)
//   - objectives (E1600, E1610, E1611)
//
// Rules run concurrently but their results are always merged in the order
// above, so the output for a given problem is deterministic.
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version))
//	report, err := v.Report(ctx, p)
//	if err != nil {
//	    return err
//	}
//	for _, violation := range report.Violations {
//	    fmt.Println(violation)
//	}
//
// Validate returns the bare violation list when no envelope is needed.
// A valid problem yields an empty list.
package validator
