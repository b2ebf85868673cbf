/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package interval provides time window parsing and comparison helpers shared
// by the job and fleet validators.
//
// A time window is written in problem documents as a pair of RFC3339
// timestamps:
//
//	"times": [["2020-07-04T09:00:00Z", "2020-07-04T12:00:00Z"]]
//
// ParseWindow turns one such pair into a TimeWindow, failing with a
// *MalformedIntervalError when the pair does not describe start < end.
// Overlaps and Contains never fail; they only answer questions about
// windows that were already parsed.
//
// All functions are pure and safe for concurrent use.
package interval
