/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package demand provides helpers for multi-dimensional capacity vectors.
package demand

import "slices"

// Demand is an ordered capacity vector such as [weight, volume].
// A nil Demand means the value was not specified.
type Demand []int

// IsNonNegative reports whether every component of d is >= 0.
func IsNonNegative(d Demand) bool {
	for _, v := range d {
		if v < 0 {
			return false
		}
	}
	return true
}

// Sum adds demands elementwise. Shorter vectors are treated as zero padded
// to the length of the longest one.
func Sum(demands []Demand) Demand {
	size := 0
	for _, d := range demands {
		size = max(size, len(d))
	}

	total := make(Demand, size)
	for _, d := range demands {
		for i, v := range d {
			total[i] += v
		}
	}
	return total
}

// Balanced reports whether the elementwise sums of a and b are equal after
// zero padding.
func Balanced(a, b []Demand) bool {
	left, right := Sum(a), Sum(b)
	size := max(len(left), len(right))
	left = pad(left, size)
	right = pad(right, size)
	return slices.Equal(left, right)
}

func pad(d Demand, size int) Demand {
	if len(d) >= size {
		return d
	}
	padded := make(Demand, size)
	copy(padded, d)
	return padded
}
