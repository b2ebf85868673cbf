/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vrpctl_validation_duration_seconds",
			Help:    "Time taken to validate a complete problem",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vrpctl_validation_total",
			Help: "Total number of validation runs",
		},
		[]string{"result"}, // valid, invalid or error
	)

	validationRuleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vrpctl_validation_rule_duration_seconds",
			Help:    "Time taken by individual validation rules",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"rule"},
	)

	violationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vrpctl_violations_total",
			Help: "Total number of violations reported, by code",
		},
		[]string{"code"},
	)
)
