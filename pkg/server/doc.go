// Package server provides the HTTP runtime shared by vrpctl services:
// configuration from the environment, structured error responses, request
// ids, API version negotiation, rate limiting, health and readiness probes,
// Prometheus metrics and graceful shutdown.
package server
