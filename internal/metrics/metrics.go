// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the marketplace server.
// Collectors are registered in the default registry on package init and
// exposed by [Handler].
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth decision outcomes, used as the "outcome" label of AuthDecisionsTotal.
const (
	OutcomeAuthenticated     = "authenticated"
	OutcomeMissingCredential = "missing_credential"
	OutcomeMalformedHeader   = "malformed_header"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeAuthorized        = "authorized"
	OutcomeForbidden         = "forbidden"
)

var (
	// AuthDecisionsTotal counts gate and role policy decisions by outcome.
	AuthDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_auth_decisions_total",
			Help: "Authentication and authorization decisions",
		},
		[]string{"outcome"},
	)

	// RequestsTotal counts HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		AuthDecisionsTotal,
		RequestsTotal,
		RequestDuration,
	)
}

// RecordAuthDecision increments the counter for outcome.
func RecordAuthDecision(outcome string) {
	AuthDecisionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one finished HTTP request. status is reduced to its
// class ("2xx", "4xx", ...).
func ObserveRequest(method string, status int, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(method, StatusClass(status)).Inc()
	RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// StatusClass returns "2xx" for 200..299 and so on.
func StatusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
