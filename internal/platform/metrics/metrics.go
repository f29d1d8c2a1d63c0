// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every Folio collector. A dedicated registry keeps tests
// independent of the global default one.
type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SearchSourceErrors  *prometheus.CounterVec
	ContactRelayTotal   *prometheus.CounterVec
	GalleryActions      *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Registry {
	registry := prometheus.NewRegistry()

	metrics := &Registry{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by route, method and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "folio",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SearchSourceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "search_source_errors_total",
			Help:      "Search sources that failed and were left out of a result.",
		}, []string{"source"}),
		ContactRelayTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "contact_relay_total",
			Help:      "Contact form relay attempts by outcome.",
		}, []string{"outcome"}),
		GalleryActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "gallery_actions_total",
			Help:      "Gallery session actions by kind.",
		}, []string{"action"}),
	}

	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		metrics.HTTPRequestsTotal,
		metrics.HTTPRequestDuration,
		metrics.SearchSourceErrors,
		metrics.ContactRelayTotal,
		metrics.GalleryActions,
	)

	return metrics
}

// Handler exposes the registry in the Prometheus text format.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SearchSourceFailed counts a failed search source. Safe on a nil registry.
func (m *Registry) SearchSourceFailed(source string) {
	if m == nil {
		return
	}
	m.SearchSourceErrors.WithLabelValues(source).Inc()
}

// ContactRelayed counts a relay attempt. Safe on a nil registry.
func (m *Registry) ContactRelayed(outcome string) {
	if m == nil {
		return
	}
	m.ContactRelayTotal.WithLabelValues(outcome).Inc()
}

// GalleryAction counts a gallery session action. Safe on a nil registry.
func (m *Registry) GalleryAction(action string) {
	if m == nil {
		return
	}
	m.GalleryActions.WithLabelValues(action).Inc()
}
