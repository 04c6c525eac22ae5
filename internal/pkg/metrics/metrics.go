package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iadev_login_attempts_total",
			Help: "Login attempts by result.",
		},
		[]string{"result"},
	)

	AuthorizationDenials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iadev_authorization_denials_total",
			Help: "Requests rejected for a missing capability.",
		},
		[]string{"capability"},
	)

	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iadev_auxiliary_uploads_total",
			Help: "Receipt and photo uploads by kind and result.",
		},
		[]string{"kind", "result"},
	)

	Backups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iadev_backups_total",
			Help: "Dataset backups by trigger and result.",
		},
		[]string{"trigger", "result"},
	)

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(
		LoginAttempts,
		AuthorizationDenials,
		Uploads,
		Backups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler exposes the service registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
