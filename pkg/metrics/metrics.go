// Package metrics expone instrumentación Prometheus para el panel.
//
// Las llamadas salientes al servicio remoto de inventario se observan por
// operación (list_products, update_user, ...) y resultado (ok | error).
// Registrar una vez en el arranque y montar Handler() en /metrics.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Valores del label outcome.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// RemoteRequestDuration mide la duración de cada llamada saliente al
	// servicio remoto, por operación y resultado.
	RemoteRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "panel",
			Subsystem: "remote",
			Name:      "request_duration_seconds",
			Help:      "Duración de las llamadas al servicio remoto de inventario.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	// RemoteRequestTotal cuenta todas las llamadas salientes.
	RemoteRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "panel",
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Total de llamadas al servicio remoto de inventario.",
		},
		[]string{"operation", "outcome"},
	)
)

var registerOnce sync.Once

// Register registra los colectores en el registry por defecto de Prometheus.
// Es idempotente: llamadas posteriores no tienen efecto.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RemoteRequestDuration, RemoteRequestTotal)
	})
}

// Handler devuelve el handler HTTP que sirve la página de métricas.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRemote registra una llamada saliente completada.
func ObserveRemote(operation, outcome string, started time.Time) {
	elapsed := time.Since(started).Seconds()
	RemoteRequestDuration.WithLabelValues(operation, outcome).Observe(elapsed)
	RemoteRequestTotal.WithLabelValues(operation, outcome).Inc()
}
