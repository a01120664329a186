// Package metrics expone los contadores Prometheus del gateway de mutaciones
// y del pipeline de listados.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations cuenta las operaciones del gateway por entidad, operación y resultado.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restoadmin",
		Name:      "gateway_operations_total",
		Help:      "Operaciones del gateway de mutaciones por entidad, operación y resultado.",
	}, []string{"entity", "operation", "outcome"})

	// ListDuration mide la duración de las consultas de listado por entidad.
	ListDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "restoadmin",
		Name:      "list_query_duration_seconds",
		Help:      "Duración del pipeline filtrar/ordenar/paginar por entidad.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"entity"})

	// HTTPRequests cuenta las peticiones HTTP por método, ruta y código.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restoadmin",
		Name:      "http_requests_total",
		Help:      "Peticiones HTTP atendidas por método, ruta y estado.",
	}, []string{"method", "path", "status"})
)

// RecordOp registra una operación del gateway. outcome: "ok" | "error".
func RecordOp(entity, op string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	Mutations.WithLabelValues(entity, op, outcome).Inc()
}
