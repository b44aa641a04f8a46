package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics agrupa los contadores de peticiones HTTP del panel.
type HTTPMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics crea el registro Prometheus con las métricas de la API
// y los colectores estándar de proceso y runtime Go.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests",
		ConstLabels: prometheus.Labels{"service": serviceName},
	}, []string{"method", "path", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "http_request_duration_seconds",
		Help:        "Duration of HTTP requests in seconds",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: prometheus.Labels{"service": serviceName},
	}, []string{"method", "path", "status"})

	registry.MustRegister(requests, duration)

	return &HTTPMetrics{registry: registry, requests: requests, duration: duration}
}

// Observe registra una petición terminada.
func (m *HTTPMetrics) Observe(method, path string, status int, elapsed time.Duration) {
	code := statusLabel(status)
	m.requests.WithLabelValues(method, path, code).Inc()
	m.duration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Handler expone el endpoint /metrics en formato Prometheus.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
