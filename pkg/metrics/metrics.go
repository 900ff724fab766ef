package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	wizardSessionsActive prometheus.Gauge
	submissionsTotal     *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the central service",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Central service request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		wizardSessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "wizard_sessions_active",
			Help:        "Number of active booking wizard sessions",
			ConstLabels: constLabels,
		}),

		submissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Total number of booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest записывает метрики обработанного HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest записывает метрики запроса к центральному сервису
func (m *Metrics) ObserveUpstreamRequest(operation, outcome string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetActiveSessions обновляет gauge активных сессий мастера бронирования
func (m *Metrics) SetActiveSessions(n int) {
	m.wizardSessionsActive.Set(float64(n))
}

// IncSubmission инкрементирует счётчик отправок бронирования
func (m *Metrics) IncSubmission(outcome string) {
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}
