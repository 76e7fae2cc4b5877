package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
// Покрывает входящие HTTP запросы и исходящие вызовы внешних сервисов
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	outboundRequestsTotal   *prometheus.CounterVec
	outboundRequestDuration *prometheus.HistogramVec
	outboundInFlight        *prometheus.GaugeVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		outboundRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "outbound_requests_total",
			Help:        "Total number of outbound requests to external services",
			ConstLabels: labels,
		}, []string{"target", "method", "status"}),

		outboundRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "outbound_request_duration_seconds",
			Help:        "Outbound request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),

		outboundInFlight: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "outbound_requests_in_flight",
			Help:        "Number of outbound requests currently in flight",
			ConstLabels: labels,
		}, []string{"target"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveOutboundRequest фиксирует исходящий запрос к внешнему сервису
func (m *Metrics) ObserveOutboundRequest(target, method, status string, duration time.Duration) {
	m.outboundRequestsTotal.WithLabelValues(target, method, status).Inc()
	m.outboundRequestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}

// OutboundStarted увеличивает счётчик исходящих запросов в полёте
func (m *Metrics) OutboundStarted(target string) {
	m.outboundInFlight.WithLabelValues(target).Inc()
}

// OutboundFinished уменьшает счётчик исходящих запросов в полёте
func (m *Metrics) OutboundFinished(target string) {
	m.outboundInFlight.WithLabelValues(target).Dec()
}
