package httpmetrics

import (
	"net/http"
	"strconv"
	"time"
)

// Collector интерфейс сборщика метрик исходящих запросов
// Реализуется pkg/metrics
type Collector interface {
	ObserveOutboundRequest(target, method, status string, duration time.Duration)
	OutboundStarted(target string)
	OutboundFinished(target string)
}

// Transport обёртка над http.RoundTripper с записью метрик
// Аналог обёртки над *sql.DB: все исходящие вызовы сервиса проходят
// через интеграционных клиентов, поэтому метрики снимаются на транспорте
type Transport struct {
	base      http.RoundTripper
	collector Collector
	target    string
}

// Wrap оборачивает base транспорт записью метрик для target
// Если base nil, используется http.DefaultTransport
// Если collector nil, возвращается base без обёртки
func Wrap(base http.RoundTripper, collector Collector, target string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if collector == nil {
		return base
	}
	return &Transport{
		base:      base,
		collector: collector,
		target:    target,
	}
}

// RoundTrip выполняет запрос и фиксирует метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.collector.OutboundStarted(t.target)
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	duration := time.Since(start)
	t.collector.OutboundFinished(t.target)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.collector.ObserveOutboundRequest(t.target, req.Method, status, duration)

	return resp, err
}
