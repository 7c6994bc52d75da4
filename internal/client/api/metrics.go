package api

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the client-side request metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the metrics with reg. It panics on
// duplicate registration, like promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "makanscan",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Backend requests by method and status class",
			},
			[]string{"method", "status"}, // status=2xx/4xx/5xx/error
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "makanscan",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Backend request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// Interceptor records every exchange.
func (m *Metrics) Interceptor() ResponseInterceptor {
	return func(_ context.Context, ex *Exchange, err error) error {
		method := ex.Request.Method
		m.RequestsTotal.WithLabelValues(method, statusClass(ex.StatusCode)).Inc()
		m.RequestDuration.WithLabelValues(method).Observe(ex.Duration.Seconds())
		return err
	}
}

func statusClass(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	}
	return "5xx"
}
