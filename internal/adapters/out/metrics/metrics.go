// Package metrics exposes Prometheus instruments for the service: a counter of
// published order events and a histogram of HTTP request durations.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

const namespace = "sales"

// Metrics holds the registered collectors.
type Metrics struct {
	OrderEvents     *prometheus.CounterVec
	PublishFailures prometheus.Counter
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. Passing a fresh
// prometheus.NewRegistry() keeps tests independent of the global registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		OrderEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_events_total",
			Help:      "Order state changes published, by target state.",
		}, []string{"state"}),
		PublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_event_publish_failures_total",
			Help:      "Batches of order events that could not be published.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.OrderEvents, m.PublishFailures, m.RequestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records the duration of every request under its route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Publisher wraps next and counts the events it delivers. A nil next only
// counts, which is what runs when no broker is configured.
func (m *Metrics) Publisher(next ports.OrderEventPublisher) ports.OrderEventPublisher {
	return &countingPublisher{next: next, metrics: m}
}

type countingPublisher struct {
	next    ports.OrderEventPublisher
	metrics *Metrics
}

func (p *countingPublisher) Publish(ctx context.Context, events ...order.StateChanged) error {
	if p.next != nil {
		if err := p.next.Publish(ctx, events...); err != nil {
			p.metrics.PublishFailures.Inc()
			return err
		}
	}

	for _, event := range events {
		p.metrics.OrderEvents.WithLabelValues(event.To).Inc()
	}
	return nil
}
