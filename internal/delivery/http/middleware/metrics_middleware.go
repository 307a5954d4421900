package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware instruments HTTP requests with Prometheus counters,
// latency histograms and an in-flight gauge, and serves the scrape endpoint.
type MetricsMiddleware struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        *prometheus.GaugeVec
}

// NewMetricsMiddleware creates the middleware and registers its collectors.
// Registration tolerates duplicates so tests can build it more than once.
func NewMetricsMiddleware() (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of processed HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "In-flight HTTP requests by method and route",
		}, []string{"method", "path"}),
	}

	for _, collector := range []prometheus.Collector{m.requestsTotal, m.requestDuration, m.inflight} {
		if err := registerCollector(prometheus.DefaultRegisterer, collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handle records one metric sample per request. The route template (not the
// raw URL) is the path label, so parameterized routes stay low-cardinality.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		method := c.Request().Method
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.inflight.WithLabelValues(method, path).Inc()
		start := time.Now()

		err := next(c)

		m.inflight.WithLabelValues(method, path).Dec()
		m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		status := c.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
		}
		if status == 0 {
			status = http.StatusOK
		}
		m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

		return err
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// registerCollector registers the collector, ignoring duplicate registration.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if err := reg.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}

		return err
	}

	return nil
}
