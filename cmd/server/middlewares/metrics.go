package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StreamStats reports the state of the note event hub
type StreamStats interface {
	Stats() (subscribers int, dropped uint64)
}

// normalizeRoutePath returns the route template (e.g. "/deleteNote/:id")
// so per-note paths don't explode label cardinality. Unmatched routes fall back to the raw path.
func normalizeRoutePath(c *fiber.Ctx) string {
	if route := c.Route(); route != nil {
		return route.Path
	}
	return c.Path()
}

// normalizeStatus buckets 2xx, 4xx and 5xx; anything else is kept as-is
func normalizeStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return strconv.Itoa(status)
}

// AttachMetrics gives the app its own Prometheus registry, times every request
// and serves the registry on /metrics. A nil stream skips the hub gauges.
func AttachMetrics(app *fiber.App, stream StreamStats) {
	reg := prometheus.NewRegistry()

	reqDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	reqTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	reg.MustRegister(reqDuration, reqTotal)

	if stream != nil {
		reg.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "notes_stream_subscribers",
				Help: "Open note event stream connections",
			}, func() float64 {
				n, _ := stream.Stats()
				return float64(n)
			}),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name: "notes_stream_events_dropped_total",
				Help: "Note events dropped because a subscriber's buffer was full",
			}, func() float64 {
				_, d := stream.Stats()
				return float64(d)
			}),
		)
	}

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start).Seconds()

		method := c.Method()
		path := normalizeRoutePath(c)
		status := normalizeStatus(c.Response().StatusCode())

		reqDuration.WithLabelValues(method, path, status).Observe(dur)
		reqTotal.WithLabelValues(method, path, status).Inc()
		return err
	})

	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)
}
