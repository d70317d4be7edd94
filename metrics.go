package portfolio

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "portfolio"

// siteMetrics lives on its own registry so several Apps can coexist in one
// process.
type siteMetrics struct {
	registry *prometheus.Registry
	posts    prometheus.Gauge
	builds   prometheus.Counter
}

func newSiteMetrics() *siteMetrics {
	m := &siteMetrics{
		registry: prometheus.NewRegistry(),
		posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: metricsSubsystem,
			Name:      "blog_posts_discovered",
			Help:      "Blog entries found during the most recent route build.",
		}),
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: metricsSubsystem,
			Name:      "route_builds_total",
			Help:      "Number of times the route set was recomputed.",
		}),
	}
	m.registry.MustRegister(m.posts, m.builds)
	return m
}

func (m *siteMetrics) observe(posts int) {
	m.posts.Set(float64(posts))
	m.builds.Inc()
}

func (m *siteMetrics) middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/metrics"
		},
	})
}

func (m *siteMetrics) handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}
