package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mkarpov/metricserve/internal/app/server/metrics"
)

// InstrumentMiddleware feeds the server's own request handling into
// the registry: a timer over request latency and a counter of in-flight
// requests, so a fresh server already has live data to render.
func InstrumentMiddleware(requests metrics.Timer, inflight metrics.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		inflight.Inc(1)
		defer inflight.Inc(-1)

		requests.Time(func() {
			c.Next()
		})
	}
}
