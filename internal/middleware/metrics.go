package middleware

import (
	"net/http"
	"strconv"
	"time"

	"myblog/internal/metrics"

	"github.com/gorilla/mux"
)

// Metrics records request counts and latency labelled by route template,
// so /articles/1 and /articles/2 share a series.
func Metrics(c *metrics.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(lrw, r)

			route := "unmatched"
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			c.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(lrw.statusCode)).Inc()
			c.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
