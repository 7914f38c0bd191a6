package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// traceRequests opens a span per request, continuing any trace carried in
// the inbound W3C trace headers, and makes the span's context visible to
// handlers through the request context.
func (s *Server) traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		carrier := map[string]string{}
		for _, header := range []string{"traceparent", "tracestate", "baggage"} {
			if v := c.GetHeader(header); v != "" {
				carrier[header] = v
			}
		}

		ctx := s.tracer.SetCarrierOnContext(c.Request.Context(), carrier)
		ctx, span := s.tracer.StartSpan(ctx, c.Request.Method+" "+c.FullPath())
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		s.tracer.SetAttributes(span, map[string]interface{}{
			"http.method":      c.Request.Method,
			"http.route":       c.FullPath(),
			"http.status_code": c.Writer.Status(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.tracer.RecordErrorOnSpan(span, fmt.Errorf("request failed with status %d", c.Writer.Status()))
		}
	}
}

// measureRequests records the request counter by status code and the
// per-endpoint latency histogram.
func (s *Server) measureRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.metrics.IncrementRequests(strconv.Itoa(c.Writer.Status()))
		s.metrics.RecordRequestDuration(start, c.FullPath())
	}
}
