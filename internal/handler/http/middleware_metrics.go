package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/metrics"
)

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		metrics.ObserveRequest(r.Method, status, time.Since(start))
	})
}
