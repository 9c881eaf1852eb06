package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/metrics"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestsTotal(method, class string) float64 {
	var m dto.Metric
	if err := metrics.RequestsTotal.WithLabelValues(method, class).Write(&m); err != nil {
		return -1
	}
	return m.GetCounter().GetValue()
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestWithMetrics(t *testing.T) {
	env := newTestEnv(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := requestsTotal(http.MethodPatch, "4xx")
	env.handler.withMetrics(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/", nil))

	assert.Equal(t, before+1, requestsTotal(http.MethodPatch, "4xx"))
}

func TestWithTraceIDAndLogging(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnv(t)
	env.handler.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := env.handler.withTraceID(env.handler.withLogging(next))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(traceIDHeader, "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
	out := buf.String()
	assert.Contains(t, out, `"trace_id":"abc"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"uri":"/boom"`)
}
