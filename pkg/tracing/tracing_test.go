package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := Tracer
	Tracer = tp.Tracer(ServiceName)
	t.Cleanup(func() { Tracer = prev })
	return rec
}

func TestGinMiddleware_NamesSpanByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := withRecorder(t)

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/assessments/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assessments/42", nil))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/assessments/:id", spans[0].Name())
}

func TestEnd_RecordsError(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartAssessmentSpan(context.Background(), "assessment.complete", "a-1")
	End(span, errors.New("boom"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "a-1", spans[0].Attributes()[0].Value.AsString())
}
