package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	traceID := w.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err, "generated trace id must be a uuid")
	assert.Equal(t, traceID, w.Body.String(), "context and response header must agree")
}

func TestTraceIDEchoesCallerValue(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "trace-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(TraceIDHeader))
	assert.Equal(t, "trace-123", w.Body.String())
}
