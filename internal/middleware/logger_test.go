package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/items/42", nil)
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"path":"/items/:id"`)
	assert.Contains(t, out, `"status":404`)
}
