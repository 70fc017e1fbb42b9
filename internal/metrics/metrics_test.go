package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPrometheusMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrometheusMiddleware_UnmatchedPath(t *testing.T) {
	router := gin.New()
	router.Use(PrometheusMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordHelpers(t *testing.T) {
	// These must not panic; values are asserted via the /metrics endpoint in
	// router tests.
	RecordCatalogSearch(true)
	RecordCatalogSearch(false)
	RecordCartAddition("success")
	RecordCartAddition("corrupt_reset")
	RecordCartCorruptionReset()
	UpdateCartItems(3)
	RecordToastPushed()
	RecordCacheOperation("get", "hit")
	UpdateCacheMetrics(10, 100)
	SelectionsActive.Set(1)
}
