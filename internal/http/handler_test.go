//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/notify"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/guttosm/storefront-service/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full storefront stack over in-memory storage.
func newTestRouter(t *testing.T) (*gin.Engine, *notify.ToastCenter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(service.DefaultCatalog)
	t.Cleanup(catalog.Stop)

	broker := notify.NewBroker()
	cart := service.NewCartService(storage.NewMemoryStore(), broker)
	toasts := notify.NewToastCenter()
	t.Cleanup(toasts.Stop)

	selections := service.NewSelectionManager(catalog, cart, toasts)
	handler := NewHandler(catalog, selections, cart, WithToastCenter(toasts))

	router := gin.New()
	api := router.Group("/api")
	NewStorefrontRoutes(handler).RegisterRoutes(api)
	return router, toasts
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	return data
}

func TestHandler_GetProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{
			name:      "empty query returns all products",
			query:     "",
			wantCount: len(service.DefaultCatalog),
		},
		{
			name:      "substring filter",
			query:     "cake",
			wantCount: 2,
		},
		{
			name:      "filter is case-insensitive",
			query:     "CAKE",
			wantCount: 2,
		},
		{
			name:      "no match returns empty list",
			query:     "pizza",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/api/products?search="+tt.query, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			data := decodeData(t, w)
			assert.Equal(t, float64(tt.wantCount), data["count"])
		})
	}
}

func TestHandler_GetProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("known product", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products/chocolate-cake", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "Chocolate Cake", data["name"])
	})

	t.Run("unknown product", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/products/nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ActivateSelection(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("opens selection with defaults", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/selections", dto.ActivateSelectionRequest{ProductID: "chocolate-cake"})

		assert.Equal(t, http.StatusCreated, w.Code)
		data := decodeData(t, w)
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, float64(1), data["quantity"])
		assert.Equal(t, "1/2 KG", data["tier"])
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/selections", dto.ActivateSelectionRequest{ProductID: "nonexistent"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing product id returns 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/selections", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// openSelection opens a selection and returns its id.
func openSelection(t *testing.T, router *gin.Engine, productID string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/selections", dto.ActivateSelectionRequest{ProductID: productID})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	id, ok := data["id"].(string)
	require.True(t, ok)
	return id
}

func TestHandler_UpdateSelection(t *testing.T) {
	router, _ := newTestRouter(t)

	delta := func(d int) *int { return &d }
	weight := func(w string) *string { return &w }

	t.Run("quantity delta applied", func(t *testing.T) {
		id := openSelection(t, router, "chocolate-cake")

		w := doJSON(t, router, http.MethodPatch, "/api/selections/"+id, dto.UpdateSelectionRequest{QuantityDelta: delta(2)})
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, float64(3), data["quantity"])
	})

	t.Run("quantity clamps at one", func(t *testing.T) {
		id := openSelection(t, router, "chocolate-cake")

		w := doJSON(t, router, http.MethodPatch, "/api/selections/"+id, dto.UpdateSelectionRequest{QuantityDelta: delta(-5)})
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, float64(1), data["quantity"])
	})

	t.Run("weight change applied", func(t *testing.T) {
		id := openSelection(t, router, "chocolate-cake")

		w := doJSON(t, router, http.MethodPatch, "/api/selections/"+id, dto.UpdateSelectionRequest{Weight: weight("1 KG")})
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "1 KG", data["tier"])
	})

	t.Run("unrecognized weight rejected", func(t *testing.T) {
		id := openSelection(t, router, "chocolate-cake")

		w := doJSON(t, router, http.MethodPatch, "/api/selections/"+id, dto.UpdateSelectionRequest{Weight: weight("2 KG")})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown selection returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/selections/unknown", dto.UpdateSelectionRequest{QuantityDelta: delta(1)})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ConfirmSelection(t *testing.T) {
	router, toasts := newTestRouter(t)

	t.Run("appends priced line and raises notification", func(t *testing.T) {
		id := openSelection(t, router, "chocolate-cake")

		d := 3
		w := doJSON(t, router, http.MethodPatch, "/api/selections/"+id, dto.UpdateSelectionRequest{QuantityDelta: &d})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/selections/"+id+"/confirm", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "Chocolate Cake", data["name"])
		assert.Equal(t, float64(4), data["quantity"])
		// 1/2 KG halves the base price of 400, times quantity 4
		assert.Equal(t, float64(800), data["price"])

		assert.NotEmpty(t, toasts.Active())

		// Selection is closed after confirmation
		w = doJSON(t, router, http.MethodPost, "/api/selections/"+id+"/confirm", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown selection returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/selections/unknown/confirm", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Cart(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("empty cart", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, float64(0), data["count"])
	})

	t.Run("lines accumulate without merging", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			id := openSelection(t, router, "fruit-tart")
			w := doJSON(t, router, http.MethodPost, "/api/selections/"+id+"/confirm", nil)
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := doJSON(t, router, http.MethodGet, "/api/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, float64(2), data["count"])

		w = doJSON(t, router, http.MethodGet, "/api/cart/count", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data = decodeData(t, w)
		assert.Equal(t, float64(2), data["count"])
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/cart", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/cart", nil)
		data := decodeData(t, w)
		assert.Equal(t, float64(0), data["count"])
	})
}

func TestHandler_GetNotifications(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(0), data["count"])

	id := openSelection(t, router, "almond-brownie")
	w = doJSON(t, router, http.MethodPost, "/api/selections/"+id+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	data = decodeData(t, w)
	assert.Equal(t, float64(1), data["count"])

	notifications, ok := data["notifications"].([]interface{})
	require.True(t, ok)
	first, ok := notifications[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Item added successfully!", first["message"])
}

func TestHandler_NotificationsExpire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(service.DefaultCatalog)
	t.Cleanup(catalog.Stop)

	broker := notify.NewBroker()
	cart := service.NewCartService(storage.NewMemoryStore(), broker)
	toasts := notify.NewToastCenter(notify.WithToastDuration(20 * time.Millisecond))
	t.Cleanup(toasts.Stop)

	selections := service.NewSelectionManager(catalog, cart, toasts)
	handler := NewHandler(catalog, selections, cart, WithToastCenter(toasts))

	router := gin.New()
	api := router.Group("/api")
	NewStorefrontRoutes(handler).RegisterRoutes(api)

	id := openSelection(t, router, "chocolate-cake")
	w := doJSON(t, router, http.MethodPost, "/api/selections/"+id+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		w := doJSON(t, router, http.MethodGet, "/api/notifications", nil)
		return decodeData(t, w)["count"] == float64(0)
	}, time.Second, 10*time.Millisecond)
}

func TestHandler_ConsecutiveConfirmationsAreDistinct(t *testing.T) {
	router, toasts := newTestRouter(t)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		id := openSelection(t, router, "butterscotch-cake")
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/selections/%s/confirm", id), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	for _, toast := range toasts.Active() {
		assert.False(t, seen[toast.ID], "toast ids must be distinct")
		seen[toast.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestGetProducts_RecordsSearchMetricOnce(t *testing.T) {
	router, _ := newTestRouter(t)

	before := promtestutil.ToFloat64(metrics.CatalogSearchesTotal.WithLabelValues("true"))

	w := doJSON(t, router, http.MethodGet, "/api/products?search=cake", nil)
	require.Equal(t, http.StatusOK, w.Code)

	after := promtestutil.ToFloat64(metrics.CatalogSearchesTotal.WithLabelValues("true"))
	assert.Equal(t, 1.0, after-before)
}
