package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/cart/queries/checkout_summary"
	"github.com/light-bringer/storefront-service/internal/app/cart/queries/view_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/toggle_drawer"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/toggle_selection"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/select_variant"
	orderrepo "github.com/light-bringer/storefront-service/internal/app/order/repo"
	"github.com/light-bringer/storefront-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

type noopCommitter struct{}

func (noopCommitter) Apply(context.Context, *committer.CommitPlan) error { return nil }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, []byte) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products, err := catalogrepo.DemoCatalog()
	require.NoError(t, err)
	catalog, err := catalogrepo.NewMemoryCatalog(products)
	require.NoError(t, err)

	store := sessions.NewStore()
	logger := zap.NewNop()

	shipping, err := money.FromDecimalString("150.00")
	require.NoError(t, err)

	clk := clock.NewRealClock()
	placeOrder := place_order.NewInteractor(
		store,
		orderrepo.NewOrderRepo(),
		orderrepo.NewOutboxRepo(clk),
		noopCommitter{},
		noopPublisher{},
		clk,
		shipping,
		0,
		logger,
	)

	handler := NewHandler(
		logger,
		list_products.NewQuery(catalog),
		get_product.NewQuery(catalog),
		select_variant.NewInteractor(catalog, store),
		view_cart.NewQuery(store),
		add_to_cart.NewInteractor(catalog, store),
		remove_item.NewInteractor(store),
		update_quantity.NewInteractor(store),
		toggle_selection.NewInteractor(store),
		toggle_drawer.NewInteractor(store),
		checkout_summary.NewQuery(store, shipping),
		placeOrder,
	)

	return NewRouter(handler, logger, sessions.NewSessionID)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestProductsAPI(t *testing.T) {
	router := newTestRouter(t)

	t.Run("list all products", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/products", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[struct {
			Data []list_products.ProductSummary `json:"data"`
		}](t, rec)
		assert.Len(t, body.Data, 4)
	})

	t.Run("filter by style", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/products?style=FITTED", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[struct {
			Data []list_products.ProductSummary `json:"data"`
		}](t, rec)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "prod_001", body.Data[0].ID)
		assert.Equal(t, "3495.00", body.Data[0].Price)
		assert.Equal(t, "4500.00", body.Data[0].OriginalPrice)
		assert.Equal(t, int64(22), body.Data[0].DiscountPercent)
	})

	t.Run("unknown style rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/products?style=BEANIE", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("product detail has sorted annotated variants", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/products/prod_001", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		detail := decode[get_product.ProductDetail](t, rec)
		require.Len(t, detail.Variants, 8)

		sizes := make([]string, 0, len(detail.Variants))
		for _, v := range detail.Variants {
			sizes = append(sizes, v.Size)
		}
		assert.Equal(t, []string{"7", "7 1/8", "7 1/4", "7 3/8", "7 1/2", "7 5/8", "7 3/4", "8"}, sizes)

		// Size 7 1/8 is seeded sold out.
		assert.Equal(t, "out_of_stock", detail.Variants[1].Status)
		assert.False(t, detail.Variants[1].Selectable)
		assert.Equal(t, "Out of Stock", detail.Variants[1].StockNotice)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/products/prod_999", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartAPI(t *testing.T) {
	router := newTestRouter(t)
	session := sessions.NewSessionID()

	addBody := map[string]any{
		"product_id": "prod_002",
		"variant_id": "v_prod_002_7",
		"quantity":   1,
	}

	t.Run("add to cart opens drawer", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session, addBody)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, session, rec.Header().Get("X-Session-ID"))

		view := decode[view_cart.CartView](t, rec)
		require.Len(t, view.Lines, 1)
		assert.True(t, view.DrawerOpen)
		assert.True(t, view.Lines[0].Selected)
		assert.Equal(t, 1, view.Lines[0].Quantity)
		assert.Equal(t, "2250.00", view.Lines[0].UnitPrice)
	})

	t.Run("re-adding same variant merges", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session, addBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		view := decode[view_cart.CartView](t, rec)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 2, view.Lines[0].Quantity)
		assert.Equal(t, "4500.00", view.Lines[0].Subtotal)
	})

	t.Run("sold out variant rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session, map[string]any{
			"product_id": "prod_002",
			"variant_id": "v_prod_002_714", // seeded with zero stock
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("quantity delta floors at one", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/api/v1/cart/items/v_prod_002_7", session, map[string]any{
			"delta": -5,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[view_cart.CartView](t, rec)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 1, view.Lines[0].Quantity)
	})

	t.Run("remove item", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/v_prod_002_7", session, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[view_cart.CartView](t, rec)
		assert.Empty(t, view.Lines)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		other := sessions.NewSessionID()
		rec := doJSON(t, router, http.MethodGet, "/api/v1/cart", other, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[view_cart.CartView](t, rec)
		assert.Empty(t, view.Lines)
	})
}

func TestCheckoutAPI(t *testing.T) {
	router := newTestRouter(t)
	session := sessions.NewSessionID()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session, map[string]any{
		"product_id": "prod_004",
		"variant_id": "v_prod_004_8",
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("summary applies flat shipping", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/checkout", session, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		summary := decode[checkout_summary.Summary](t, rec)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, "4900.00", summary.Subtotal)
		assert.Equal(t, "150.00", summary.Shipping)
		assert.Equal(t, "5050.00", summary.GrandTotal)
	})

	t.Run("deselecting everything blocks checkout", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/cart/selection", session, map[string]any{
			"selected": false,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/checkout", session, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/orders", session, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("placing order clears the cart", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/cart/selection", session, map[string]any{
			"selected": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout/orders", session, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		result := decode[place_order.Result](t, rec)
		assert.NotEmpty(t, result.OrderID)
		assert.Equal(t, "PENDING", result.Status)
		assert.Equal(t, "5050.00", result.Total)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", session, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		view := decode[view_cart.CartView](t, rec)
		assert.Empty(t, view.Lines)
	})
}
