package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storekit/storefront-service/internal/cart"
	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/internal/handler"
	mocks "github.com/storekit/storefront-service/internal/handler/mocks"
)

type handlerMocks struct {
	carts    *mocks.MockCartService
	checkout *mocks.MockCheckoutService
	orders   *mocks.MockOrderService
	catalog  *mocks.MockCatalogReader
}

func setupRouter(t *testing.T) (chi.Router, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		carts:    mocks.NewMockCartService(t),
		checkout: mocks.NewMockCheckoutService(t),
		orders:   mocks.NewMockOrderService(t),
		catalog:  mocks.NewMockCatalogReader(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.carts, m.checkout, m.orders, m.catalog)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHTTPHandler_Cart(t *testing.T) {
	t.Run("add returns new quantity", func(t *testing.T) {
		r, m := setupRouter(t)
		m.carts.EXPECT().Increment(mock.Anything, "s1", "p1").Return(3, nil).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/cart/p1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"quantity":3`)
	})

	t.Run("remove with amount", func(t *testing.T) {
		r, m := setupRouter(t)
		m.carts.EXPECT().Decrement(mock.Anything, "s1", "p1", 2).Return(1, nil).Once()

		rr := doRequest(r, http.MethodDelete, "/stores/s1/cart/p1?amount=2", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"quantity":1`)
	})

	t.Run("remove rejects non-positive amount", func(t *testing.T) {
		r, _ := setupRouter(t)

		rr := doRequest(r, http.MethodDelete, "/stores/s1/cart/p1?amount=0", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get cart lists lines sorted by item id", func(t *testing.T) {
		r, m := setupRouter(t)
		m.carts.EXPECT().Items(mock.Anything, "s1").
			Return(cart.Cart{"p2": 1, "p1": 2}, nil).Once()

		rr := doRequest(r, http.MethodGet, "/stores/s1/cart", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Less(t, strings.Index(body, "p1"), strings.Index(body, "p2"))
	})

	t.Run("get single line", func(t *testing.T) {
		r, m := setupRouter(t)
		m.carts.EXPECT().Quantity(mock.Anything, "s1", "p1").Return(0, nil).Once()

		rr := doRequest(r, http.MethodGet, "/stores/s1/cart/p1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"quantity":0`)
	})

	t.Run("storage failure is internal error", func(t *testing.T) {
		r, m := setupRouter(t)
		m.carts.EXPECT().Increment(mock.Anything, "s1", "p1").
			Return(0, errors.New("redis down")).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/cart/p1", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHTTPHandler_Checkout(t *testing.T) {
	t.Run("returns staged checkout", func(t *testing.T) {
		r, m := setupRouter(t)
		m.checkout.EXPECT().Assemble(mock.Anything, "s1").Return(entities.Checkout{
			StoreID: "s1",
			Items:   []entities.LineItem{{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 2}},
			Amount:  1000,
		}, nil).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/checkout", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"amount":1000`)
	})

	t.Run("assembly failure is internal error", func(t *testing.T) {
		r, m := setupRouter(t)
		m.checkout.EXPECT().Assemble(mock.Anything, "s1").
			Return(entities.Checkout{}, errors.New("db error")).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/checkout", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	staged := entities.Checkout{
		StoreID: "s1",
		Items:   []entities.LineItem{{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 2}},
		Amount:  1000,
	}

	t.Run("places order from staged checkout", func(t *testing.T) {
		r, m := setupRouter(t)
		m.checkout.EXPECT().Staged(mock.Anything, "s1").Return(staged, nil).Once()
		m.orders.EXPECT().
			PlaceOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.StoreID == "s1" && o.Amount == 1000 &&
					o.Status == entities.StatusPending && o.Customer.Email == "jo@example.com"
			})).
			RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.OrderID = "ord-1"
				return o, nil
			}).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders",
			`{"customer":{"name":"Jo","email":"jo@example.com"},"payment":{"method":"card"}}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"order_id":"ord-1"`)
	})

	t.Run("nothing staged is a conflict", func(t *testing.T) {
		r, m := setupRouter(t)
		m.checkout.EXPECT().Staged(mock.Anything, "s1").
			Return(entities.Checkout{}, entities.ErrNoStagedCheckout).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders", `{}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		r, _ := setupRouter(t)

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid order id is a validation error", func(t *testing.T) {
		r, _ := setupRouter(t)

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders", `{"order_id":"not-a-uuid"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("finalized order is a conflict", func(t *testing.T) {
		r, m := setupRouter(t)
		m.checkout.EXPECT().Staged(mock.Anything, "s1").Return(staged, nil).Once()
		m.orders.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrOrderFinalized).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders", `{}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "s1", "ord-1").
					Return(entities.Order{OrderID: "ord-1", StoreID: "s1", Status: entities.StatusPaid}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name: "not found",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "s1", "ord-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "internal error",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "s1", "ord-1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := setupRouter(t)
			tc.mockBehavior(m)

			rr := doRequest(r, http.MethodGet, "/stores/s1/orders/ord-1", "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_VerifyPayment(t *testing.T) {
	t.Run("returns verified order", func(t *testing.T) {
		r, m := setupRouter(t)
		m.orders.EXPECT().VerifyPayment(mock.Anything, "s1", "ord-1").
			Return(entities.Order{OrderID: "ord-1", Status: entities.StatusPaid}, nil).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders/ord-1/verify", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"paid"`)
	})

	t.Run("unknown order", func(t *testing.T) {
		r, m := setupRouter(t)
		m.orders.EXPECT().VerifyPayment(mock.Anything, "s1", "ord-1").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		rr := doRequest(r, http.MethodPost, "/stores/s1/orders/ord-1/verify", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHTTPHandler_Catalog(t *testing.T) {
	r, m := setupRouter(t)
	m.catalog.EXPECT().Snapshot(mock.Anything, "s1").Return(entities.Snapshot{
		StoreID: "s1",
		Items:   []entities.CatalogItem{{ItemID: "p1", Name: "Mug", Price: 500, Kind: entities.KindProduct}},
	}, nil).Once()

	rr := doRequest(r, http.MethodGet, "/stores/s1/catalog", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"kind":"product"`)
}

func TestHTTPHandler_Lists(t *testing.T) {
	t.Run("order refs", func(t *testing.T) {
		r, m := setupRouter(t)
		m.orders.EXPECT().OrderRefs(mock.Anything, "s1").
			Return([]entities.OrderRef{{OrderID: "ord-1"}}, nil).Once()

		rr := doRequest(r, http.MethodGet, "/stores/s1/orders", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"order_id":"ord-1"`)
	})

	t.Run("notifications", func(t *testing.T) {
		r, m := setupRouter(t)
		m.orders.EXPECT().Notifications(mock.Anything, "s1").
			Return([]entities.Notification{{NotificationID: "n1", Text: "New order"}}, nil).Once()

		rr := doRequest(r, http.MethodGet, "/stores/s1/notifications", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"text":"New order"`)
	})

	t.Run("empty lists encode as arrays", func(t *testing.T) {
		r, m := setupRouter(t)
		m.orders.EXPECT().OrderRefs(mock.Anything, "s1").Return(nil, nil).Once()

		rr := doRequest(r, http.MethodGet, "/stores/s1/orders", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}
