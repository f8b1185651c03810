package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/storekit/storefront-service/internal/cart"
	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/pkg/utils"
)

type CartService interface {
	Increment(ctx context.Context, storeID, itemID string) (int, error)
	Decrement(ctx context.Context, storeID, itemID string, amount int) (int, error)
	Quantity(ctx context.Context, storeID, itemID string) (int, error)
	Items(ctx context.Context, storeID string) (cart.Cart, error)
}

type CheckoutService interface {
	Assemble(ctx context.Context, storeID string) (entities.Checkout, error)
	Staged(ctx context.Context, storeID string) (entities.Checkout, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	VerifyPayment(ctx context.Context, storeID, orderID string) (entities.Order, error)
	GetOrder(ctx context.Context, storeID, orderID string) (entities.Order, error)
	OrderRefs(ctx context.Context, storeID string) ([]entities.OrderRef, error)
	Notifications(ctx context.Context, storeID string) ([]entities.Notification, error)
}

type CatalogReader interface {
	Snapshot(ctx context.Context, storeID string) (entities.Snapshot, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	carts    CartService
	checkout CheckoutService
	orders   OrderService
	catalog  CatalogReader
}

func NewHTTPHandler(logger *slog.Logger, carts CartService, checkout CheckoutService, orders OrderService, catalog CatalogReader) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		catalog:  catalog,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/stores/{store_id}", func(r chi.Router) {
		r.Get("/catalog", h.GetCatalog)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/{item_id}", h.AddToCart)
		r.Get("/cart/{item_id}", h.GetCartItem)
		r.Delete("/cart/{item_id}", h.RemoveFromCart)

		r.Post("/checkout", h.Checkout)

		r.Get("/orders", h.ListOrderRefs)
		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Post("/orders/{order_id}/verify", h.VerifyPayment)

		r.Get("/notifications", h.ListNotifications)
	})
}

// GetCatalog
// @Summary      Store catalog
// @Description  Returns the catalog snapshot for a store
// @Tags         catalog
// @Param        store_id  path  string  true  "Store identifier"
// @Success      200  {object}  Catalog
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/catalog [get]
func (h *HTTPHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	snap, err := h.catalog.Snapshot(ctx, storeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load catalog", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, SnapshotEntityToJSON(snap), http.StatusOK)
}

// GetCart
// @Summary      Cart contents
// @Description  Returns every cart line with its quantity
// @Tags         cart
// @Param        store_id  path  string  true  "Store identifier"
// @Success      200  {array}  CartItem
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	items, err := h.carts.Items(ctx, storeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cart", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, cartToJSON(items), http.StatusOK)
}

// AddToCart
// @Summary      Add one unit to the cart
// @Tags         cart
// @Param        store_id  path  string  true  "Store identifier"
// @Param        item_id   path  string  true  "Item identifier"
// @Success      200  {object}  CartItem
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/cart/{item_id} [post]
func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")
	itemID := chi.URLParam(r, "item_id")

	if err := h.validate.Var(itemID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	qty, err := h.carts.Increment(ctx, storeID, itemID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add to cart", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartItem{ItemID: itemID, Quantity: qty}, http.StatusOK)
}

// GetCartItem
// @Summary      Quantity of a single cart line
// @Tags         cart
// @Param        store_id  path  string  true  "Store identifier"
// @Param        item_id   path  string  true  "Item identifier"
// @Success      200  {object}  CartItem
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/cart/{item_id} [get]
func (h *HTTPHandler) GetCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")
	itemID := chi.URLParam(r, "item_id")

	qty, err := h.carts.Quantity(ctx, storeID, itemID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read cart line", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartItem{ItemID: itemID, Quantity: qty}, http.StatusOK)
}

// RemoveFromCart
// @Summary      Remove units from the cart
// @Description  Decrements a cart line, amount query controls how many units
// @Tags         cart
// @Param        store_id  path   string  true   "Store identifier"
// @Param        item_id   path   string  true   "Item identifier"
// @Param        amount    query  int     false  "Units to remove, default 1"
// @Success      200  {object}  CartItem
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/cart/{item_id} [delete]
func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")
	itemID := chi.URLParam(r, "item_id")

	amount := 1
	if raw := r.URL.Query().Get("amount"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.WriteError(w, "amount must be a positive integer", http.StatusBadRequest)
			return
		}
		amount = parsed
	}

	qty, err := h.carts.Decrement(ctx, storeID, itemID, amount)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to remove from cart", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartItem{ItemID: itemID, Quantity: qty}, http.StatusOK)
}

// Checkout
// @Summary      Assemble and stage a checkout
// @Description  Resolves the cart against the current catalog and stages the result
// @Tags         checkout
// @Param        store_id  path  string  true  "Store identifier"
// @Success      200  {object}  Checkout
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	co, err := h.checkout.Assemble(ctx, storeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to assemble checkout", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CheckoutEntityToJSON(co), http.StatusOK)
}

// PlaceOrder
// @Summary      Place an order from the staged checkout
// @Description  Line items and amount come from the staged checkout, the body carries identity and payment details
// @Tags         orders
// @Param        store_id  path  string             true  "Store identifier"
// @Param        input     body  PlaceOrderRequest  true  "Order details"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      409  {object}  utils.ErrorResponse "Nothing staged or order finalized"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	staged, err := h.checkout.Staged(ctx, storeID)
	if errors.Is(err, entities.ErrNoStagedCheckout) {
		utils.WriteError(w, "no staged checkout", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load staged checkout", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	order := entities.Order{
		OrderID:  req.OrderID,
		StoreID:  storeID,
		Products: staged.Items,
		Amount:   staged.Amount,
		Status:   entities.StatusPending,
		Customer: entities.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		Payment: entities.PaymentInfo{
			Method:    req.Payment.Method,
			Reference: req.Payment.Reference,
		},
	}

	placed, err := h.orders.PlaceOrder(ctx, order)
	if err != nil {
		h.writeOrderError(ctx, w, err, storeID)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(placed), http.StatusCreated)
}

// GetOrder
// @Summary      Fetch an order
// @Tags         orders
// @Param        store_id  path  string  true  "Store identifier"
// @Param        order_id  path  string  true  "Order identifier"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrder(ctx, storeID, orderID)
	if err != nil {
		h.writeOrderError(ctx, w, err, storeID)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// VerifyPayment
// @Summary      Verify payment for an order
// @Description  Asks the payment gateway once and applies the verdict, already finalized orders are returned as stored
// @Tags         orders
// @Param        store_id  path  string  true  "Store identifier"
// @Param        order_id  path  string  true  "Order identifier"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/orders/{order_id}/verify [post]
func (h *HTTPHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.VerifyPayment(ctx, storeID, orderID)
	if err != nil {
		h.writeOrderError(ctx, w, err, storeID)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrderRefs
// @Summary      Store order history
// @Tags         orders
// @Param        store_id  path  string  true  "Store identifier"
// @Success      200  {array}  OrderRef
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/orders [get]
func (h *HTTPHandler) ListOrderRefs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	refs, err := h.orders.OrderRefs(ctx, storeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]OrderRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, OrderRefEntityToJSON(ref))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// ListNotifications
// @Summary      Store owner notifications
// @Tags         notifications
// @Param        store_id  path  string  true  "Store identifier"
// @Success      200  {array}  Notification
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /stores/{store_id}/notifications [get]
func (h *HTTPHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "store_id")

	ns, err := h.orders.Notifications(ctx, storeID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notifications", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Notification, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationEntityToJSON(n))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error, storeID string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderFinalized):
		utils.WriteError(w, "order already finalized", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, "invalid order", http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, "order operation failed", slog.Any("error", err), slog.String("store_id", storeID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func cartToJSON(c cart.Cart) []CartItem {
	out := make([]CartItem, 0, len(c))
	for id, qty := range c {
		out = append(out, CartItem{ItemID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}
