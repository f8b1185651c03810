package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/internal/payment"
	"github.com/storekit/storefront-service/pkg/trm"
	"github.com/storekit/storefront-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)

	// Creation is idempotent keyed by order id, ON CONFLICT DO NOTHING
	// underneath. UpdateOrderStatus only touches mutable fields.
	CreateOrder(ctx context.Context, o entities.Order) (created bool, err error)
	UpdateOrderStatus(ctx context.Context, o entities.Order) error
	AppendOrderRef(ctx context.Context, storeID string, ref entities.OrderRef) error
	AppendNotification(ctx context.Context, storeID string, n entities.Notification) error

	OrderRefs(ctx context.Context, storeID string) ([]entities.OrderRef, error)
	Notifications(ctx context.Context, storeID string) ([]entities.Notification, error)
}

type Carts interface {
	Staged(ctx context.Context, storeID string) (entities.Checkout, error)
	Clear(ctx context.Context, storeID string) error
	ClearStaged(ctx context.Context, storeID string) error
}

type Gateway interface {
	Verify(ctx context.Context, orderID string) (payment.Status, error)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	carts     Carts
	gateway   Gateway
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, carts Carts, gateway Gateway) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		carts:     carts,
		gateway:   gateway,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// PlaceOrder records an order exactly once. First placement writes the
// order document, the store's order reference and a notification inside one
// transaction. Placing the same order id again only moves mutable fields,
// and only along legal status transitions.
func (s *orderService) PlaceOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = entities.StatusPending
	}

	if !order.Status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidOrder, order.Status)
	}
	if len(order.Products) == 0 {
		return entities.Order{}, fmt.Errorf("%w: no line items", entities.ErrInvalidOrder)
	}
	if order.Amount != order.ProductsTotal() {
		return entities.Order{}, fmt.Errorf("%w: amount %d does not match line items total %d",
			entities.ErrInvalidOrder, order.Amount, order.ProductsTotal())
	}

	now := time.Now()
	if order.PlacedAt.IsZero() {
		order.PlacedAt = now
	}
	order.UpdatedAt = now

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			created, err := s.repo.CreateOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}

			if created {
				ref := entities.OrderRef{OrderID: order.OrderID, PlacedAt: order.PlacedAt}
				if err := s.repo.AppendOrderRef(ctx, order.StoreID, ref); err != nil {
					return fmt.Errorf("failed to append order ref: %w", err)
				}
				if err := s.repo.AppendNotification(ctx, order.StoreID, newOrderNotification(order)); err != nil {
					return fmt.Errorf("failed to append notification: %w", err)
				}
				s.logger.Debug("order created", slog.String("order_id", order.OrderID))
				return nil
			}

			existing, err := s.repo.GetOrderByID(ctx, order.OrderID)
			if err != nil {
				return fmt.Errorf("failed to load existing order: %w", err)
			}
			if !existing.Status.CanTransition(order.Status) {
				return fmt.Errorf("%w: %s -> %s", entities.ErrOrderFinalized, existing.Status, order.Status)
			}

			if err := s.repo.UpdateOrderStatus(ctx, order); err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
			s.logger.Debug("order updated",
				slog.String("order_id", order.OrderID), slog.String("status", string(order.Status)))
			return nil
		})
	}

	if err := utils.Retry(retryCfg, fn, entities.ErrOrderFinalized, entities.ErrInvalidOrder); err != nil {
		return entities.Order{}, err
	}

	if order.Status == entities.StatusPaid {
		s.clearLocal(ctx, order.StoreID)
	}
	return order, nil
}

// VerifyPayment runs the one-shot gateway check for an order and applies the
// verdict. Terminal orders are returned as stored, without asking the
// gateway again.
func (s *orderService) VerifyPayment(ctx context.Context, storeID, orderID string) (entities.Order, error) {
	existing, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil && !errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}

	found := err == nil
	if found && existing.Status.Terminal() {
		return existing, nil
	}

	status := s.checkGateway(ctx, orderID)

	var order entities.Order
	if found {
		order = existing
		order.Status = status
	} else {
		// Nothing recorded yet: build the order from the staged checkout,
		// which holds the prices frozen at checkout time.
		staged, serr := s.carts.Staged(ctx, storeID)
		if serr != nil {
			return entities.Order{}, fmt.Errorf("order %s unknown and nothing staged: %w", orderID, entities.ErrOrderNotFound)
		}
		order = entities.Order{
			OrderID:  orderID,
			StoreID:  storeID,
			Products: staged.Items,
			Amount:   staged.Amount,
			Status:   status,
		}
	}

	placed, err := s.PlaceOrder(ctx, order)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to record verification: %w", err)
	}
	return placed, nil
}

func (s *orderService) GetOrder(ctx context.Context, storeID, orderID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	// an order id from another tenant's namespace does not exist here
	if order.StoreID != storeID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) OrderRefs(ctx context.Context, storeID string) ([]entities.OrderRef, error) {
	return s.repo.OrderRefs(ctx, storeID)
}

func (s *orderService) Notifications(ctx context.Context, storeID string) ([]entities.Notification, error) {
	return s.repo.Notifications(ctx, storeID)
}

// checkGateway maps the provider verdict onto the order status machine.
// Transport failures and unknown statuses are declines, the documented
// recovery path is the visitor re-entering checkout.
func (s *orderService) checkGateway(ctx context.Context, orderID string) entities.OrderStatus {
	raw, err := s.gateway.Verify(ctx, orderID)
	if err != nil {
		s.logger.Warn("gateway verification failed",
			slog.String("order_id", orderID), slog.Any("error", err))
		return entities.StatusDeclined
	}

	switch raw {
	case payment.StatusSuccess:
		return entities.StatusPaid
	case payment.StatusPending:
		return entities.StatusPending
	default:
		return entities.StatusDeclined
	}
}

// clearLocal drops the cart and staged checkout after a paid order. The
// order itself is already durable, so failures here only log.
func (s *orderService) clearLocal(ctx context.Context, storeID string) {
	if err := s.carts.Clear(ctx, storeID); err != nil {
		s.logger.Error("failed to clear cart", slog.String("store_id", storeID), slog.Any("error", err))
	}
	if err := s.carts.ClearStaged(ctx, storeID); err != nil {
		s.logger.Error("failed to clear staged checkout", slog.String("store_id", storeID), slog.Any("error", err))
	}
}

func newOrderNotification(order entities.Order) entities.Notification {
	return entities.Notification{
		NotificationID: uuid.NewString(),
		Text:           fmt.Sprintf("New order %s for %d", order.OrderID, order.Amount),
		Link:           fmt.Sprintf("/orders/%s", order.OrderID),
		Read:           false,
		CreatedAt:      order.PlacedAt,
	}
}
