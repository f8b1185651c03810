package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/internal/payment"
	"github.com/storekit/storefront-service/internal/service"
	mocks "github.com/storekit/storefront-service/internal/service/mocks"
	txMocks "github.com/storekit/storefront-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	t.Helper()
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func validOrder() entities.Order {
	return entities.Order{
		OrderID: "ord-1",
		StoreID: "s1",
		Products: []entities.LineItem{
			{ItemID: "p1", Name: "Mug", UnitPrice: 500, Quantity: 2},
			{ItemID: "p2", Name: "Poster", UnitPrice: 1200, Quantity: 1},
		},
		Amount: 2200,
		Status: entities.StatusPending,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts)
		wantErr      error
	}{
		{
			name:  "creates order with ref and notification",
			order: validOrder(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(true, nil)
				repo.EXPECT().AppendOrderRef(mock.Anything, "s1", mock.Anything).Return(nil)
				repo.EXPECT().AppendNotification(mock.Anything, "s1", mock.Anything).Return(nil)
			},
		},
		{
			name: "amount mismatch rejected",
			order: func() entities.Order {
				o := validOrder()
				o.Amount = 9999
				return o
			}(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "empty line items rejected",
			order: func() entities.Order {
				o := validOrder()
				o.Products = nil
				o.Amount = 0
				return o
			}(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "existing order updates mutable fields only",
			order: validOrder(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(validOrder(), nil)
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "terminal order refuses transition",
			order: func() entities.Order {
				o := validOrder()
				o.Status = entities.StatusPaid
				return o
			}(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil)
				declined := validOrder()
				declined.Status = entities.StatusDeclined
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(declined, nil)
			},
			wantErr: entities.ErrOrderFinalized,
		},
		{
			name:  "retry recovers from transient failure",
			order: validOrder(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Once().Return(false, dbError)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Once().Return(true, nil)
				repo.EXPECT().AppendOrderRef(mock.Anything, "s1", mock.Anything).Return(nil)
				repo.EXPECT().AppendNotification(mock.Anything, "s1", mock.Anything).Return(nil)
			},
		},
		{
			name:  "ref append failure fails the command",
			order: validOrder(),
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(true, nil)
				repo.EXPECT().AppendOrderRef(mock.Anything, "s1", mock.Anything).Return(dbError)
				repo.EXPECT().AppendNotification(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			carts := mocks.NewMockCarts(t)
			gateway := mocks.NewMockGateway(t)
			tx := passthroughTx(t)

			tc.mockBehavior(repo, carts)

			svc := service.NewOrderService(testLogger(), tx, repo, carts, gateway)

			got, err := svc.PlaceOrder(context.Background(), tc.order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.order.OrderID, got.OrderID)
			assert.False(t, got.UpdatedAt.IsZero())
		})
	}
}

func TestOrderService_PlaceOrder_PaidClearsCart(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	carts := mocks.NewMockCarts(t)
	gateway := mocks.NewMockGateway(t)
	tx := passthroughTx(t)

	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(true, nil)
	repo.EXPECT().AppendOrderRef(mock.Anything, "s1", mock.Anything).Return(nil)
	repo.EXPECT().AppendNotification(mock.Anything, "s1", mock.Anything).Return(nil)
	carts.EXPECT().Clear(mock.Anything, "s1").Return(nil)
	carts.EXPECT().ClearStaged(mock.Anything, "s1").Return(nil)

	svc := service.NewOrderService(testLogger(), tx, repo, carts, gateway)

	order := validOrder()
	order.Status = entities.StatusPaid

	_, err := svc.PlaceOrder(context.Background(), order)
	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_GeneratesOrderID(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	carts := mocks.NewMockCarts(t)
	gateway := mocks.NewMockGateway(t)
	tx := passthroughTx(t)

	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(true, nil)
	repo.EXPECT().AppendOrderRef(mock.Anything, "s1", mock.Anything).Return(nil)
	repo.EXPECT().AppendNotification(mock.Anything, "s1", mock.Anything).Return(nil)

	svc := service.NewOrderService(testLogger(), tx, repo, carts, gateway)

	order := validOrder()
	order.OrderID = ""

	got, err := svc.PlaceOrder(context.Background(), order)
	require.NoError(t, err)
	assert.NotEmpty(t, got.OrderID)
}

func TestOrderService_VerifyPayment(t *testing.T) {
	staged := entities.Checkout{
		StoreID: "s1",
		Items: []entities.LineItem{
			{ItemID: "svc1", Name: "Design", UnitPrice: 4000, Quantity: 1},
		},
		Amount: 4000,
	}

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway)
		wantStatus   entities.OrderStatus
		wantErr      error
	}{
		{
			name: "success for unknown order creates paid order and clears cart",
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				gateway.EXPECT().Verify(mock.Anything, "ord-1").Return(payment.StatusSuccess, nil)
				carts.EXPECT().Staged(mock.Anything, "s1").Return(staged, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPaid && o.Amount == 4000
				})).Return(true, nil)
				repo.EXPECT().AppendOrderRef(mock.Anything, "s1", mock.Anything).Return(nil)
				repo.EXPECT().AppendNotification(mock.Anything, "s1", mock.Anything).Return(nil)
				carts.EXPECT().Clear(mock.Anything, "s1").Return(nil)
				carts.EXPECT().ClearStaged(mock.Anything, "s1").Return(nil)
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name: "pending leaves existing order pending and keeps cart",
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway) {
				existing := validOrder()
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(existing, nil).Once()
				gateway.EXPECT().Verify(mock.Anything, "ord-1").Return(payment.StatusPending, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(existing, nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPending
				})).Return(nil)
			},
			wantStatus: entities.StatusPending,
		},
		{
			name: "gateway failure declines",
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway) {
				existing := validOrder()
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(existing, nil).Once()
				gateway.EXPECT().Verify(mock.Anything, "ord-1").
					Return(payment.Status(""), errors.New("gateway down"))
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(existing, nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusDeclined
				})).Return(nil)
			},
			wantStatus: entities.StatusDeclined,
		},
		{
			name: "unknown provider status declines",
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway) {
				existing := validOrder()
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(existing, nil).Once()
				gateway.EXPECT().Verify(mock.Anything, "ord-1").Return(payment.Status("cancelled"), nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(existing, nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: entities.StatusDeclined,
		},
		{
			name: "terminal order returned without gateway call",
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway) {
				paid := validOrder()
				paid.Status = entities.StatusPaid
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(paid, nil).Once()
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name: "unknown order with nothing staged",
			mockBehavior: func(repo *mocks.MockOrderRepo, carts *mocks.MockCarts, gateway *mocks.MockGateway) {
				repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				gateway.EXPECT().Verify(mock.Anything, "ord-1").Return(payment.StatusSuccess, nil)
				carts.EXPECT().Staged(mock.Anything, "s1").
					Return(entities.Checkout{}, entities.ErrNoStagedCheckout)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			carts := mocks.NewMockCarts(t)
			gateway := mocks.NewMockGateway(t)
			tx := passthroughTx(t)

			tc.mockBehavior(repo, carts, gateway)

			svc := service.NewOrderService(testLogger(), tx, repo, carts, gateway)

			got, err := svc.VerifyPayment(context.Background(), "s1", "ord-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	carts := mocks.NewMockCarts(t)
	gateway := mocks.NewMockGateway(t)
	tx := passthroughTx(t)

	svc := service.NewOrderService(testLogger(), tx, repo, carts, gateway)

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(validOrder(), nil).Once()

		got, err := svc.GetOrder(context.Background(), "s1", "ord-1")
		require.NoError(t, err)
		assert.Equal(t, "ord-1", got.OrderID)
	})

	t.Run("wrong tenant", func(t *testing.T) {
		repo.EXPECT().GetOrderByID(mock.Anything, "ord-1").Return(validOrder(), nil).Once()

		_, err := svc.GetOrder(context.Background(), "other-store", "ord-1")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("not found is permanent, no retries", func(t *testing.T) {
		repo.EXPECT().GetOrderByID(mock.Anything, "nope").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.GetOrder(context.Background(), "s1", "nope")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
