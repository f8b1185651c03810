package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/storekit/storefront-service/internal/entities"
	"github.com/storekit/storefront-service/pkg/trm"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "store_id", "amount", "status",
		"payment_method", "payment_ref",
		"customer_name", "customer_email", "customer_phone", "customer_addr",
		"placed_at", "updated_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "item_id", "name", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("item_id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// CreateOrder inserts the order and its line items. Re-inserting an
// existing order id is a no-op, the returned flag reports whether this call
// actually created the document.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "store_id", "amount", "status",
			"payment_method", "payment_ref",
			"customer_name", "customer_email", "customer_phone", "customer_addr",
			"placed_at", "updated_at",
		).
		Values(
			o.OrderID, o.StoreID, o.Amount, string(o.Status),
			nullString(o.Payment.Method), nullString(o.Payment.Reference),
			nullString(o.Customer.Name), nullString(o.Customer.Email),
			nullString(o.Customer.Phone), nullString(o.Customer.Address),
			o.PlacedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to create order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	created := affected > 0

	if !created || len(o.Products) == 0 {
		return created, nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "item_id", "name", "unit_price", "quantity").
		Suffix("ON CONFLICT (order_id, item_id) DO NOTHING")
	for _, it := range o.Products {
		q = q.Values(o.OrderID, it.ItemID, it.Name, it.UnitPrice, it.Quantity)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("failed to create order items: %w", err)
	}
	return true, nil
}

// UpdateOrderStatus touches only the mutable fields of an existing order.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("payment_method", nullString(o.Payment.Method)).
		Set("payment_ref", nullString(o.Payment.Reference)).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"order_id": o.OrderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) AppendOrderRef(ctx context.Context, storeID string, ref entities.OrderRef) error {
	query, args := r.qb.Insert("store_orders").
		Columns("store_id", "order_id", "placed_at").
		Values(storeID, ref.OrderID, ref.PlacedAt).
		Suffix("ON CONFLICT (store_id, order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append order ref: %w", err)
	}
	return nil
}

func (r *postgresRepo) AppendNotification(ctx context.Context, storeID string, n entities.Notification) error {
	query, args := r.qb.Insert("store_notifications").
		Columns("notification_id", "store_id", "text", "link", "read", "created_at").
		Values(n.NotificationID, storeID, n.Text, nullString(n.Link), n.Read, n.CreatedAt).
		Suffix("ON CONFLICT (notification_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	return nil
}

func (r *postgresRepo) OrderRefs(ctx context.Context, storeID string) ([]entities.OrderRef, error) {
	query, args := r.qb.Select("store_id", "order_id", "placed_at").
		From("store_orders").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("placed_at DESC").
		MustSql()

	var refs []OrderRef
	if err := r.selectContext(ctx, &refs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order refs: %w", err)
	}

	result := make([]entities.OrderRef, 0, len(refs))
	for _, ref := range refs {
		result = append(result, OrderRefToEntity(ref))
	}
	return result, nil
}

func (r *postgresRepo) Notifications(ctx context.Context, storeID string) ([]entities.Notification, error) {
	query, args := r.qb.Select("notification_id", "store_id", "text", "link", "read", "created_at").
		From("store_notifications").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC").
		MustSql()

	var rows []Notification
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select notifications: %w", err)
	}

	result := make([]entities.Notification, 0, len(rows))
	for _, n := range rows {
		result = append(result, NotificationToEntity(n))
	}
	return result, nil
}

func (r *postgresRepo) CatalogItems(ctx context.Context, storeID string) ([]entities.CatalogItem, error) {
	query, args := r.qb.Select("item_id", "store_id", "name", "price", "kind", "active").
		From("catalog_items").
		Where(sq.Eq{"store_id": storeID, "active": true}).
		OrderBy("item_id").
		MustSql()

	var rows []CatalogItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select catalog items: %w", err)
	}

	result := make([]entities.CatalogItem, 0, len(rows))
	for _, it := range rows {
		result = append(result, CatalogItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) UpsertCatalogItem(ctx context.Context, item entities.CatalogItem) error {
	query, args := r.qb.Insert("catalog_items").
		Columns("item_id", "store_id", "name", "price", "kind", "active", "updated_at").
		Values(item.ItemID, item.StoreID, item.Name, item.Price, string(item.Kind), item.Active, sq.Expr("now()")).
		Suffix("ON CONFLICT (store_id, item_id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, kind = EXCLUDED.kind, active = EXCLUDED.active, updated_at = now()").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert catalog item: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteCatalogItem(ctx context.Context, storeID, itemID string) error {
	query, args := r.qb.Delete("catalog_items").
		Where(sq.Eq{"store_id": storeID, "item_id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}
	return nil
}

// ActiveStoreIDs lists stores by recency of their latest order, used for
// snapshot warm-up.
func (r *postgresRepo) ActiveStoreIDs(ctx context.Context, count int) ([]string, error) {
	query, args := r.qb.Select("store_id").
		From("store_orders").
		GroupBy("store_id").
		OrderBy("MAX(placed_at) DESC").
		Limit(uint64(count)).
		MustSql()

	var ids []string
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select active stores: %w", err)
	}
	return ids, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
