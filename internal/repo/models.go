package repo

import (
	"database/sql"
	"time"

	"github.com/storekit/storefront-service/internal/entities"
)

type Order struct {
	OrderID       string         `db:"order_id"`
	StoreID       string         `db:"store_id"`
	Amount        int            `db:"amount"`
	Status        string         `db:"status"`
	PaymentMethod sql.NullString `db:"payment_method"`
	PaymentRef    sql.NullString `db:"payment_ref"`
	CustomerName  sql.NullString `db:"customer_name"`
	CustomerEmail sql.NullString `db:"customer_email"`
	CustomerPhone sql.NullString `db:"customer_phone"`
	CustomerAddr  sql.NullString `db:"customer_addr"`
	PlacedAt      time.Time      `db:"placed_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string `db:"order_id"`
	ItemID    string `db:"item_id"`
	Name      string `db:"name"`
	UnitPrice int    `db:"unit_price"`
	Quantity  int    `db:"quantity"`
}

type CatalogItem struct {
	ItemID  string `db:"item_id"`
	StoreID string `db:"store_id"`
	Name    string `db:"name"`
	Price   int    `db:"price"`
	Kind    string `db:"kind"`
	Active  bool   `db:"active"`
}

type OrderRef struct {
	StoreID  string    `db:"store_id"`
	OrderID  string    `db:"order_id"`
	PlacedAt time.Time `db:"placed_at"`
}

type Notification struct {
	NotificationID string         `db:"notification_id"`
	StoreID        string         `db:"store_id"`
	Text           string         `db:"text"`
	Link           sql.NullString `db:"link"`
	Read           bool           `db:"read"`
	CreatedAt      time.Time      `db:"created_at"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderID: o.OrderID,
		StoreID: o.StoreID,
		Amount:  o.Amount,
		Status:  entities.OrderStatus(o.Status),
		Customer: entities.Customer{
			Name:    nullStringToString(o.CustomerName),
			Email:   nullStringToString(o.CustomerEmail),
			Phone:   nullStringToString(o.CustomerPhone),
			Address: nullStringToString(o.CustomerAddr),
		},
		Payment: entities.PaymentInfo{
			Method:    nullStringToString(o.PaymentMethod),
			Reference: nullStringToString(o.PaymentRef),
		},
		PlacedAt:  o.PlacedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Products = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Products = append(order.Products, entities.LineItem{
				ItemID:    it.ItemID,
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			})
		}
	}

	return order
}

func CatalogItemToEntity(i CatalogItem) entities.CatalogItem {
	return entities.CatalogItem{
		ItemID:  i.ItemID,
		StoreID: i.StoreID,
		Name:    i.Name,
		Price:   i.Price,
		Kind:    entities.ItemKind(i.Kind),
		Active:  i.Active,
	}
}

func OrderRefToEntity(r OrderRef) entities.OrderRef {
	return entities.OrderRef{OrderID: r.OrderID, PlacedAt: r.PlacedAt}
}

func NotificationToEntity(n Notification) entities.Notification {
	return entities.Notification{
		NotificationID: n.NotificationID,
		Text:           n.Text,
		Link:           nullStringToString(n.Link),
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
