package handler

import (
	"time"

	"github.com/storekit/storefront-service/internal/entities"
)

// LineItem is a priced cart line frozen at checkout time.
type LineItem struct {
	ItemID    string `json:"item_id" validate:"required"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price" validate:"gte=0"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// Customer is the buyer's contact block on an order.
type Customer struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Payment describes how the order is being paid.
type Payment struct {
	Method    string `json:"method,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// Order is the API representation of a stored order.
type Order struct {
	OrderID   string     `json:"order_id"`
	StoreID   string     `json:"store_id"`
	Products  []LineItem `json:"products"`
	Amount    int        `json:"amount"`
	Status    string     `json:"status"`
	Customer  Customer   `json:"customer"`
	Payment   Payment    `json:"payment"`
	PlacedAt  time.Time  `json:"placed_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PlaceOrderRequest places an order from the staged checkout. The line
// items and amount come from the staged checkout, never from the client.
type PlaceOrderRequest struct {
	OrderID  string   `json:"order_id,omitempty" validate:"omitempty,uuid4"`
	Customer Customer `json:"customer"`
	Payment  Payment  `json:"payment"`
}

// Checkout is the staged, priced cart returned by the checkout endpoint.
type Checkout struct {
	StoreID string     `json:"store_id"`
	Items   []LineItem `json:"items"`
	Amount  int        `json:"amount"`
}

// CartItem is a single cart line with its current quantity.
type CartItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CatalogItem is a sellable product or service of a store.
type CatalogItem struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Kind   string `json:"kind"`
}

// Catalog is a store's catalog snapshot.
type Catalog struct {
	StoreID string        `json:"store_id"`
	Items   []CatalogItem `json:"items"`
	TakenAt time.Time     `json:"taken_at"`
}

// OrderRef is a store-scoped pointer to an order.
type OrderRef struct {
	OrderID  string    `json:"order_id"`
	PlacedAt time.Time `json:"placed_at"`
}

// Notification is a store owner notification.
type Notification struct {
	NotificationID string    `json:"notification_id"`
	Text           string    `json:"text"`
	Link           string    `json:"link,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// CatalogEvent is the kafka payload for catalog changes.
type CatalogEvent struct {
	Op      string `json:"op" validate:"required,oneof=upsert delete"`
	StoreID string `json:"store_id" validate:"required"`
	ItemID  string `json:"item_id" validate:"required"`
	Name    string `json:"name,omitempty" validate:"required_if=Op upsert"`
	Price   int    `json:"price,omitempty" validate:"gte=0"`
	Kind    string `json:"kind,omitempty" validate:"required_if=Op upsert,omitempty,oneof=product service"`
	Active  bool   `json:"active,omitempty"`
}

func LineItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		ItemID:    i.ItemID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func LineItemJSONToEntity(i LineItem) entities.LineItem {
	return entities.LineItem{
		ItemID:    i.ItemID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	products := make([]LineItem, 0, len(o.Products))
	for _, it := range o.Products {
		products = append(products, LineItemEntityToJSON(it))
	}

	return Order{
		OrderID:  o.OrderID,
		StoreID:  o.StoreID,
		Products: products,
		Amount:   o.Amount,
		Status:   string(o.Status),
		Customer: Customer{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Payment: Payment{
			Method:    o.Payment.Method,
			Reference: o.Payment.Reference,
		},
		PlacedAt:  o.PlacedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func CheckoutEntityToJSON(c entities.Checkout) Checkout {
	items := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, LineItemEntityToJSON(it))
	}
	return Checkout{StoreID: c.StoreID, Items: items, Amount: c.Amount}
}

func SnapshotEntityToJSON(s entities.Snapshot) Catalog {
	items := make([]CatalogItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, CatalogItem{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Kind:   string(it.Kind),
		})
	}
	return Catalog{StoreID: s.StoreID, Items: items, TakenAt: s.TakenAt}
}

func OrderRefEntityToJSON(r entities.OrderRef) OrderRef {
	return OrderRef{OrderID: r.OrderID, PlacedAt: r.PlacedAt}
}

func NotificationEntityToJSON(n entities.Notification) Notification {
	return Notification{
		NotificationID: n.NotificationID,
		Text:           n.Text,
		Link:           n.Link,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

func CatalogEventToEntity(e CatalogEvent) entities.CatalogItem {
	return entities.CatalogItem{
		ItemID:  e.ItemID,
		StoreID: e.StoreID,
		Name:    e.Name,
		Price:   e.Price,
		Kind:    entities.ItemKind(e.Kind),
		Active:  e.Active,
	}
}
