package entities

import "time"

// OrderRef is one element of a store's order list.
type OrderRef struct {
	OrderID  string
	PlacedAt time.Time
}

type Notification struct {
	NotificationID string
	Text           string
	Link           string
	Read           bool
	CreatedAt      time.Time
}

// Checkout is a staged, priced resolution of a cart. It is persisted
// between the assemble step and order placement.
type Checkout struct {
	StoreID string
	Items   []LineItem
	Amount  int
}
