package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusPaid     OrderStatus = "paid"
	StatusDeclined OrderStatus = "declined"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusDeclined:
		return true
	}
	return false
}

// Terminal statuses never change again.
func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusDeclined
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if !to.Valid() {
		return false
	}
	if s == to {
		return true
	}
	return s == StatusPending
}

type LineItem struct {
	ItemID    string
	Name      string
	UnitPrice int
	Quantity  int
}

type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type PaymentInfo struct {
	Method    string
	Reference string
}

type Order struct {
	OrderID   string
	StoreID   string
	Products  []LineItem
	Amount    int
	Status    OrderStatus
	Customer  Customer
	Payment   PaymentInfo
	PlacedAt  time.Time
	UpdatedAt time.Time
}

// ProductsTotal is the amount the order must carry at creation time.
func (o Order) ProductsTotal() int {
	total := 0
	for _, p := range o.Products {
		total += p.UnitPrice * p.Quantity
	}
	return total
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderFinalized   = errors.New("order status is final")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrNoStagedCheckout = errors.New("no staged checkout")
)
