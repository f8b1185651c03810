package entities

import "testing"

func TestOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to declined", StatusPending, StatusDeclined, true},
		{"pending to pending", StatusPending, StatusPending, true},
		{"paid is terminal", StatusPaid, StatusPending, false},
		{"paid to declined", StatusPaid, StatusDeclined, false},
		{"declined is terminal", StatusDeclined, StatusPaid, false},
		{"same terminal status is a no-op", StatusPaid, StatusPaid, true},
		{"unknown target", StatusPending, OrderStatus("refunded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrder_ProductsTotal(t *testing.T) {
	o := Order{Products: []LineItem{
		{ItemID: "p1", UnitPrice: 500, Quantity: 2},
		{ItemID: "p2", UnitPrice: 1200, Quantity: 1},
	}}
	if got := o.ProductsTotal(); got != 2200 {
		t.Errorf("ProductsTotal() = %d, want 2200", got)
	}
}
