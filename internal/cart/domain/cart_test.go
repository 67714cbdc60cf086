package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotalize(t *testing.T) {
	t.Run("empty cart -> zero totals", func(t *testing.T) {
		qty, price := Totalize(nil)
		if qty != 0 {
			t.Fatalf("expected quantity 0, got %d", qty)
		}
		if !price.IsZero() {
			t.Fatalf("expected price 0, got %s", price)
		}
	})

	t.Run("sums over all lines", func(t *testing.T) {
		items := []LineItem{
			{ProductID: "P1", UnitPrice: decimal.NewFromInt(500), Quantity: 2},
			{ProductID: "P2", UnitPrice: decimal.NewFromInt(1000), Quantity: 1},
		}

		qty, price := Totalize(items)
		if qty != 3 {
			t.Fatalf("expected quantity 3, got %d", qty)
		}
		if !price.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("expected price 2000, got %s", price)
		}
	})

	t.Run("rewrites line totals in place", func(t *testing.T) {
		items := []LineItem{
			// A stale, wrong line total must not survive Totalize.
			{ProductID: "P1", UnitPrice: decimal.NewFromInt(500), Quantity: 3, LineTotal: decimal.NewFromInt(1)},
		}

		_, price := Totalize(items)
		if !items[0].LineTotal.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected line total 1500, got %s", items[0].LineTotal)
		}
		if !price.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected price 1500, got %s", price)
		}
	})

	t.Run("fractional unit prices stay exact", func(t *testing.T) {
		items := []LineItem{
			{ProductID: "P1", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 3},
		}

		_, price := Totalize(items)
		if !price.Equal(decimal.RequireFromString("59.97")) {
			t.Fatalf("expected 59.97, got %s", price)
		}
	})
}
