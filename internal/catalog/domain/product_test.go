package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ProductID:   "PRD0100",
		Model:       "Vertex 2",
		Brand:       "Crux",
		Description: "flagship",
		Price:       decimal.NewFromInt(55000),
		Quantity:    10,
		Color:       "black",
		Features:    "fast, light",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		require.Nil(t, Validate(validProduct()))
	})

	t.Run("lowercase product id", func(t *testing.T) {
		p := validProduct()
		p.ProductID = "prd0100"
		require.Contains(t, Validate(p), "productId")
	})

	t.Run("model too long", func(t *testing.T) {
		p := validProduct()
		p.Model = "An Unreasonably Long Model Name"
		require.Contains(t, Validate(p), "model")
	})

	t.Run("color too long", func(t *testing.T) {
		p := validProduct()
		p.Color = "iridescent midnight"
		require.Contains(t, Validate(p), "color")
	})

	t.Run("zero price", func(t *testing.T) {
		p := validProduct()
		p.Price = decimal.Zero
		require.Contains(t, Validate(p), "price")
	})

	t.Run("negative stock", func(t *testing.T) {
		p := validProduct()
		p.Quantity = -1
		require.Contains(t, Validate(p), "quantity")
	})

	t.Run("empty form lists required fields", func(t *testing.T) {
		errs := Validate(Product{})
		for _, field := range []string{"productId", "model", "brand", "description", "productFeatures", "color", "price"} {
			require.Contains(t, errs, field)
		}
	})
}

func TestFilterMatch(t *testing.T) {
	p := validProduct() // price 55000, brand Crux

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter matches", Filter{}, true},
		{"brand match", Filter{Brand: "Crux"}, true},
		{"brand mismatch", Filter{Brand: "Acme"}, false},
		{"within range", Filter{MinPrice: decimal.NewFromInt(50000), MaxPrice: decimal.NewFromInt(60000)}, true},
		{"below min", Filter{MinPrice: decimal.NewFromInt(60000)}, false},
		{"above max", Filter{MaxPrice: decimal.NewFromInt(50000)}, false},
		{"zero max is unbounded", Filter{MinPrice: decimal.NewFromInt(1)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.filter.Match(p))
		})
	}
}
