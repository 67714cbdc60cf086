package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry as served by GET /products.
type Product struct {
	ProductID   string
	Model       string
	Brand       string
	Description string
	Price       decimal.Decimal
	Quantity    int64
	Color       string
	Features    string
	ImageRef    string
}

// Filter narrows a product list client-side. A zero MaxPrice means
// unbounded; an empty Brand matches every brand.
type Filter struct {
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Brand    string
}

func (f Filter) Match(p Product) bool {
	if p.Price.Cmp(f.MinPrice) < 0 {
		return false
	}
	if !f.MaxPrice.IsZero() && p.Price.Cmp(f.MaxPrice) > 0 {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	return true
}

var productIDRe = regexp.MustCompile(`^[A-Z0-9]+$`)

const maxFieldLen = 20

// Validate applies the vendor product-form rules and returns per-field
// messages, empty when the product is well formed.
func Validate(p Product) map[string]string {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(p.ProductID) == "":
		errs["productId"] = "Product ID cannot be null"
	case !productIDRe.MatchString(p.ProductID):
		errs["productId"] = "Product ID must contain only uppercase alphanumeric characters"
	}

	requireShort(errs, "model", "Model", p.Model)
	requireShort(errs, "brand", "Brand", p.Brand)
	if strings.TrimSpace(p.Description) == "" {
		errs["description"] = "Description cannot be null"
	}
	if strings.TrimSpace(p.Features) == "" {
		errs["productFeatures"] = "Product features cannot be null"
	}

	switch {
	case strings.TrimSpace(p.Color) == "":
		errs["color"] = "Color cannot be null"
	case len(p.Color) > 15:
		errs["color"] = "Color must be at most 15 characters"
	}

	if p.Price.Sign() <= 0 {
		errs["price"] = "Price must be greater than zero"
	}
	if p.Quantity < 0 {
		errs["quantity"] = "Quantity cannot be negative"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requireShort(errs map[string]string, field, label, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		errs[field] = label + " cannot be null"
	case len(value) > maxFieldLen:
		errs[field] = label + " must be at most 20 characters"
	}
}
