package domain

import "github.com/shopspring/decimal"

// SyncStatus reflects the outcome of the most recent remote cart operation.
type SyncStatus int

const (
	StatusIdle SyncStatus = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s SyncStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ProductRef carries the product fields a cart needs when a line is first
// inserted. The unit price is captured at add time and not re-fetched.
type ProductRef struct {
	ProductID string
	Model     string
	Brand     string
	ImageRef  string
	UnitPrice decimal.Decimal
}

// LineItem is a single product entry in the cart. LineTotal is derived and
// only ever written by Totalize.
type LineItem struct {
	ProductID string
	Model     string
	Brand     string
	ImageRef  string
	UnitPrice decimal.Decimal
	Quantity  int64
	LineTotal decimal.Decimal
}

// Snapshot is the immutable cart state published after every store
// operation. Err is non-empty only when Status is StatusFailed.
type Snapshot struct {
	Items         []LineItem
	TotalQuantity int64
	TotalPrice    decimal.Decimal
	Status        SyncStatus
	Err           string
}

// Totalize recomputes every line total in place and returns the derived cart
// totals. It is the single chokepoint for total computation: callers must
// never adjust totals incrementally, only re-derive them from the full item
// list through this function.
func Totalize(items []LineItem) (totalQuantity int64, totalPrice decimal.Decimal) {
	totalPrice = decimal.Zero
	for i := range items {
		items[i].LineTotal = items[i].UnitPrice.Mul(decimal.NewFromInt(items[i].Quantity))
		totalQuantity += items[i].Quantity
		totalPrice = totalPrice.Add(items[i].LineTotal)
	}
	return totalQuantity, totalPrice
}
