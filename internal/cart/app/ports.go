package app

import (
	"context"

	"github.com/phonekart/storefront/internal/cart/domain"
)

// RemoteCart is the server side of the cart. FetchCart returns the full line
// list for a user; AddItem upserts one line at an absolute quantity and
// returns the confirmed line, on which the server is authoritative (price,
// availability). Checkout submits the whole cart.
type RemoteCart interface {
	FetchCart(ctx context.Context, userID string) ([]domain.LineItem, error)
	AddItem(ctx context.Context, userID string, item domain.LineItem) (domain.LineItem, error)
	RemoveItem(ctx context.Context, userID, productID string) error
	Checkout(ctx context.Context, userID string, items []domain.LineItem) error
}
