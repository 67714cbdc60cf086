package app

import (
	"context"

	"github.com/phonekart/storefront/internal/catalog/domain"
)

type RemoteCatalog interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
}
