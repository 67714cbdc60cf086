package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/phonekart/storefront/internal/catalog/domain"
)

type fakeCatalog struct {
	products []domain.Product
	fetchErr error
	createFn func(p domain.Product) (domain.Product, error)
}

func (f *fakeCatalog) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.products, nil
}

func (f *fakeCatalog) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if f.createFn != nil {
		return f.createFn(p)
	}
	return p, nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "PRD0001", Model: "Nova X", Brand: "Acme", Price: decimal.NewFromInt(15000)},
		{ProductID: "PRD0002", Model: "Pulse 9", Brand: "Bolt", Price: decimal.NewFromInt(42000)},
		{ProductID: "PRD0003", Model: "Nova Lite", Brand: "Acme", Price: decimal.NewFromInt(9000)},
	}
}

func newLoadedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(&fakeCatalog{products: sampleProducts()}, slog.New(slog.DiscardHandler))
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestLoadTracksStatus(t *testing.T) {
	store := newLoadedStore(t)

	status, msg := store.Status()
	require.Equal(t, domain.LoadSucceeded, status)
	require.Empty(t, msg)
	require.Len(t, store.Products(), 3)
}

func TestFailedLoadPreservesProducts(t *testing.T) {
	remote := &fakeCatalog{products: sampleProducts()}
	store := NewStore(remote, slog.New(slog.DiscardHandler))
	require.NoError(t, store.Load(context.Background()))

	remote.fetchErr = errors.New("catalog unavailable")
	require.Error(t, store.Load(context.Background()))

	status, msg := store.Status()
	require.Equal(t, domain.LoadFailed, status)
	require.NotEmpty(t, msg)
	// Stale-but-present beats empty.
	require.Len(t, store.Products(), 3)
}

func TestFilterProducts(t *testing.T) {
	store := newLoadedStore(t)

	t.Run("by brand", func(t *testing.T) {
		got := store.FilterProducts(domain.Filter{Brand: "Acme"})
		require.Len(t, got, 2)
	})

	t.Run("by price range", func(t *testing.T) {
		got := store.FilterProducts(domain.Filter{
			MinPrice: decimal.NewFromInt(10000),
			MaxPrice: decimal.NewFromInt(20000),
		})
		require.Len(t, got, 1)
		require.Equal(t, "PRD0001", got[0].ProductID)
	})

	t.Run("zero max price means unbounded", func(t *testing.T) {
		got := store.FilterProducts(domain.Filter{MinPrice: decimal.NewFromInt(10000)})
		require.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		got := store.FilterProducts(domain.Filter{Brand: "Nope"})
		require.Empty(t, got)
	})
}

func TestBrands(t *testing.T) {
	store := newLoadedStore(t)
	require.Equal(t, []string{"Acme", "Bolt"}, store.Brands())
}

func TestCreateValidates(t *testing.T) {
	store := newLoadedStore(t)

	_, err := store.Create(context.Background(), domain.Product{ProductID: "bad-id"})
	require.ErrorIs(t, err, ErrInvalidProduct)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "productId")
	require.Contains(t, verr.Fields, "price")
}

func TestCreateAppendsConfirmedProduct(t *testing.T) {
	store := newLoadedStore(t)

	created, err := store.Create(context.Background(), domain.Product{
		ProductID:   "PRD0100",
		Model:       "Vertex 2",
		Brand:       "Crux",
		Description: "flagship",
		Price:       decimal.NewFromInt(55000),
		Quantity:    10,
		Color:       "black",
		Features:    "fast, light",
	})
	require.NoError(t, err)
	require.Equal(t, "PRD0100", created.ProductID)

	_, ok := store.Product("PRD0100")
	require.True(t, ok)
}
