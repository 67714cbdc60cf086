package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/phonekart/storefront/internal/catalog/domain"
)

var ErrInvalidProduct = errors.New("invalid product")

// ValidationError carries per-field messages from the vendor product form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product: %d field(s) rejected", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidProduct }

// Store holds the loaded catalog. A failed refresh keeps the previously
// loaded products, so the UI can keep rendering stale-but-present data.
type Store struct {
	remote RemoteCatalog
	log    *slog.Logger

	mu       sync.Mutex
	products []domain.Product
	status   domain.LoadStatus
	lastErr  string
	loadGen  uint64
}

func NewStore(remote RemoteCatalog, log *slog.Logger) *Store {
	return &Store{remote: remote, log: log}
}

// Load fetches the product catalog, replacing the local list on success.
// A stale response is discarded when a newer load has started since.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.status = domain.LoadInProgress
	s.mu.Unlock()

	products, err := s.remote.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return nil
	}
	if err != nil {
		s.status = domain.LoadFailed
		s.lastErr = err.Error()
		s.log.Warn("catalog load failed", slog.Any("err", err))
		return err
	}
	s.products = products
	s.status = domain.LoadSucceeded
	s.lastErr = ""
	return nil
}

// Products returns a copy of the loaded catalog.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks up one catalog entry by ID.
func (s *Store) Product(productID string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ProductID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FilterProducts returns the catalog entries matching the filter.
func (s *Store) FilterProducts(f domain.Filter) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Product
	for _, p := range s.products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Brands returns the distinct brands in the catalog, sorted.
func (s *Store) Brands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var brands []string
	for _, p := range s.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

// Status reports the outcome of the most recent load and its error message,
// empty unless the load failed.
func (s *Store) Status() (domain.LoadStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.lastErr
}

// Create validates a vendor-submitted product and registers it with the
// backend, appending the confirmed entry to the local catalog.
func (s *Store) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if fields := domain.Validate(p); fields != nil {
		return domain.Product{}, &ValidationError{Fields: fields}
	}

	created, err := s.remote.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, created)
	return created, nil
}
