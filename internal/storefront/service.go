package storefront

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/phonekart/storefront/internal/account"
	cartapp "github.com/phonekart/storefront/internal/cart/app"
	cartdomain "github.com/phonekart/storefront/internal/cart/domain"
	catalogapp "github.com/phonekart/storefront/internal/catalog/app"
	"github.com/phonekart/storefront/internal/route"
	"github.com/phonekart/storefront/internal/session"
)

// AccountAPI is the auth/registration surface the facade depends on.
type AccountAPI interface {
	Login(ctx context.Context, creds account.Credentials) (session.Info, error)
	Register(ctx context.Context, form account.RegistrationForm) error
}

// Service wires the session holder, catalog store and cart store into the
// user-facing workflows. The holder is passed in at construction; nothing
// here re-reads the session file.
type Service struct {
	log     *slog.Logger
	session *session.Holder
	acct    AccountAPI
	catalog *catalogapp.Store
	cart    *cartapp.Store
}

func New(sess *session.Holder, acct AccountAPI, catalog *catalogapp.Store, cart *cartapp.Store, log *slog.Logger) *Service {
	return &Service{
		log:     log,
		session: sess,
		acct:    acct,
		catalog: catalog,
		cart:    cart,
	}
}

func (s *Service) Session() *session.Holder   { return s.session }
func (s *Service) Catalog() *catalogapp.Store { return s.catalog }
func (s *Service) Cart() *cartapp.Store       { return s.cart }

// Bootstrap loads the catalog and, when signed in, the user's cart in
// parallel. Either failure is already reflected in the owning store's
// state; the combined error is returned for logging.
func (s *Service) Bootstrap(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.catalog.Load(ctx)
	})
	if userID, ok := s.session.CurrentUserID(); ok {
		g.Go(func() error {
			return s.cart.Load(ctx, userID)
		})
	}
	return g.Wait()
}

// Login signs the user in, persists the session record and pulls their
// server-side cart. A cart load failure does not fail the login: the cart
// store already carries the error and the stale-empty cart.
func (s *Service) Login(ctx context.Context, creds account.Credentials) (session.Info, error) {
	info, err := s.acct.Login(ctx, creds)
	if err != nil {
		return session.Info{}, err
	}
	if err := s.session.Set(info); err != nil {
		return session.Info{}, err
	}
	if err := s.cart.Load(ctx, info.UserID); err != nil {
		s.log.Warn("cart load after login failed", slog.String("user_id", info.UserID), slog.Any("err", err))
	}
	return info, nil
}

// Logout discards the cart and the persisted session record.
func (s *Service) Logout() error {
	s.cart.Clear()
	return s.session.Clear()
}

// Register submits a registration form.
func (s *Service) Register(ctx context.Context, form account.RegistrationForm) error {
	return s.acct.Register(ctx, form)
}

// Home returns the route the current session should land on.
func (s *Service) Home() string {
	return route.Default(s.session.Role())
}

// AddToCart applies a quantity delta for a catalog product. Signed-in users
// get the optimistic-then-confirm path with rollback; guests keep a purely
// local cart that is replaced on their next login.
func (s *Service) AddToCart(ctx context.Context, productID string, delta int64) error {
	p, ok := s.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("unknown product %q", productID)
	}
	ref := cartdomain.ProductRef{
		ProductID: p.ProductID,
		Model:     p.Model,
		Brand:     p.Brand,
		ImageRef:  p.ImageRef,
		UnitPrice: p.Price,
	}

	userID, signedIn := s.session.CurrentUserID()
	if !signedIn {
		s.cart.AddOrUpdate(ref, delta)
		return nil
	}

	target := s.cart.Quantity(productID) + delta
	if target <= 0 {
		return s.cart.SyncRemove(ctx, userID, productID)
	}
	return s.cart.SyncAdd(ctx, userID, ref, target)
}

// RemoveFromCart drops a line entirely, confirming with the server when
// signed in.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) error {
	userID, signedIn := s.session.CurrentUserID()
	if !signedIn {
		s.cart.Remove(productID)
		return nil
	}
	return s.cart.SyncRemove(ctx, userID, productID)
}

// Checkout submits the cart for the signed-in user. On success the cart is
// already cleared by the store and the caller can navigate home.
func (s *Service) Checkout(ctx context.Context) error {
	userID, signedIn := s.session.CurrentUserID()
	if !signedIn {
		return fmt.Errorf("sign in before checking out")
	}
	return s.cart.Checkout(ctx, userID)
}
