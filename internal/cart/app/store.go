package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/phonekart/storefront/internal/cart/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// Store is the single source of truth for the cart. Local mutations are
// synchronous and atomic; server-backed operations apply the change
// optimistically, then commit the server's answer or roll back to the state
// captured before the change. Totals are always re-derived from the full
// item list via domain.Totalize, never patched incrementally.
type Store struct {
	remote RemoteCart
	log    *slog.Logger

	mu         sync.Mutex
	items      []domain.LineItem
	totalQty   int64
	totalPrice decimal.Decimal
	status     domain.SyncStatus
	lastErr    string

	// loadGen tags each Load so that a stale response, completing after a
	// newer Load started, is discarded instead of overwriting fresh state.
	loadGen uint64

	subs    map[int]chan domain.Snapshot
	nextSub int
}

func NewStore(remote RemoteCart, log *slog.Logger) *Store {
	return &Store{
		remote:     remote,
		log:        log,
		totalPrice: decimal.Zero,
		subs:       make(map[int]chan domain.Snapshot),
	}
}

// Subscribe returns a channel receiving the cart snapshot published after
// each operation, and a cancel function releasing the subscription. A slow
// consumer only ever misses intermediate snapshots, never the latest one.
func (s *Store) Subscribe() (<-chan domain.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan domain.Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Snapshot returns the current cart state as an immutable value.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Quantity returns the current quantity for a product, zero if absent.
func (s *Store) Quantity(productID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(productID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

// Load fetches the server-side cart and replaces the local items wholesale.
// An empty userID is a local no-op: an unauthenticated cart is legitimately
// empty. On failure the prior items are preserved.
func (s *Store) Load(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return nil
	}

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.status = domain.StatusLoading
	s.publishLocked()
	s.mu.Unlock()

	items, err := s.remote.FetchCart(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		s.log.Debug("discarding stale cart load", slog.String("user_id", userID))
		return nil
	}
	if err != nil {
		s.failLocked("load cart", err)
		return err
	}
	s.items = items
	s.settleLocked()
	return nil
}

// AddOrUpdate merges a quantity delta into the local cart. An existing line
// absorbs the delta; a delta driving the quantity to zero or below removes
// the line; a positive delta for an unknown product inserts a new line. No
// server call is made: signed-in flows pair this with SyncAdd/SyncRemove.
func (s *Store) AddOrUpdate(p domain.ProductRef, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(p.ProductID); i >= 0 {
		s.setQuantityLocked(i, s.items[i].Quantity+delta)
	} else if delta > 0 {
		s.items = append(s.items, newLine(p, delta))
	}
	s.recomputeLocked()
	s.publishLocked()
}

// SyncAdd persists an absolute quantity for a product in the user's cart.
// The change is applied locally first; if the server rejects it, the cart is
// rolled back to the state captured before the call and the error surfaces
// in the snapshot. On success the server-confirmed line is committed.
func (s *Store) SyncAdd(ctx context.Context, userID string, p domain.ProductRef, quantity int64) error {
	if quantity <= 0 {
		return s.SyncRemove(ctx, userID, p.ProductID)
	}

	s.mu.Lock()
	prev := cloneItems(s.items)
	if i := s.indexLocked(p.ProductID); i >= 0 {
		s.setQuantityLocked(i, quantity)
	} else {
		s.items = append(s.items, newLine(p, quantity))
	}
	s.status = domain.StatusLoading
	s.recomputeLocked()
	s.publishLocked()
	desired := newLine(p, quantity)
	s.mu.Unlock()

	confirmed, err := s.remote.AddItem(ctx, userID, desired)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = prev
		s.recomputeLocked()
		s.failLocked("sync cart quantity", err)
		return err
	}
	s.mergeLineLocked(confirmed)
	s.settleLocked()
	return nil
}

// Remove drops a line locally without contacting the server.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.recomputeLocked()
	s.publishLocked()
}

// SyncRemove removes a line locally and confirms the removal with the
// server, restoring the captured state if the server call fails.
func (s *Store) SyncRemove(ctx context.Context, userID, productID string) error {
	s.mu.Lock()
	prev := cloneItems(s.items)
	if i := s.indexLocked(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.status = domain.StatusLoading
	s.recomputeLocked()
	s.publishLocked()
	s.mu.Unlock()

	err := s.remote.RemoveItem(ctx, userID, productID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = prev
		s.recomputeLocked()
		s.failLocked("remove cart item", err)
		return err
	}
	s.settleLocked()
	return nil
}

// Clear empties the cart and zeroes both totals.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.status = domain.StatusIdle
	s.lastErr = ""
	s.recomputeLocked()
	s.publishLocked()
}

// Checkout submits the current items for the user. Success clears the cart;
// failure leaves it intact with the error surfaced. The call is never
// retried automatically.
func (s *Store) Checkout(ctx context.Context, userID string) error {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return ErrEmptyCart
	}
	items := cloneItems(s.items)
	s.status = domain.StatusLoading
	s.publishLocked()
	s.mu.Unlock()

	err := s.remote.Checkout(ctx, userID, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failLocked("checkout", err)
		return err
	}
	s.items = nil
	s.settleLocked()
	return nil
}

func (s *Store) indexLocked(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// setQuantityLocked sets the quantity of the line at index i, removing the
// line when the quantity drops to zero or below. No zero-quantity line is
// ever observable.
func (s *Store) setQuantityLocked(i int, quantity int64) {
	if quantity <= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return
	}
	s.items[i].Quantity = quantity
}

// mergeLineLocked commits a server-confirmed line into the cart, replacing
// the matching line or appending when absent.
func (s *Store) mergeLineLocked(line domain.LineItem) {
	if line.Quantity <= 0 {
		if i := s.indexLocked(line.ProductID); i >= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		return
	}
	if i := s.indexLocked(line.ProductID); i >= 0 {
		s.items[i] = line
		return
	}
	s.items = append(s.items, line)
}

func (s *Store) recomputeLocked() {
	s.totalQty, s.totalPrice = domain.Totalize(s.items)
}

// settleLocked marks the last remote operation successful, recomputes and
// publishes.
func (s *Store) settleLocked() {
	s.status = domain.StatusSucceeded
	s.lastErr = ""
	s.recomputeLocked()
	s.publishLocked()
}

func (s *Store) failLocked(op string, err error) {
	s.status = domain.StatusFailed
	s.lastErr = err.Error()
	s.log.Warn("cart operation failed", slog.String("op", op), slog.Any("err", err))
	s.publishLocked()
}

func (s *Store) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Items:         cloneItems(s.items),
		TotalQuantity: s.totalQty,
		TotalPrice:    s.totalPrice,
		Status:        s.status,
		Err:           s.lastErr,
	}
}

func (s *Store) publishLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		// Replace a pending snapshot rather than blocking the store.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func newLine(p domain.ProductRef, quantity int64) domain.LineItem {
	return domain.LineItem{
		ProductID: p.ProductID,
		Model:     p.Model,
		Brand:     p.Brand,
		ImageRef:  p.ImageRef,
		UnitPrice: p.UnitPrice,
		Quantity:  quantity,
	}
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	if items == nil {
		return nil
	}
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
