package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/metrics"
)

// CartUsecase owns one shopper's cart. Every transition goes through
// ReduceCart and is then written to the cart slot before returning.
type CartUsecase struct {
	mu        sync.Mutex
	state     domain.CartState
	persister *slotPersister
	metrics   *metrics.StoreMetrics
}

// NewCartUsecase builds a cart for namespace and rehydrates it from slots.
// It fails when the slot exists but cannot be read.
func NewCartUsecase(ctx context.Context, slots domain.SlotStore, namespace string, slotTimeout time.Duration, m *metrics.StoreMetrics) (*CartUsecase, error) {
	u := &CartUsecase{
		state:     domain.EmptyCart(),
		persister: newSlotPersister(slots, domain.SlotKey(namespace, domain.SlotKeyCart), storeCart, slotTimeout, m),
		metrics:   m,
	}

	var snapshot domain.CartState
	restored, err := u.persister.load(ctx, &snapshot)
	if err != nil {
		return nil, err
	}
	if restored {
		u.state = ReduceCart(u.state, domain.LoadCart(snapshot))
	}
	return u, nil
}

// State returns a copy of the current cart.
func (u *CartUsecase) State() domain.CartState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return copyCart(u.state)
}

// AddToCart merges quantity into the (product, size, color) line or appends
// a new one. Size and color are not checked against the product.
func (u *CartUsecase) AddToCart(ctx context.Context, product domain.Product, size, color string, quantity int) (domain.CartState, error) {
	return u.dispatch(ctx, domain.AddToCart(product, size, color, quantity))
}

func (u *CartUsecase) RemoveFromCart(ctx context.Context, productID int, size, color string) (domain.CartState, error) {
	return u.dispatch(ctx, domain.RemoveFromCart(domain.CartLineKey{ProductID: productID, Size: size, Color: color}))
}

// UpdateQuantity sets the line quantity. A quantity of zero or less removes the line.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, productID int, size, color string, quantity int) (domain.CartState, error) {
	return u.dispatch(ctx, domain.UpdateQuantity(domain.CartLineKey{ProductID: productID, Size: size, Color: color}, quantity))
}

func (u *CartUsecase) ClearCart(ctx context.Context) (domain.CartState, error) {
	return u.dispatch(ctx, domain.ClearCart())
}

// dispatch applies the action in memory, then persists the new snapshot.
// A failed write is returned but does not roll the state back.
func (u *CartUsecase) dispatch(ctx context.Context, action domain.CartAction) (domain.CartState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state = ReduceCart(u.state, action)
	u.metrics.IncAction(storeCart, string(action.Type))

	if err := u.persister.save(ctx, u.state); err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("action", string(action.Type)).Msg("Cart snapshot not persisted")
		return copyCart(u.state), err
	}
	return copyCart(u.state), nil
}

func copyCart(s domain.CartState) domain.CartState {
	s.Items = slices.Clone(s.Items)
	if s.Items == nil {
		s.Items = []domain.CartLine{}
	}
	return s
}
