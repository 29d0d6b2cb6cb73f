package usecase

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/metrics"
)

// FavoritesUsecase owns one shopper's liked-products set.
type FavoritesUsecase struct {
	mu        sync.Mutex
	state     domain.FavoritesState
	persister *slotPersister
	metrics   *metrics.StoreMetrics
}

func NewFavoritesUsecase(ctx context.Context, slots domain.SlotStore, namespace string, slotTimeout time.Duration, m *metrics.StoreMetrics) (*FavoritesUsecase, error) {
	u := &FavoritesUsecase{
		state:     domain.EmptyFavorites(),
		persister: newSlotPersister(slots, domain.SlotKey(namespace, domain.SlotKeyFavorites), storeFavorites, slotTimeout, m),
		metrics:   m,
	}

	var snapshot domain.FavoritesState
	restored, err := u.persister.load(ctx, &snapshot)
	if err != nil {
		return nil, err
	}
	if restored {
		u.state = ReduceFavorites(u.state, domain.LoadFavorites(snapshot))
	}
	return u, nil
}

func (u *FavoritesUsecase) State() domain.FavoritesState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return copyFavorites(u.state)
}

func (u *FavoritesUsecase) IsFavorite(productID int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Contains(productID)
}

// ToggleFavorite adds product when absent and removes it when present.
// added reports which of the two happened.
func (u *FavoritesUsecase) ToggleFavorite(ctx context.Context, product domain.Product) (state domain.FavoritesState, added bool, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	action := domain.AddToFavorites(product)
	if u.state.Contains(product.ID) {
		action = domain.RemoveFromFavorites(product.ID)
	}
	state, err = u.dispatchLocked(ctx, action)
	return state, action.Type == domain.ActionAddToFavorites, err
}

func (u *FavoritesUsecase) AddFavorite(ctx context.Context, product domain.Product) (domain.FavoritesState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.dispatchLocked(ctx, domain.AddToFavorites(product))
}

func (u *FavoritesUsecase) RemoveFavorite(ctx context.Context, productID int) (domain.FavoritesState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.dispatchLocked(ctx, domain.RemoveFromFavorites(productID))
}

func (u *FavoritesUsecase) ClearFavorites(ctx context.Context) (domain.FavoritesState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.dispatchLocked(ctx, domain.ClearFavorites())
}

// List returns the favorites ordered by sortBy. Unknown values sort by
// most recent, which is the highest product ID first.
func (u *FavoritesUsecase) List(sortBy string) []domain.Product {
	items := u.State().Items

	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case domain.SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case domain.SortName:
		sortByName(items)
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	}
	return items
}

func (u *FavoritesUsecase) dispatchLocked(ctx context.Context, action domain.FavoritesAction) (domain.FavoritesState, error) {
	u.state = ReduceFavorites(u.state, action)
	u.metrics.IncAction(storeFavorites, string(action.Type))

	if err := u.persister.save(ctx, u.state); err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("action", string(action.Type)).Msg("Favorites snapshot not persisted")
		return copyFavorites(u.state), err
	}
	return copyFavorites(u.state), nil
}

func copyFavorites(s domain.FavoritesState) domain.FavoritesState {
	s.Items = slices.Clone(s.Items)
	if s.Items == nil {
		s.Items = []domain.Product{}
	}
	return s
}
