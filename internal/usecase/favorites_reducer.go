package usecase

import (
	"slices"

	"dunkstore-backend/internal/domain"
)

// ReduceFavorites is the pure transition function of the favorites set.
func ReduceFavorites(state domain.FavoritesState, action domain.FavoritesAction) domain.FavoritesState {
	switch action.Type {
	case domain.ActionAddToFavorites:
		if state.Contains(action.Product.ID) {
			return state
		}
		return withFavoritesCount(append(slices.Clone(state.Items), action.Product))

	case domain.ActionRemoveFromFavorites:
		if !state.Contains(action.ProductID) {
			return state
		}
		return withFavoritesCount(slices.DeleteFunc(slices.Clone(state.Items), func(p domain.Product) bool {
			return p.ID == action.ProductID
		}))

	case domain.ActionClearFavorites:
		return domain.EmptyFavorites()

	case domain.ActionLoadFavorites:
		items := make([]domain.Product, 0, len(action.Snapshot.Items))
		seen := make(map[int]struct{}, len(action.Snapshot.Items))
		for _, p := range action.Snapshot.Items {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			items = append(items, p)
		}
		return withFavoritesCount(items)
	}
	return state
}

func withFavoritesCount(items []domain.Product) domain.FavoritesState {
	if items == nil {
		items = []domain.Product{}
	}
	return domain.FavoritesState{Items: items, Count: len(items)}
}
