package usecase

import (
	"slices"

	"dunkstore-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// ReduceCart returns the state that results from applying action to state.
// It never mutates state and never performs I/O.
func ReduceCart(state domain.CartState, action domain.CartAction) domain.CartState {
	switch action.Type {
	case domain.ActionAddToCart:
		if action.Quantity < 1 {
			return state
		}
		items := slices.Clone(state.Items)
		if i := indexOfLine(items, action.Key); i >= 0 {
			items[i].Quantity += action.Quantity
		} else {
			items = append(items, domain.CartLine{
				Product:       action.Product,
				Quantity:      action.Quantity,
				SelectedSize:  action.Key.Size,
				SelectedColor: action.Key.Color,
			})
		}
		return withCartTotals(items)

	case domain.ActionRemoveFromCart:
		items := slices.DeleteFunc(slices.Clone(state.Items), func(l domain.CartLine) bool {
			return l.Key() == action.Key
		})
		return withCartTotals(items)

	case domain.ActionUpdateQuantity:
		if action.Quantity <= 0 {
			return ReduceCart(state, domain.RemoveFromCart(action.Key))
		}
		items := slices.Clone(state.Items)
		if i := indexOfLine(items, action.Key); i >= 0 {
			items[i].Quantity = action.Quantity
		}
		return withCartTotals(items)

	case domain.ActionClearCart:
		return domain.EmptyCart()

	case domain.ActionLoadCart:
		return normalizeCart(action.Snapshot)
	}
	return state
}

// normalizeCart drops lines with a non-positive quantity, merges lines that
// share a key and recomputes the derived fields.
func normalizeCart(snapshot domain.CartState) domain.CartState {
	items := make([]domain.CartLine, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		if line.Quantity < 1 {
			continue
		}
		if i := indexOfLine(items, line.Key()); i >= 0 {
			items[i].Quantity += line.Quantity
			continue
		}
		items = append(items, line)
	}
	return withCartTotals(items)
}

func indexOfLine(items []domain.CartLine, key domain.CartLineKey) int {
	return slices.IndexFunc(items, func(l domain.CartLine) bool {
		return l.Key() == key
	})
}

func withCartTotals(items []domain.CartLine) domain.CartState {
	if items == nil {
		items = []domain.CartLine{}
	}
	total := decimal.Zero
	count := 0
	for _, l := range items {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
		count += l.Quantity
	}
	return domain.CartState{
		Items:     items,
		Total:     total.InexactFloat64(),
		ItemCount: count,
	}
}
