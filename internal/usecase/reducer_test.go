package usecase

import (
	"testing"

	"dunkstore-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceCartMergesSameLine(t *testing.T) {
	p := productByID(t, 1)

	state := domain.EmptyCart()
	state = ReduceCart(state, domain.AddToCart(p, "42", "Branco/Preto", 1))
	state = ReduceCart(state, domain.AddToCart(p, "42", "Branco/Preto", 2))

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 3, state.ItemCount)
	assert.Equal(t, 2699.97, state.Total)
}

func TestReduceCartSeparatesVariants(t *testing.T) {
	p1 := productByID(t, 1)
	p2 := productByID(t, 2)

	state := domain.EmptyCart()
	state = ReduceCart(state, domain.AddToCart(p1, "42", "Branco/Preto", 1))
	state = ReduceCart(state, domain.AddToCart(p1, "41", "Branco/Preto", 2))
	state = ReduceCart(state, domain.AddToCart(p1, "42", "Preto/Branco", 1))
	state = ReduceCart(state, domain.AddToCart(p2, "40", "Azul Marinho", 4))

	require.Len(t, state.Items, 4)
	assert.Equal(t, 8, state.ItemCount)
	assert.Equal(t, 899.99*4+749.99*4, state.Total)
}

func TestReduceCartTotalsAreSums(t *testing.T) {
	p := productByID(t, 3)
	quantities := []int{1, 5, 2, 7}

	state := domain.EmptyCart()
	sum := 0
	for _, q := range quantities {
		state = ReduceCart(state, domain.AddToCart(p, "37", "Rosa Claro", q))
		sum += q
	}

	require.Len(t, state.Items, 1)
	assert.Equal(t, sum, state.Items[0].Quantity)
	assert.Equal(t, sum, state.ItemCount)
	assert.InDelta(t, 1099.99*float64(sum), state.Total, 1e-9)
}

func TestReduceCartIgnoresNonPositiveAdd(t *testing.T) {
	p := productByID(t, 1)
	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p, "42", "Branco/Preto", 0))
	state = ReduceCart(state, domain.AddToCart(p, "42", "Branco/Preto", -3))

	assert.Empty(t, state.Items)
	assert.Zero(t, state.ItemCount)
}

func TestReduceCartRemoveThenAdd(t *testing.T) {
	p := productByID(t, 1)
	key := domain.CartLineKey{ProductID: 1, Size: "42", Color: "Branco/Preto"}

	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p, key.Size, key.Color, 5))
	state = ReduceCart(state, domain.RemoveFromCart(key))
	assert.Empty(t, state.Items)

	state = ReduceCart(state, domain.AddToCart(p, key.Size, key.Color, 2))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestReduceCartRemoveMissingIsNoop(t *testing.T) {
	p := productByID(t, 1)
	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p, "42", "Branco/Preto", 1))

	after := ReduceCart(state, domain.RemoveFromCart(domain.CartLineKey{ProductID: 1, Size: "43", Color: "Branco/Preto"}))
	assert.Equal(t, state, after)
}

func TestReduceCartUpdateQuantity(t *testing.T) {
	p := productByID(t, 2)
	key := domain.CartLineKey{ProductID: 2, Size: "40", Color: "Azul Marinho"}
	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p, key.Size, key.Color, 3))

	updated := ReduceCart(state, domain.UpdateQuantity(key, 1))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1, updated.Items[0].Quantity)
	assert.Equal(t, 749.99, updated.Total)

	missing := ReduceCart(state, domain.UpdateQuantity(domain.CartLineKey{ProductID: 99}, 4))
	assert.Equal(t, state, missing)
}

func TestReduceCartUpdateToZeroEqualsRemove(t *testing.T) {
	p1 := productByID(t, 1)
	p2 := productByID(t, 2)
	key := domain.CartLineKey{ProductID: 1, Size: "42", Color: "Branco/Preto"}

	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p1, key.Size, key.Color, 2))
	state = ReduceCart(state, domain.AddToCart(p2, "40", "Azul Marinho", 1))

	for _, q := range []int{0, -1} {
		assert.Equal(t,
			ReduceCart(state, domain.RemoveFromCart(key)),
			ReduceCart(state, domain.UpdateQuantity(key, q)),
		)
	}
}

func TestReduceCartDoesNotMutateInput(t *testing.T) {
	p := productByID(t, 1)
	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p, "42", "Branco/Preto", 1))
	before := state.Items[0].Quantity

	_ = ReduceCart(state, domain.AddToCart(p, "42", "Branco/Preto", 4))
	_ = ReduceCart(state, domain.UpdateQuantity(state.Items[0].Key(), 9))

	assert.Equal(t, before, state.Items[0].Quantity)
}

func TestReduceCartClear(t *testing.T) {
	p := productByID(t, 1)
	state := ReduceCart(domain.EmptyCart(), domain.AddToCart(p, "42", "Branco/Preto", 1))

	cleared := ReduceCart(state, domain.ClearCart())
	assert.Equal(t, domain.EmptyCart(), cleared)
	assert.NotNil(t, cleared.Items)
}

func TestReduceCartLoadNormalizes(t *testing.T) {
	p := productByID(t, 1)
	snapshot := domain.CartState{
		Items: []domain.CartLine{
			{Product: p, Quantity: 2, SelectedSize: "42", SelectedColor: "Branco/Preto"},
			{Product: p, Quantity: 0, SelectedSize: "41", SelectedColor: "Branco/Preto"},
			{Product: p, Quantity: 1, SelectedSize: "42", SelectedColor: "Branco/Preto"},
		},
		Total:     1,
		ItemCount: 42,
	}

	state := ReduceCart(domain.EmptyCart(), domain.LoadCart(snapshot))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.ItemCount)
	assert.Equal(t, 2699.97, state.Total)
}

func TestReduceFavorites(t *testing.T) {
	p1 := productByID(t, 1)
	p2 := productByID(t, 2)

	state := ReduceFavorites(domain.EmptyFavorites(), domain.AddToFavorites(p1))
	state = ReduceFavorites(state, domain.AddToFavorites(p2))
	state = ReduceFavorites(state, domain.AddToFavorites(p1))
	assert.Equal(t, 2, state.Count)

	state = ReduceFavorites(state, domain.RemoveFromFavorites(1))
	assert.Equal(t, 1, state.Count)
	assert.False(t, state.Contains(1))
	assert.True(t, state.Contains(2))

	same := ReduceFavorites(state, domain.RemoveFromFavorites(42))
	assert.Equal(t, state, same)

	assert.Equal(t, domain.EmptyFavorites(), ReduceFavorites(state, domain.ClearFavorites()))
}

func TestReduceFavoritesLoadDropsDuplicates(t *testing.T) {
	p1 := productByID(t, 1)
	p2 := productByID(t, 2)

	state := ReduceFavorites(domain.EmptyFavorites(), domain.LoadFavorites(domain.FavoritesState{
		Items: []domain.Product{p1, p2, p1},
		Count: 7,
	}))
	assert.Equal(t, 2, state.Count)
	assert.Equal(t, []int{1, 2}, []int{state.Items[0].ID, state.Items[1].ID})
}
