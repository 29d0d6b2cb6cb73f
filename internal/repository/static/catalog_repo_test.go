package staticrepo

import (
	"context"
	"testing"

	"dunkstore-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProducts(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	seen := map[int]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Sizes)
		assert.NotEmpty(t, p.Colors)
		assert.Len(t, p.Features, 5)
		assert.Equal(t, "Nike", p.Brand)
	}

	p1, err := repo.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 899.99, p1.Price)
	assert.Equal(t, []string{"38", "39", "40", "41", "42", "43"}, p1.Sizes)
	require.NotNil(t, p1.OriginalPrice)
	assert.Nil(t, products[3].Badge)

	_, err = repo.GetProductByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	products[0].Colors[0] = "Verde"
	products[0].Name = "changed"

	again, err := repo.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Branco/Preto", again.Colors[0])
	assert.Equal(t, "Nike Dunk Low Retro White/Black", again.Name)
}

func TestCatalogFAQReviewsOrders(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	faq, err := repo.ListFAQ(ctx)
	require.NoError(t, err)
	assert.Len(t, faq, 15)

	reviews, err := repo.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 18)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "Entregue", orders[0].StatusText)
	assert.Equal(t, "Pagamento Confirmado", orders[2].StatusText)
	assert.Nil(t, orders[2].TrackingCode)
}
