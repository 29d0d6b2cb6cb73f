package usecase

import (
	"context"
	"testing"
	"time"

	"dunkstore-backend/config"
	"dunkstore-backend/internal/domain"
	infracache "dunkstore-backend/internal/infrastructure/cache"
	staticrepo "dunkstore-backend/internal/repository/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUsecase(t *testing.T) *CatalogUsecase {
	t.Helper()
	return NewCatalogUsecase(
		staticrepo.NewCatalogRepository(),
		infracache.NewMemoryCache(time.Minute, time.Minute),
		&config.Config{CacheCatalogTTL: time.Minute},
	)
}

func TestCatalogFilterProducts(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUsecase(t)

	all, err := uc.FilterProducts(ctx, domain.ProductFilter{Gender: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	male, err := uc.FilterProducts(ctx, domain.ProductFilter{Gender: "masculino"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, productIDs(male))

	lo, hi := 800.0, 1000.0
	mid, err := uc.FilterProducts(ctx, domain.ProductFilter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 6}, productIDs(mid))

	exact := 899.99
	edge, err := uc.FilterProducts(ctx, domain.ProductFilter{MinPrice: &exact, MaxPrice: &exact})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, productIDs(edge))
}

func TestCatalogProductDetails(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUsecase(t)

	details, err := uc.GetProductDetails(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, details.ID)
	assert.Equal(t, 25, details.Discount)
	assert.Equal(t, 4.6, details.AverageRating)
	assert.Equal(t, 5, details.ReviewCount)
	assert.Len(t, details.ReviewList, 5)

	_, err = uc.GetProductDetails(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogReviews(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUsecase(t)

	avg, err := uc.GetAverageRating(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.7, avg)

	avg, err = uc.GetAverageRating(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.7, avg)

	avg, err = uc.GetAverageRating(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, avg)

	count, err := uc.GetReviewsCount(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	reviews, err := uc.GetReviewsByProductID(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestCatalogFAQ(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUsecase(t)

	cats, err := uc.GetFAQCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Pedidos e Entrega",
		"Produtos e Autenticidade",
		"Trocas e Devoluções",
		"Pagamento",
		"Conta e Cadastro",
	}, cats)

	cats[0] = "mutated"
	again, err := uc.GetFAQCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pedidos e Entrega", again[0])

	payment, err := uc.ListFAQ(ctx, "Pagamento")
	require.NoError(t, err)
	assert.Len(t, payment, 3)

	all, err := uc.ListFAQ(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 15)

	found, err := uc.SearchFAQ(ctx, "PIX")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 10, found[0].ID)

	everything, err := uc.SearchFAQ(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everything, 15)
}

func TestCatalogOrders(t *testing.T) {
	ctx := context.Background()
	uc := newCatalogUsecase(t)

	orders, err := uc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	order, err := uc.GetOrderByID(ctx, "DK2024001")
	require.NoError(t, err)
	assert.Equal(t, "Entregue", order.StatusText)

	_, err = uc.GetOrderByID(ctx, "DK0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
