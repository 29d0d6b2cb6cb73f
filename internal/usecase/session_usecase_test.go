package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"dunkstore-backend/internal/domain"
	infracache "dunkstore-backend/internal/infrastructure/cache"
	staticrepo "dunkstore-backend/internal/repository/static"
	"dunkstore-backend/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionUsecase(t *testing.T, slots domain.SlotStore, m *metrics.StoreMetrics) *SessionUsecase {
	t.Helper()
	return NewSessionUsecase(
		infracache.NewMemoryCache(time.Minute, time.Minute),
		slots,
		staticrepo.NewCatalogRepository(),
		SessionConfig{
			IdleTTL:     time.Minute,
			SlotTimeout: time.Second,
			AuthLatency: time.Millisecond,
			AuthTimeout: time.Second,
		},
		m,
	)
}

func TestSessionStoresAreReused(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	sessions := newSessionUsecase(t, newMemorySlots(t), metrics.NewStoreMetrics(reg))

	a1, err := sessions.Stores(ctx, "a")
	require.NoError(t, err)
	a2, err := sessions.Stores(ctx, "a")
	require.NoError(t, err)
	b, err := sessions.Stores(ctx, "b")
	require.NoError(t, err)

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
	assert.Equal(t, "a", a1.ID)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var active float64
	for _, mf := range mfs {
		if mf.GetName() == "shopper_sessions_active" {
			active = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, 2.0, active)
}

func TestSessionStoresRejectEmptyID(t *testing.T) {
	sessions := newSessionUsecase(t, newMemorySlots(t), nil)
	_, err := sessions.Stores(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionEvictedStoresRehydrate(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionUsecase(t, newMemorySlots(t), nil)

	stores, err := sessions.Stores(ctx, "shopper")
	require.NoError(t, err)
	_, err = stores.Cart.AddToCart(ctx, productByID(t, 1), "42", "Branco/Preto", 2)
	require.NoError(t, err)
	_, _, err = stores.Favorites.ToggleFavorite(ctx, productByID(t, 3))
	require.NoError(t, err)
	_, err = stores.Auth.Login(ctx, "a@b.com", "x")
	require.NoError(t, err)
	stores.Search.SetQuery("rosa")

	// Same as the idle TTL running out.
	sessions.live.Delete(sessionKey("shopper"))

	fresh, err := sessions.Stores(ctx, "shopper")
	require.NoError(t, err)
	assert.NotSame(t, stores, fresh)
	assert.Equal(t, stores.Cart.State(), fresh.Cart.State())
	assert.True(t, fresh.Favorites.IsFavorite(3))
	assert.True(t, fresh.Auth.IsAuthenticated())
	assert.Empty(t, fresh.Search.Query())
}

func TestSessionFailedHydrationIsNotCached(t *testing.T) {
	ctx := context.Background()
	slots := &flakySlots{SlotStore: newMemorySlots(t)}
	sessions := newSessionUsecase(t, slots, nil)

	stores, err := sessions.Stores(ctx, "shopper")
	require.NoError(t, err)
	_, err = stores.Cart.AddToCart(ctx, productByID(t, 1), "42", "Branco/Preto", 3)
	require.NoError(t, err)
	sessions.live.Delete(sessionKey("shopper"))
	sets := slots.setCount()

	slots.failNextGets(1)
	_, err = sessions.Stores(ctx, "shopper")
	require.ErrorIs(t, err, domain.ErrSlotUnavailable)
	_, cached := sessions.live.Get(sessionKey("shopper"))
	assert.False(t, cached)
	assert.Equal(t, sets, slots.setCount())

	restored, err := sessions.Stores(ctx, "shopper")
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Cart.State().ItemCount)
}

func TestSessionConcurrentFirstUseSharesBundle(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionUsecase(t, newMemorySlots(t), nil)

	const callers = 8
	got := make([]*SessionStores, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stores, err := sessions.Stores(ctx, "shopper")
			assert.NoError(t, err)
			got[i] = stores
		}()
	}
	wg.Wait()

	for _, stores := range got[1:] {
		assert.Same(t, got[0], stores)
	}
}

func TestSessionNewSessionIDIsUnique(t *testing.T) {
	sessions := newSessionUsecase(t, newMemorySlots(t), nil)
	a, b := sessions.NewSessionID(), sessions.NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestAddAllFavoritesToCart(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionUsecase(t, newMemorySlots(t), nil)
	stores, err := sessions.Stores(ctx, "shopper")
	require.NoError(t, err)

	for _, id := range []int{1, 3} {
		_, err := stores.Favorites.AddFavorite(ctx, productByID(t, id))
		require.NoError(t, err)
	}
	_, err = stores.Cart.AddToCart(ctx, productByID(t, 1), "38", "Branco/Preto", 1)
	require.NoError(t, err)

	state, err := stores.AddAllFavoritesToCart(ctx)
	require.NoError(t, err)
	require.Len(t, state.Items, 2)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, domain.CartLineKey{ProductID: 3, Size: "35", Color: "Rosa/Branco"}, state.Items[1].Key())
	assert.Equal(t, 3, state.ItemCount)
}

func TestAddAllFavoritesToCartCollectsErrors(t *testing.T) {
	ctx := context.Background()
	slots := &flakySlots{SlotStore: newMemorySlots(t)}
	sessions := newSessionUsecase(t, slots, nil)
	stores, err := sessions.Stores(ctx, "shopper")
	require.NoError(t, err)

	for _, id := range []int{2, 4} {
		_, err := stores.Favorites.AddFavorite(ctx, productByID(t, id))
		require.NoError(t, err)
	}

	slots.mu.Lock()
	slots.failSet = true
	slots.mu.Unlock()

	state, err := stores.AddAllFavoritesToCart(ctx)
	require.ErrorIs(t, err, errSlotDown)
	assert.Equal(t, 2, state.ItemCount)
}
