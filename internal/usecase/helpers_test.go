package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dunkstore-backend/internal/domain"
	infracache "dunkstore-backend/internal/infrastructure/cache"
	slotrepo "dunkstore-backend/internal/repository/slot"
	staticrepo "dunkstore-backend/internal/repository/static"
	"dunkstore-backend/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

var errSlotDown = errors.New("slot backend unavailable")

func newMemorySlots(t *testing.T) slotrepo.Store {
	t.Helper()
	s := slotrepo.NewMemoryStore(infracache.NewMemoryCache(time.Minute, time.Minute))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func openCart(t *testing.T, ctx context.Context, slots domain.SlotStore, namespace string, slotTimeout time.Duration, m *metrics.StoreMetrics) *CartUsecase {
	t.Helper()
	u, err := NewCartUsecase(ctx, slots, namespace, slotTimeout, m)
	require.NoError(t, err)
	return u
}

func openFavorites(t *testing.T, ctx context.Context, slots domain.SlotStore, namespace string, slotTimeout time.Duration, m *metrics.StoreMetrics) *FavoritesUsecase {
	t.Helper()
	u, err := NewFavoritesUsecase(ctx, slots, namespace, slotTimeout, m)
	require.NoError(t, err)
	return u
}

func openAuth(t *testing.T, ctx context.Context, slots domain.SlotStore, namespace string, cfg AuthConfig, m *metrics.StoreMetrics) *AuthUsecase {
	t.Helper()
	u, err := NewAuthUsecase(ctx, slots, namespace, cfg, m)
	require.NoError(t, err)
	return u
}

func sampleCatalog(t *testing.T) []domain.Product {
	t.Helper()
	products, err := staticrepo.NewCatalogRepository().ListProducts(context.Background())
	require.NoError(t, err)
	return products
}

func productByID(t *testing.T, id int) domain.Product {
	t.Helper()
	for _, p := range sampleCatalog(t) {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("product %d not in catalog", id)
	return domain.Product{}
}

// flakySlots wraps a store. Writes fail while failSet is true and the next
// getFailures reads fail.
type flakySlots struct {
	domain.SlotStore

	mu          sync.Mutex
	failSet     bool
	getFailures int
	sets        int
}

func (f *flakySlots) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.getFailures > 0
	if fail {
		f.getFailures--
	}
	f.mu.Unlock()
	if fail {
		return nil, errSlotDown
	}
	return f.SlotStore.Get(ctx, key)
}

func (f *flakySlots) failNextGets(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getFailures = n
}

func (f *flakySlots) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	f.sets++
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return errSlotDown
	}
	return f.SlotStore.Set(ctx, key, value)
}

func (f *flakySlots) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

// counterValue reads one labelled counter from reg, or 0 when it was never set.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m.GetLabel(), labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, lp := range pairs {
		if want[lp.GetName()] != lp.GetValue() {
			return false
		}
	}
	return true
}
