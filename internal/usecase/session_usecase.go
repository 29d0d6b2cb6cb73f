package usecase

import (
	"context"
	"fmt"
	"time"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/cache"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/metrics"
	"dunkstore-backend/pkg/utils"

	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"
)

// SessionConfig holds the timings applied to every shopper session.
type SessionConfig struct {
	IdleTTL     time.Duration
	SlotTimeout time.Duration
	AuthLatency time.Duration
	AuthTimeout time.Duration
}

// SessionStores is the store bundle of one shopper. The stores are
// independent; each owns its own slot.
type SessionStores struct {
	ID        string
	Cart      *CartUsecase
	Favorites *FavoritesUsecase
	Search    *SearchUsecase
	Auth      *AuthUsecase
}

// AddAllFavoritesToCart adds one unit of every favorite using its first
// listed size and color. Every product is attempted; write errors are combined.
func (s *SessionStores) AddAllFavoritesToCart(ctx context.Context) (domain.CartState, error) {
	var errs error
	state := s.Cart.State()
	for _, p := range s.Favorites.State().Items {
		var size, color string
		if len(p.Sizes) > 0 {
			size = p.Sizes[0]
		}
		if len(p.Colors) > 0 {
			color = p.Colors[0]
		}

		var err error
		state, err = s.Cart.AddToCart(ctx, p, size, color, 1)
		errs = multierr.Append(errs, err)
	}
	return state, errs
}

// SessionUsecase keeps live store bundles in memory. Bundles idle longer
// than IdleTTL are dropped and rebuilt from their slots on next use.
type SessionUsecase struct {
	live     cache.CacheService
	hydrates singleflight.Group
	slots    domain.SlotStore
	catalog  ProductLister
	cfg      SessionConfig
	metrics  *metrics.StoreMetrics
}

func NewSessionUsecase(live cache.CacheService, slots domain.SlotStore, catalog ProductLister, cfg SessionConfig, m *metrics.StoreMetrics) *SessionUsecase {
	return &SessionUsecase{
		live:    live,
		slots:   slots,
		catalog: catalog,
		cfg:     cfg,
		metrics: m,
	}
}

// NewSessionID mints an identifier for an anonymous shopper.
func (u *SessionUsecase) NewSessionID() string {
	return utils.GenerateUUID()
}

// Stores returns the bundle for sessionID, hydrating it on first use.
// Concurrent first uses of one session share a single hydration. A bundle
// whose slots could not be read is never cached.
func (u *SessionUsecase) Stores(ctx context.Context, sessionID string) (*SessionStores, error) {
	if sessionID == "" {
		return nil, domain.ErrNoSession
	}

	key := sessionKey(sessionID)
	if stores, ok := u.touch(key); ok {
		return stores, nil
	}

	val, err, _ := u.hydrates.Do(key, func() (any, error) {
		if stores, ok := u.touch(key); ok {
			return stores, nil
		}

		stores, err := u.hydrate(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		u.live.Set(key, stores, u.cfg.IdleTTL)
		u.metrics.SetActiveSessions(u.live.ItemCount())
		return stores, nil
	})
	if err != nil {
		return nil, fmt.Errorf("hydrate session %s: %w", sessionID, err)
	}
	return val.(*SessionStores), nil
}

// touch returns the live bundle for key and renews its idle TTL.
func (u *SessionUsecase) touch(key string) (*SessionStores, bool) {
	val, found := u.live.Get(key)
	if !found {
		return nil, false
	}
	stores := val.(*SessionStores)
	u.live.Set(key, stores, u.cfg.IdleTTL)
	return stores, true
}

func (u *SessionUsecase) hydrate(ctx context.Context, sessionID string) (*SessionStores, error) {
	start := time.Now()

	cart, err := NewCartUsecase(ctx, u.slots, sessionID, u.cfg.SlotTimeout, u.metrics)
	if err != nil {
		return nil, err
	}
	favorites, err := NewFavoritesUsecase(ctx, u.slots, sessionID, u.cfg.SlotTimeout, u.metrics)
	if err != nil {
		return nil, err
	}
	auth, err := NewAuthUsecase(ctx, u.slots, sessionID, AuthConfig{
		Latency:     u.cfg.AuthLatency,
		Timeout:     u.cfg.AuthTimeout,
		SlotTimeout: u.cfg.SlotTimeout,
	}, u.metrics)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Debug().
		Str("session_id", sessionID).
		Dur("duration", time.Since(start)).
		Msg("Session stores hydrated")

	return &SessionStores{
		ID:        sessionID,
		Cart:      cart,
		Favorites: favorites,
		Search:    NewSearchUsecase(u.catalog, u.metrics),
		Auth:      auth,
	}, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
