package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/metrics"

	"github.com/goccy/go-json"
)

const (
	storeCart      = "cart"
	storeFavorites = "favorites"
	storeAuth      = "auth"
	storeSearch    = "search"
)

// Hydration outcomes.
const (
	hydrationRestored  = "restored"
	hydrationEmpty     = "empty"
	hydrationDiscarded = "discarded"
	hydrationError     = "error"
)

// slotPersister mirrors one store's state into a single slot.
type slotPersister struct {
	slots   domain.SlotStore
	key     string
	store   string
	timeout time.Duration
	metrics *metrics.StoreMetrics
}

func newSlotPersister(slots domain.SlotStore, key, store string, timeout time.Duration, m *metrics.StoreMetrics) *slotPersister {
	return &slotPersister{
		slots:   slots,
		key:     key,
		store:   store,
		timeout: timeout,
		metrics: m,
	}
}

func (p *slotPersister) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

// load decodes the slot into dest and reports whether a snapshot was restored.
// A missing or malformed slot is not an error. A failed read is, and leaves
// the slot untouched so a later load can still restore it.
func (p *slotPersister) load(ctx context.Context, dest any) (bool, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	data, err := p.slots.Get(ctx, p.key)
	if errors.Is(err, domain.ErrSlotNotFound) {
		p.metrics.IncHydration(p.store, hydrationEmpty)
		return false, nil
	}
	logger.SlotOp(ctx, "get", p.key, time.Since(start), err)
	if err != nil {
		p.metrics.IncHydration(p.store, hydrationError)
		return false, fmt.Errorf("load %s state: %w: %w", p.store, domain.ErrSlotUnavailable, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.WithContext(ctx).Warn().
			Str("store", p.store).
			Str("slot", p.key).
			Err(err).
			Msg("Discarding malformed persisted state")
		p.metrics.IncHydration(p.store, hydrationDiscarded)
		if delErr := p.slots.Delete(ctx, p.key); delErr != nil {
			logger.SlotOp(ctx, "delete", p.key, 0, delErr)
		}
		return false, nil
	}

	p.metrics.IncHydration(p.store, hydrationRestored)
	return true, nil
}

// save writes the full snapshot v.
func (p *slotPersister) save(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", p.store, err)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err = p.slots.Set(ctx, p.key, data)
	logger.SlotOp(ctx, "set", p.key, time.Since(start), err)
	if err != nil {
		p.metrics.IncPersistFailure(p.store)
		return fmt.Errorf("persist %s state: %w", p.store, err)
	}
	return nil
}

// clear removes the slot.
func (p *slotPersister) clear(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err := p.slots.Delete(ctx, p.key)
	logger.SlotOp(ctx, "delete", p.key, time.Since(start), err)
	if err != nil {
		p.metrics.IncPersistFailure(p.store)
		return fmt.Errorf("clear %s state: %w", p.store, err)
	}
	return nil
}
