package domain

import "context"

// Fixed slot keys, one per store.
const (
	SlotKeyCart      = "dunkstore-cart"
	SlotKeyFavorites = "dunkstore-favorites"
	SlotKeyUser      = "dunkstore-user"
)

// SlotStore is a durable key-value store holding one serialized snapshot per
// key. Get returns ErrSlotNotFound when the key is absent.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SlotKey namespaces a fixed slot key. An empty namespace yields the key itself.
func SlotKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}
