package slotrepo

import (
	"context"
	"errors"
	"fmt"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/storage"
)

type objectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	DeleteObject(ctx context.Context, key string) error
}

type r2Store struct {
	objects objectStore
}

// NewR2Store keeps each slot as one JSON object under slots/.
func NewR2Store(objects objectStore) Store {
	return &r2Store{objects: objects}
}

func objectKey(key string) string {
	return "slots/" + key + ".json"
}

func (s *r2Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.objects.GetObject(ctx, objectKey(key))
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", key, err)
	}
	return data, nil
}

func (s *r2Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.objects.PutObject(ctx, objectKey(key), value, "application/json"); err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

func (s *r2Store) Delete(ctx context.Context, key string) error {
	if err := s.objects.DeleteObject(ctx, objectKey(key)); err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

func (s *r2Store) Close() error {
	return nil
}
