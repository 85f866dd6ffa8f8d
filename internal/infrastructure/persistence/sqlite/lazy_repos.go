// Package sqlite provides the SQLite-backed key-value store for layouts.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/domain/repository"
)

// LazyLayoutStore defers opening the database until the first store call.
type LazyLayoutStore struct {
	provider port.DatabaseProvider
	store    repository.LayoutStore
	once     sync.Once
	initErr  error
}

// NewLazyLayoutStore creates a lazy-loading layout store.
func NewLazyLayoutStore(provider port.DatabaseProvider) *LazyLayoutStore {
	return &LazyLayoutStore{provider: provider}
}

func (s *LazyLayoutStore) init(ctx context.Context) error {
	s.once.Do(func() {
		db, err := s.provider.DB(ctx)
		if err != nil {
			s.initErr = err
			return
		}
		s.store = NewLayoutStore(db)
	})
	return s.initErr
}

func (s *LazyLayoutStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Put(ctx, key, value)
}

func (s *LazyLayoutStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, key)
}

func (s *LazyLayoutStore) Delete(ctx context.Context, key string) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

func (s *LazyLayoutStore) List(ctx context.Context, prefix string) ([]repository.StoredValue, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.List(ctx, prefix)
}
