// Package snapshot persists the desk layout after changes settle.
package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

const (
	defaultInterval   = time.Second
	defaultRetryDelay = 100 * time.Millisecond
	maxAttempts       = 3
)

// Service handles debounced layout saves. It implements desk.MutationListener.
type Service struct {
	saveUC     *usecase.SaveLayoutUseCase
	provider   port.LayoutProvider
	interval   time.Duration
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ready  bool // false until the stored layout was loaded, so startup never overwrites it
	saves  int
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service. intervalMs <= 0 means one second.
func NewService(saveUC *usecase.SaveLayoutUseCase, provider port.LayoutProvider, intervalMs int) *Service {
	interval := defaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		saveUC:     saveUC,
		provider:   provider,
		interval:   interval,
		retryDelay: defaultRetryDelay,
	}
}

// SetProvider sets the layout source. Call before Start.
func (s *Service) SetProvider(provider port.LayoutProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider = provider
}

// Start begins accepting dirty marks.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// SetReady allows saves. A change recorded before this is saved right away.
func (s *Service) SetReady() {
	s.mu.Lock()
	s.ready = true
	pending := s.dirty && s.ctx != nil
	ctx := s.ctx
	s.mu.Unlock()

	if pending {
		go func() {
			if err := s.saveSnapshot(ctx); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("failed to save pending layout")
			}
		}()
	}
}

// Stop cancels the pending timer and flushes unsaved changes.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty records a change and restarts the debounce timer.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
		}
	})
}

// SaveNow saves immediately when there are unsaved changes.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

// Dirty reports whether changes are waiting to be saved.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Saves returns how many snapshots reached the save use case.
func (s *Service) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	if !s.ready || s.provider == nil {
		// keep the change pending until SetReady
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	s.saves++
	provider := s.provider
	s.mu.Unlock()

	// taken without s.mu: the desk lock must never nest inside ours
	layout := provider.LayoutSnapshot()

	err := s.saveWithRetry(ctx, layout)
	if err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
	return err
}

func (s *Service) saveWithRetry(ctx context.Context, layout *entity.Layout) error {
	for attempt := 1; ; attempt++ {
		err := s.saveUC.Execute(ctx, layout)
		if err == nil || !isTransient(err) || attempt == maxAttempts {
			return err
		}
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("layout save busy, retrying")
		select {
		case <-time.After(s.retryDelay):
		case <-ctx.Done():
			return err
		}
	}
}

// isTransient matches SQLite lock contention, typically a CLI export running
// next to the desk.
func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy")
}
