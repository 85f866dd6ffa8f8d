package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
	repomocks "github.com/bnema/floatdesk/internal/domain/repository/mocks"
	"github.com/bnema/floatdesk/internal/logging"
)

type testProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *testProvider) LayoutSnapshot() *entity.Layout {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return entity.NewLayout([]entity.PanelRecord{{ID: "p1", Title: "Dice"}})
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestService_SaveSnapshot_RetriesBusyAndSucceeds(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	calls := 0
	store.EXPECT().
		Put(mock.Anything, "layout/default", mock.Anything).
		RunAndReturn(func(context.Context, string, []byte) error {
			calls++
			if calls == 1 {
				return errors.New("sqlite3: database is locked")
			}
			return nil
		})

	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), &testProvider{}, 1)
	svc.retryDelay = time.Millisecond
	svc.ready = true
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_GivesUpAfterMaxAttempts(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	calls := 0
	store.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, []byte) error {
			calls++
			return errors.New("SQLITE_BUSY")
		})

	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), &testProvider{}, 1)
	svc.retryDelay = time.Millisecond
	svc.ready = true
	svc.dirty = true

	require.Error(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, maxAttempts, calls)
	assert.True(t, svc.dirty, "failed save stays pending")
}

func TestService_SaveSnapshot_DoesNotRetryOtherErrors(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	readOnly := errors.New("attempt to write a readonly database")
	calls := 0
	store.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, []byte) error {
			calls++
			return readOnly
		})

	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), &testProvider{}, 1)
	svc.retryDelay = time.Millisecond
	svc.ready = true
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, readOnly)
	assert.Equal(t, 1, calls)
	assert.True(t, svc.dirty)
}

func TestService_MarkDirty_CoalescesBursts(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	saved := make(chan struct{}, 10)
	store.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, []byte) error {
			saved <- struct{}{}
			return nil
		})

	provider := &testProvider{}
	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), provider, 80)
	svc.Start(testContext())
	svc.SetReady()
	t.Cleanup(func() { _ = svc.Stop(context.Background()) })

	for i := 0; i < 20; i++ {
		svc.MarkDirty()
		time.Sleep(time.Millisecond)
	}

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("expected a debounced save")
	}
	time.Sleep(200 * time.Millisecond)
	assert.Len(t, saved, 0, "a burst produces exactly one save")
	assert.Equal(t, 1, svc.Saves())
	assert.False(t, svc.Dirty())
}

func TestService_NotReadyKeepsChangesPending(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), &testProvider{}, 1)
	svc.Start(testContext())

	svc.MarkDirty()
	time.Sleep(20 * time.Millisecond)

	assert.True(t, svc.Dirty())
	assert.Equal(t, 0, svc.Saves())
	svc.mu.Lock()
	svc.cancel()
	svc.mu.Unlock()
}

func TestService_SetReady_SavesPendingDirtySnapshot(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	saved := make(chan struct{}, 1)
	store.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, []byte) error {
			saved <- struct{}{}
			return nil
		})

	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), &testProvider{}, 1000)
	svc.Start(context.Background())
	svc.dirty = true

	svc.SetReady()

	select {
	case <-saved:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected pending snapshot to be saved after SetReady")
	}
	assert.Eventually(t, func() bool { return !svc.Dirty() }, time.Second, 5*time.Millisecond)
}

func TestService_StopFlushes(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	store.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), &testProvider{}, 60_000)
	svc.Start(testContext())
	svc.SetReady()
	svc.MarkDirty()

	require.NoError(t, svc.Stop(testContext()))
	assert.False(t, svc.Dirty())
	require.NoError(t, svc.SaveNow(testContext()), "nothing left to save")
}

func TestService_WiredToDesk(t *testing.T) {
	store := repomocks.NewMockLayoutStore(t)
	saved := make(chan []byte, 4)
	store.EXPECT().
		Put(mock.Anything, "layout/default", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, value []byte) error {
			saved <- value
			return nil
		})

	svc := NewService(usecase.NewSaveLayoutUseCase(store, "", true), nil, 20)
	opts := desk.DefaultOptions()
	opts.CloseFade = 0
	m := desk.NewManager(testContext(), opts, desk.Deps{Listener: svc})
	t.Cleanup(func() { m.Close(testContext()) })
	svc.SetProvider(m)
	svc.Start(testContext())
	svc.SetReady()

	p, err := m.CreatePanel(testContext(), desk.PanelSpec{Title: "Loot"})
	require.NoError(t, err)
	p.Nudge(5, 5)

	select {
	case data := <-saved:
		assert.Contains(t, string(data), `"Loot"`)
	case <-time.After(time.Second):
		t.Fatal("desk changes were not persisted")
	}
	require.NoError(t, svc.Stop(testContext()))
}
