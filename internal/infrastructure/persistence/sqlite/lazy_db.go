package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/logging"
)

// ErrDatabaseClosed is returned by DB after Close.
var ErrDatabaseClosed = errors.New("database closed")

// LazyDB opens the layout database on first use, so commands that never
// touch the store skip the WASM compilation and migrations. A failed open is
// remembered; the session then runs without persistence.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	tried   bool
	closed  bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database file at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the shared connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrDatabaseClosed
	}
	if !l.tried {
		l.tried = true
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.path).Msg("opening layout database")
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			log.Error().Err(l.openErr).Str("path", l.path).Msg("layout database unavailable")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.openErr)
	}
	return l.db, nil
}

// Close closes the connection if it was opened. Later DB calls fail with
// ErrDatabaseClosed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	db := l.db
	l.db = nil
	return db.Close()
}

// IsInitialized implements port.DatabaseProvider.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path implements port.DatabaseProvider.
func (l *LazyDB) Path() string {
	return l.path
}
