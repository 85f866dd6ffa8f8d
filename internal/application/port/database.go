// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database, opening it on first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// IsInitialized reports whether DB has opened the database.
	IsInitialized() bool
	// Path is the database file, whether or not it is open yet.
	Path() string
	Close() error
}
