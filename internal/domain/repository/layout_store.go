// Package repository defines persistence contracts for the domain.
package repository

import (
	"context"
	"strings"
	"time"
)

// LayoutKeyPrefix namespaces layout records in the key-value store.
const LayoutKeyPrefix = "layout/"

// LayoutKey returns the store key for a layout slot.
func LayoutKey(slot string) string {
	return LayoutKeyPrefix + slot
}

// SlotFromKey strips the layout prefix from a store key.
func SlotFromKey(key string) string {
	return strings.TrimPrefix(key, LayoutKeyPrefix)
}

// StoredValue is a raw entry of the key-value store.
type StoredValue struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// LayoutStore is the durable key-value store holding serialized layouts.
// Values are opaque bytes; callers validate them before use.
type LayoutStore interface {
	// Put creates or replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value under key, or nil without error when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every entry whose key starts with prefix, ordered by key.
	List(ctx context.Context, prefix string) ([]StoredValue, error)
}
