package localstore

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Collection reads and writes one entity type's records as a single JSON
// array blob in the underlying KV.
//
// Every operation is a synchronous read-modify-write of the whole blob.
// There is no locking: within one running instance there is a single logical
// writer, and two instances sharing the same KV can lose updates (last write
// wins). That is a known, accepted limitation of the local path.
type Collection[T any] struct {
	name string
	kv   KV
}

// NewCollection binds a collection name to a KV
func NewCollection[T any](name string, kv KV) *Collection[T] {
	return &Collection[T]{name: name, kv: kv}
}

// Name returns the collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// Exists reports whether the collection entry has ever been written.
// Used by services to keep sample-data seeding idempotent.
func (c *Collection[T]) Exists() bool {
	_, ok, err := c.kv.Get(c.name)
	if err != nil {
		log.Printf("localstore: failed to check collection %q: %v", c.name, err)
		return false
	}
	return ok
}

// ReadAll deserializes the collection. A missing entry is a valid first-run
// state and yields an empty slice. Corrupt data is logged and swallowed,
// also yielding an empty slice; it never surfaces as an error to callers.
func (c *Collection[T]) ReadAll() []T {
	data, ok, err := c.kv.Get(c.name)
	if err != nil {
		log.Printf("localstore: failed to read collection %q: %v", c.name, err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("localstore: corrupt data in collection %q, falling back to empty: %v", c.name, err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// WriteAll serializes and persists the full collection, replacing any
// previous content
func (c *Collection[T]) WriteAll(records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", c.name, err)
	}
	if err := c.kv.Set(c.name, data); err != nil {
		return fmt.Errorf("failed to persist collection %q: %w", c.name, err)
	}
	return nil
}

// GenerateID produces a record id unique with very high probability:
// a millisecond timestamp prefix plus a random suffix. Collisions are not
// checked against existing records.
func (c *Collection[T]) GenerateID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
