package localstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// KV is a named-entry key-value area holding one serialized blob per
// collection. Absence of an entry is a valid first-run state, so Get reports
// existence separately from failure.
type KV interface {
	Get(name string) ([]byte, bool, error)
	Set(name string, data []byte) error
	Delete(name string) error
}

// FileKV stores each entry as a JSON file under a data directory
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns a file-backed KV
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

// Get reads an entry; a missing file is (nil, false, nil)
func (f *FileKV) Get(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set replaces the entry contents entirely
func (f *FileKV) Set(name string, data []byte) error {
	return os.WriteFile(f.path(name), data, 0o644)
}

// Delete removes the entry; deleting a missing entry is not an error
func (f *FileKV) Delete(name string) error {
	err := os.Remove(f.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryKV is an in-memory KV used by tests and ephemeral setups
type MemoryKV struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string][]byte)}
}

func (m *MemoryKV) Get(name string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[name]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (m *MemoryKV) Set(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.entries[name] = cp
	return nil
}

func (m *MemoryKV) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, name)
	return nil
}
