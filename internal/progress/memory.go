package progress

import "sync"

// MemoryPersister keeps records in process memory.
// Used for SSH sessions and tests.
type MemoryPersister struct {
	mu      sync.Mutex
	records map[string][]byte
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{records: make(map[string][]byte)}
}

// LoadProgress returns a copy of the record under namespace.
func (m *MemoryPersister) LoadProgress(namespace string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[namespace]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// SaveProgress replaces the record under namespace.
func (m *MemoryPersister) SaveProgress(namespace string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[namespace] = append([]byte(nil), data...)
	return nil
}
