package storage

// Memory is a Store keeping values in a map. State does not survive the
// process; it exists for tests and ephemeral sessions.
//
// Like the rest of the core it assumes a single mutator at a time.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Load implements the Store interface.
func (m *Memory) Load(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

// Save implements the Store interface.
func (m *Memory) Save(key, value string) error {
	m.values[key] = value
	return nil
}
