package sysenv

// MemStore is an in-memory Store used by tests and by dry runs.
type MemStore struct {
	Values map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Values: map[string]string{}}
}

func (m *MemStore) Get(name string) (string, bool, error) {
	v, ok := m.Values[name]
	return v, ok, nil
}

func (m *MemStore) Set(name, value string) error {
	m.Values[name] = value
	return nil
}
