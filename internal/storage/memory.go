package storage

// Memory — хранилище в памяти.
type Memory struct {
	values map[string]string
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get возвращает значение по ключу и признак его наличия.
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set сохраняет значение по ключу.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Remove удаляет значение по ключу.
func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}
