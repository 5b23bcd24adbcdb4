package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrMalformedState возвращается, когда файл состояния не удаётся разобрать.
var ErrMalformedState = errors.New("malformed state file")

// File — хранилище в JSON-файле: плоская карта строковых ключей и значений,
// переписываемая целиком при каждом изменении.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// OpenFile открывает файл хранилища. Отсутствующий файл не ошибка:
// хранилище стартует пустым и создаст файл при первой записи.
// Повреждённый файл даёт ErrMalformedState, но возвращаемое хранилище
// пригодно к работе и тоже стартует пустым.
func OpenFile(path string) (*File, error) {
	f := &File{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		f.values = make(map[string]string)
		return f, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return f, nil
}

// Get возвращает значение по ключу и признак его наличия.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	return v, ok
}

// Set сохраняет значение по ключу и переписывает файл.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	return f.flush()
}

// Remove удаляет значение по ключу и переписывает файл.
func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)
	return f.flush()
}

func (f *File) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
