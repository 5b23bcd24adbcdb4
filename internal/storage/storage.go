// Package storage предоставляет key-value хранилище локального состояния.
package storage

// Storage описывает key-value хранилище строковых значений. Хранилище
// сессии зависит от него абстрактно, в тестах подставляется Memory.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
