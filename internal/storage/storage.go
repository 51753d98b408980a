// Package storage provides the keyed storage primitive the rest of the
// application persists through: get, set and remove a value by string key.
package storage

// Store is the keyed storage adapter. Implementations must treat keys as
// opaque strings; namespacing is the caller's concern.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) ([]byte, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys returns every stored key starting with prefix, sorted.
	Keys(prefix string) ([]string, error)
}
