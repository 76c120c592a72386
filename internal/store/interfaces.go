package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStorageRepository is a persistent string key/value store local to the
// device. It holds the device identity.
type LocalStorageRepository interface {
	// GetItem returns the value stored under key, or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
