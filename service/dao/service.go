package dao

import (
	"context"
)

// Service is a generic data-access contract over entities of type T keyed
// by a comparable key K.  The registry persists workflow histories through
// this interface so that the storage strategy stays swappable for an
// embedding system.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
