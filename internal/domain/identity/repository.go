package identity

import "context"

type Repository interface {
	// Upsert inserts the mirror row or refreshes username/staff flag on
	// conflict.
	Upsert(ctx context.Context, id *Identity) error
	FindByID(ctx context.Context, id string) (*Identity, error)
	// Delete removes the identity. The store cascades: the identity's
	// profile, its owned vehicles and the contracts depending on either
	// go with it atomically.
	Delete(ctx context.Context, id string) error
}
