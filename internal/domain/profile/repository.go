package profile

import "context"

type Repository interface {
	Create(ctx context.Context, p *UserProfile) error
	FindByID(ctx context.Context, id int64) (*UserProfile, error)
	FindByIdentity(ctx context.Context, identityID string) (*UserProfile, error)
	Update(ctx context.Context, p *UserProfile) error
	// Deactivate flips active to false and records the deactivation time
	// together with the updated stamp, all in one statement.
	Deactivate(ctx context.Context, p *UserProfile) error
	// Delete removes the profile; contracts naming it as companion are
	// cascaded by the store.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters *ProfileListFilters) ([]UserProfile, error)
}
