package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, m *VehicleModel) error
	FindByID(ctx context.Context, id int64) (*VehicleModel, error)
	Update(ctx context.Context, m *VehicleModel) error
	// Delete removes the catalog entry; vehicles referencing it, and their
	// contracts in turn, are cascaded by the store.
	Delete(ctx context.Context, id int64) error
	// List returns the catalog ordered by vendor then model.
	List(ctx context.Context) ([]VehicleModel, error)
}
