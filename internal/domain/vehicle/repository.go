package vehicle

import "context"

type Repository interface {
	// Create inserts the vehicle. The unique constraint on
	// registration_number is the final arbiter under concurrent writes;
	// a violation surfaces as xerrors.ErrDuplicateEntry.
	Create(ctx context.Context, v *Vehicle) error
	FindByID(ctx context.Context, id int64) (*Vehicle, error)
	FindByRegistration(ctx context.Context, registrationNumber string) (*Vehicle, error)
	ExistsByRegistration(ctx context.Context, registrationNumber string) (bool, error)
	UpdateStatus(ctx context.Context, v *Vehicle) error
	// Delete removes the vehicle; dependent contracts are cascaded by the
	// store inside the same statement.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters *VehicleListFilters) ([]Vehicle, error)
}
