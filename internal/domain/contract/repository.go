package contract

import "context"

type Repository interface {
	// Create inserts the contract. The schedule document is stored as
	// received, byte for byte.
	Create(ctx context.Context, c *Contract) error
	FindByID(ctx context.Context, id int64) (*Contract, error)
	// Terminate flips is_active to false and re-stamps in one statement.
	Terminate(ctx context.Context, c *Contract) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters *ContractListFilters) ([]Contract, error)
}
