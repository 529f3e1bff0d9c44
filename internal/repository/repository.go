package repository

import (
	"context"

	"product-catalog/internal/model"
)

// ProductRepository defines the interface for product data access
// operations. Missing rows are reported as nil results, not errors;
// callers translate them into domain errors.
type ProductRepository interface {
	// GetAll retrieves all products in store order. Sorting is a
	// presentation concern and is deliberately not applied here.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil)
	// when no product matches.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Insert persists a new product. The repository assigns the ID.
	Insert(ctx context.Context, product *model.Product) error

	// Update overwrites all mutable fields of an existing product and
	// returns the resulting row, or (nil, nil) if the ID does not exist.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes a product and returns the deleted row so callers can
	// clean up any attached assets, or (nil, nil) if the ID does not exist.
	Delete(ctx context.Context, id string) (*model.Product, error)
}
