package service

import (
	"context"

	"product-catalog/internal/model"
)

// ProductService defines the product lifecycle operations, including the
// side effect of managing the image asset attached to a product.
type ProductService interface {
	// List retrieves all products in store order.
	List(ctx context.Context) ([]model.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id string) (*model.Product, error)

	// Create validates and persists a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update overwrites all mutable fields of an existing product.
	Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product and best-effort deletes its image blob.
	Delete(ctx context.Context, id string) error

	// UploadImage writes an image to blob storage under a unique name and
	// returns its URL. It does not touch the product store; callers attach
	// the URL to a product in a separate call.
	UploadImage(ctx context.Context, data []byte, originalName, contentType string) (*model.UploadResult, error)
}
