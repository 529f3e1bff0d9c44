package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"
	"product-catalog/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	blobs       storage.BlobStore
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, blobs storage.BlobStore, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		blobs:       blobs,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products in store order.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Get retrieves a single product by ID.
func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates and persists a new product. The imageUrl in the request
// is trusted to have come from a prior UploadImage call and is stored
// as-is; the blob is never re-verified.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product payload")
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	// Truncate to microseconds so the returned document matches the
	// timestamptz precision of the stored row.
	now := time.Now().UTC().Truncate(time.Microsecond)
	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       float64(req.Price),
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Update overwrites all mutable fields of the product identified by id and
// refreshes updatedAt. The caller supplies the full desired imageUrl; no
// diffing against the previous asset is performed, so a replaced image
// leaves its old blob behind.
func (s *productService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("invalid product payload")
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	product := &model.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       float64(req.Price),
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		UpdatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if updated == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return updated, nil
}

// Delete removes the product document. If the product carried an image,
// its blob is deleted best-effort: a failed blob delete is logged and
// swallowed, and the product deletion still succeeds.
func (s *productService) Delete(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if deleted == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	if deleted.ImageURL != "" {
		blobName := blobNameFromURL(deleted.ImageURL)
		if err := s.blobs.Remove(ctx, blobName); err != nil {
			s.logger.Warn().
				Err(err).
				Str("product_id", id).
				Str("blob", blobName).
				Msg("best-effort image cleanup failed")
		}
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

// UploadImage writes the file to blob storage under a collision-free name
// and returns the resulting URL. Upload and product persistence are two
// separate, non-atomic steps: an upload whose URL is never attached to a
// product leaves an orphaned blob.
func (s *productService) UploadImage(ctx context.Context, data []byte, originalName, contentType string) (*model.UploadResult, error) {
	if len(data) == 0 {
		s.logger.Warn().Str("filename", originalName).Msg("upload with empty payload")
		return nil, model.ErrNoFileProvided
	}

	// A random 128-bit prefix keeps concurrent uploads of the same
	// filename from colliding while preserving a readable suffix.
	blobName := fmt.Sprintf("%s-%s", uuid.New().String(), originalName)

	imageURL, err := s.blobs.Upload(ctx, blobName, data, contentType)
	if err != nil {
		s.logger.Error().Err(err).Str("blob", blobName).Msg("failed to upload image")
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info().
		Str("blob", blobName).
		Str("url", imageURL).
		Msg("image uploaded")

	return &model.UploadResult{
		ImageURL: imageURL,
		BlobName: blobName,
	}, nil
}

// blobNameFromURL derives a blob name from a stored URL by taking the final
// path segment. Purely syntactic, and kept that way for compatibility with
// blobs created before the storage layout ever changes.
func blobNameFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
