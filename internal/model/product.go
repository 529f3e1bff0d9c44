package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Product represents a single product in the catalogue.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category,omitempty" db:"category"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Price is a float64 that also accepts string-typed JSON values.
// Form-based clients submit price as a string ("49.99"), so the decoder
// coerces both representations to a number.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*p = Price(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid price value %q: %w", v, err)
		}
		*p = Price(parsed)
	case nil:
		*p = 0
	default:
		return fmt.Errorf("invalid price type %T", raw)
	}

	return nil
}

// ProductRequest is the payload for creating or fully updating a product.
// Every update overwrites all mutable fields; there are no partial patch
// semantics.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// Validate validates ProductRequest.
func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Price, validation.Min(Price(0))),
	)
}

// UploadResult is returned after an image has been written to blob storage.
// The caller is responsible for attaching ImageURL to a product in a
// subsequent create or update call; upload and persistence are two
// separate, non-atomic steps.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	BlobName string `json:"blobName"`
}
