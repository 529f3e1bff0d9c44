package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Price
		expectError bool
	}{
		{
			name:     "Numeric value",
			input:    `49.99`,
			expected: 49.99,
		},
		{
			name:     "String value",
			input:    `"49.99"`,
			expected: 49.99,
		},
		{
			name:     "Integer value",
			input:    `100`,
			expected: 100,
		},
		{
			name:     "Zero",
			input:    `0`,
			expected: 0,
		},
		{
			name:     "Null",
			input:    `null`,
			expected: 0,
		},
		{
			name:        "Non-numeric string",
			input:       `"cheap"`,
			expectError: true,
		},
		{
			name:        "Object",
			input:       `{"amount":1}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.input), &p)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         ProductRequest
		expectError bool
	}{
		{
			name: "Valid request",
			req: ProductRequest{
				Name:        "Chair",
				Description: "Wood chair",
				Price:       49.99,
				Category:    "Furniture",
			},
			expectError: false,
		},
		{
			name: "Valid without optional fields",
			req: ProductRequest{
				Name:        "Chair",
				Description: "Wood chair",
				Price:       0,
			},
			expectError: false,
		},
		{
			name: "Missing name",
			req: ProductRequest{
				Description: "Wood chair",
				Price:       49.99,
			},
			expectError: true,
		},
		{
			name: "Missing description",
			req: ProductRequest{
				Name:  "Chair",
				Price: 49.99,
			},
			expectError: true,
		},
		{
			name: "Negative price",
			req: ProductRequest{
				Name:        "Chair",
				Description: "Wood chair",
				Price:       -1,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProduct_JSONShape(t *testing.T) {
	p := Product{
		ID:          "id-1",
		Name:        "Chair",
		Description: "Wood chair",
		Price:       49.99,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "createdAt")
	assert.Contains(t, fields, "updatedAt")
	// Empty optional fields are omitted from the payload.
	assert.NotContains(t, fields, "imageUrl")
	assert.NotContains(t, fields, "category")
}
