package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"product-catalog/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) UploadImage(ctx context.Context, data []byte, originalName, contentType string) (*model.UploadResult, error) {
	args := m.Called(ctx, data, originalName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadResult), args.Error(1)
}

// newTestRouter mounts the handler under the real route layout so
// chi.URLParam resolves in tests.
func newTestRouter(h *ProductHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/products", h.List)
	r.Post("/api/products", h.Create)
	r.Get("/api/products/{id}", h.Get)
	r.Put("/api/products/{id}", h.Update)
	r.Delete("/api/products/{id}", h.Delete)
	return r
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "id-1", Name: "Chair", Description: "Wood chair", Price: 49.99, CreatedAt: time.Now()},
		{ID: "id-2", Name: "Desk", Description: "Oak desk", Price: 150.00, CreatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectedLen    int
	}{
		{
			name:           "Success",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:           "Empty store returns empty array",
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "Service error",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			router := newTestRouter(handler)

			mockService.On("List", mock.Anything).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
				assert.Len(t, products, tt.expectedLen)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: "id-1", Name: "Chair", Description: "Wood chair", Price: 49.99}

	tests := []struct {
		name           string
		path           string
		id             string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			path:           "/api/products/id-1",
			id:             "id-1",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			path:           "/api/products/missing",
			id:             "missing",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed identifier surfaces as store error",
			path:           "/api/products/not-a-uuid",
			id:             "not-a-uuid",
			mockError:      errors.New("invalid input syntax for type uuid"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			router := newTestRouter(handler)

			mockService.On("Get", mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var product model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
				assert.Equal(t, testProduct.ID, product.ID)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	created := &model.Product{
		ID:          "generated-id",
		Name:        "Chair",
		Description: "Wood chair",
		Price:       49.99,
		Category:    "Furniture",
	}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Product
		mockError      error
		expectService  bool
		expectedStatus int
		checkPrice     float64
	}{
		{
			name:           "Success with numeric price",
			body:           `{"name":"Chair","description":"Wood chair","price":49.99,"category":"Furniture"}`,
			mockReturn:     created,
			expectService:  true,
			expectedStatus: http.StatusCreated,
			checkPrice:     49.99,
		},
		{
			name:           "Success with string price",
			body:           `{"name":"Chair","description":"Wood chair","price":"49.99","category":"Furniture"}`,
			mockReturn:     created,
			expectService:  true,
			expectedStatus: http.StatusCreated,
			checkPrice:     49.99,
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Validation failure maps to 500",
			body:           `{"description":"no name","price":10}`,
			mockError:      errors.New("invalid product: name: cannot be blank"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			router := newTestRouter(handler)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *model.ProductRequest) bool {
					return tt.checkPrice == 0 || float64(req.Price) == tt.checkPrice
				})).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var product model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
				assert.Equal(t, "generated-id", product.ID)
				assert.Equal(t, tt.checkPrice, product.Price)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	updated := &model.Product{
		ID:          "id-1",
		Name:        "Chair v2",
		Description: "Refinished wood chair",
		Price:       59.99,
	}

	tests := []struct {
		name           string
		path           string
		id             string
		body           string
		mockReturn     *model.Product
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			path:           "/api/products/id-1",
			id:             "id-1",
			body:           `{"name":"Chair v2","description":"Refinished wood chair","price":"59.99"}`,
			mockReturn:     updated,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			path:           "/api/products/missing",
			id:             "missing",
			body:           `{"name":"Chair v2","description":"Refinished wood chair","price":59.99}`,
			mockError:      model.ErrProductNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed JSON",
			path:           "/api/products/id-1",
			id:             "id-1",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			router := newTestRouter(handler)

			if tt.expectService {
				mockService.On("Update", mock.Anything, tt.id, mock.AnythingOfType("*model.ProductRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		id             string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			path:           "/api/products/id-1",
			id:             "id-1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			path:           "/api/products/missing",
			id:             "missing",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service error",
			path:           "/api/products/id-1",
			id:             "id-1",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			router := newTestRouter(handler)

			mockService.On("Delete", mock.Anything, tt.id).Return(tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Product deleted successfully", resp["message"])
			}

			mockService.AssertExpectations(t)
		})
	}
}
