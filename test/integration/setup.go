package integration

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"product-catalog/internal/handler"
	"product-catalog/internal/repository"
	"product-catalog/internal/router"
	"product-catalog/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestEnv bundles a running API server with its backing stores.
type TestEnv struct {
	Server *httptest.Server
	Pool   *pgxpool.Pool
	Blobs  *MemoryBlobStore
}

// MemoryBlobStore is an in-memory BlobStore used to observe blob traffic
// in end-to-end tests.
type MemoryBlobStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	removals []string

	// FailRemovals makes every Remove call return an error, simulating an
	// unavailable blob backend.
	FailRemovals bool
}

// NewMemoryBlobStore creates an empty in-memory blob store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{objects: make(map[string][]byte)}
}

// Upload stores the blob in memory and returns a deterministic URL.
func (s *MemoryBlobStore) Upload(_ context.Context, name string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[name] = append([]byte(nil), data...)
	return "http://blobs.test/product-images/" + name, nil
}

// Remove deletes the blob and records the call.
func (s *MemoryBlobStore) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removals = append(s.removals, name)
	if s.FailRemovals {
		return fmt.Errorf("blob store unavailable")
	}
	delete(s.objects, name)
	return nil
}

// Removals returns the blob names passed to Remove, in order.
func (s *MemoryBlobStore) Removals() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.removals...)
}

// Has reports whether a blob with the given name is stored.
func (s *MemoryBlobStore) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.objects[name]
	return ok
}

// SetupTestEnv starts a PostgreSQL container and a full API server wired
// against it and an in-memory blob store.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	// Wire the full stack with an observable blob store.
	logger := zerolog.Nop()
	blobs := NewMemoryBlobStore()
	productRepo := repository.NewProductRepository(pool, logger)
	productService := service.NewProductService(productRepo, blobs, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	uploadHandler := handler.NewUploadHandler(productService, 10<<20, logger)

	server := httptest.NewServer(router.New(productHandler, uploadHandler, logger))

	t.Cleanup(func() {
		server.Close()
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestEnv{
		Server: server,
		Pool:   pool,
		Blobs:  blobs,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}
