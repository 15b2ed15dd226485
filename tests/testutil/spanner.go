// Package testutil provides helpers for integration tests that run against
// the Spanner emulator.
package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

// RequireEmulator skips the test unless a Spanner emulator is configured.
func RequireEmulator(t *testing.T) {
	t.Helper()
	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set; skipping Spanner integration test")
	}
}

// SetupSpannerTest creates a test Spanner client and returns a cleanup function.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database path.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DB"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/storefront-test"
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	mutations := []*spanner.Mutation{
		spanner.Delete("order_events", spanner.AllKeys()),
		spanner.Delete("order_items", spanner.AllKeys()),
		spanner.Delete("orders", spanner.AllKeys()),
		spanner.Delete("product_variants", spanner.AllKeys()),
		spanner.Delete("products", spanner.AllKeys()),
	}

	_, err := client.Apply(context.Background(), mutations)
	require.NoError(t, err, "failed to clean database")
}
