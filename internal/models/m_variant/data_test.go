package m_variant

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Decoding goes through row.ToStruct, which matches columns to struct tags.
// This pins the tag set to the column list so a drift in either breaks here
// instead of at read time.
func TestData_DecodesFromRow(t *testing.T) {
	created := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	row, err := spanner.NewRow(NewModel().Columns(), []interface{}{
		"v_prod_001_718",
		"prod_001",
		"7 1/8",
		int64(4),
		spanner.NullInt64{Int64: 419000, Valid: true},
		spanner.NullInt64{Int64: 100, Valid: true},
		int64(1),
		created,
	})
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, "v_prod_001_718", data.VariantID)
	assert.Equal(t, "prod_001", data.ProductID)
	assert.Equal(t, "7 1/8", data.Size)
	assert.Equal(t, int64(4), data.StockQuantity)
	assert.Equal(t, int64(419000), data.PriceOverrideNumerator.Int64)
	assert.Equal(t, int64(100), data.PriceOverrideDenominator.Int64)
	assert.Equal(t, int64(1), data.Position)
	assert.Equal(t, created, data.CreatedAt)
}
