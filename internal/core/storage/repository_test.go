package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaleFilter_Matches(t *testing.T) {
	since := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	require.True(t, SaleFilter{}.Matches(since))
	require.True(t, SaleFilter{Since: since}.Matches(since))
	require.False(t, SaleFilter{Since: since}.Matches(since.Add(-time.Nanosecond)))
	require.True(t, SaleFilter{Until: until}.Matches(until.Add(-time.Nanosecond)))
	require.False(t, SaleFilter{Since: since, Until: until}.Matches(until))
}
