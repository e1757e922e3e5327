package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCacheSetAndClear(t *testing.T) {
	InitCache()

	SetSummaryCache("summary:1:2025-06-01:2025-06-30", "cached-value")
	Cache.Wait()

	got, found := Cache.Get("summary:1:2025-06-01:2025-06-30")
	require.True(t, found)
	assert.Equal(t, "cached-value", got)

	ClearAllSummaryCaches()
	Cache.Wait()

	_, found = Cache.Get("summary:1:2025-06-01:2025-06-30")
	assert.False(t, found)
}

func TestClearLedgerCachesDropsBothTypes(t *testing.T) {
	InitCache()

	SetSummaryCache("summary:1:2025-06-01:2025-06-30", "a")
	SetBudgetStatusCache("budget_status:1:6:2025", "b")
	Cache.Wait()

	ClearLedgerCaches()
	Cache.Wait()

	_, found := Cache.Get("summary:1:2025-06-01:2025-06-30")
	assert.False(t, found)
	_, found = Cache.Get("budget_status:1:6:2025")
	assert.False(t, found)

	SummaryCacheKeys.RLock()
	assert.Empty(t, SummaryCacheKeys.m)
	SummaryCacheKeys.RUnlock()
}

func TestDelSummaryCacheRemovesSingleKey(t *testing.T) {
	InitCache()

	SetSummaryCache("summary:1:a:b", "one")
	SetSummaryCache("summary:2:a:b", "two")
	Cache.Wait()

	DelSummaryCache("summary:1:a:b")
	Cache.Wait()

	_, found := Cache.Get("summary:1:a:b")
	assert.False(t, found)
	got, found := Cache.Get("summary:2:a:b")
	require.True(t, found)
	assert.Equal(t, "two", got)
}
