package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Storing cache keys in concurrent data structures so all cached entries of
// one type can be cleared together (a ledger write must drop every summary
// computed from it).
var (
	Cache           *ristretto.Cache
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	BudgetStatusCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// Summary Cache Functions
func SetSummaryCache(cacheKey string, value interface{}) {
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[cacheKey] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelSummaryCache(cacheKey string) {
	SummaryCacheKeys.Lock()
	delete(SummaryCacheKeys.m, cacheKey)
	SummaryCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllSummaryCaches() {
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}

// Budget Status Cache Functions
func SetBudgetStatusCache(cacheKey string, value interface{}) {
	BudgetStatusCacheKeys.Lock()
	BudgetStatusCacheKeys.m[cacheKey] = struct{}{}
	BudgetStatusCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelBudgetStatusCache(cacheKey string) {
	BudgetStatusCacheKeys.Lock()
	delete(BudgetStatusCacheKeys.m, cacheKey)
	BudgetStatusCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllBudgetStatusCaches() {
	BudgetStatusCacheKeys.Lock()
	for key := range BudgetStatusCacheKeys.m {
		Cache.Del(key)
	}
	BudgetStatusCacheKeys.m = make(map[string]struct{})
	BudgetStatusCacheKeys.Unlock()
}

// ClearLedgerCaches drops every cached value derived from ledger entries.
// Called after any transaction write or bank import.
func ClearLedgerCaches() {
	ClearAllSummaryCaches()
	ClearAllBudgetStatusCaches()
}
