package db

import (
	"fmt"
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked per entity so a whole class of entries can be
// dropped at once (e.g. every cached transaction list after a write).
var (
	Cache                *ristretto.Cache
	TransactionCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	AdvisorCacheKeys = struct {
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

func TransactionCacheKey(userID int64) string {
	return fmt.Sprintf("transactions:%d", userID)
}

func SetTransactionCache(cacheKey string, value interface{}) {
	TransactionCacheKeys.Lock()
	TransactionCacheKeys.m[cacheKey] = struct{}{}
	TransactionCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelTransactionCache(cacheKey string) {
	TransactionCacheKeys.Lock()
	delete(TransactionCacheKeys.m, cacheKey)
	TransactionCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllTransactionCaches() {
	TransactionCacheKeys.Lock()
	for key := range TransactionCacheKeys.m {
		Cache.Del(key)
	}
	TransactionCacheKeys.m = make(map[string]struct{})
	TransactionCacheKeys.Unlock()
}

func SetAdvisorCache(cacheKey string, value interface{}) {
	AdvisorCacheKeys.Lock()
	AdvisorCacheKeys.m[cacheKey] = struct{}{}
	AdvisorCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllAdvisorCaches() {
	AdvisorCacheKeys.Lock()
	for key := range AdvisorCacheKeys.m {
		Cache.Del(key)
	}
	AdvisorCacheKeys.m = make(map[string]struct{})
	AdvisorCacheKeys.Unlock()
}
