// Package iocache is for caching vendor I/O and tracking fetch runs.
package iocache

import (
	"sync"

	"github.com/whiskerlabs/litterlog/internal/contract"
)

// CacheStoreManager manages the activity cache and the runs store.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	activity     contract.CacheStore
	runs         contract.RunsStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetActivityStore returns the activity CacheStore.
func (mgr *CacheStoreManager) GetActivityStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.activity
}

// GetRunsStore returns the fetch-run RunsStore.
func (mgr *CacheStoreManager) GetRunsStore() contract.RunsStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
