// Package iostore persists generation runs and activity records.
package iostore

import (
	"sync"

	"github.com/pulsegen/pulsegen/internal/contract"
)

// ActivityStoreManager manages the configured ActivityStore instance.
type ActivityStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	activity     contract.ActivityStore
}

var _ contract.StoreManager = &ActivityStoreManager{} // Compile-time check

// GetActivityStore returns the activity store.
func (mgr *ActivityStoreManager) GetActivityStore() contract.ActivityStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.activity
}
