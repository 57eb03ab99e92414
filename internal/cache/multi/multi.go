package multi

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
)

// Ensure MultiStore implements interfaces.PartitionStore
var _ interfaces.PartitionStore = (*MultiStore)(nil)

// MultiStore layers several partition stores.
// Reads go through the stores in order, writes go to all of them.
type MultiStore struct {
	stores            []interfaces.PartitionStore
	enablePropagation bool
	logger            *zap.Logger
}

// NewMultiStore creates a new MultiStore with the provided stores, fastest first
func NewMultiStore(stores []interfaces.PartitionStore, enablePropagation bool, logger *zap.Logger) *MultiStore {
	return &MultiStore{
		stores:            stores,
		enablePropagation: enablePropagation,
		logger:            logger,
	}
}

// Create creates the partition in every store
func (ms *MultiStore) Create(partition string) error {
	var errs []error
	for _, store := range ms.stores {
		if err := store.Create(partition); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Get returns the entry from the first store that has it.
// With propagation enabled, a hit in a slower store is copied into the faster ones.
func (ms *MultiStore) Get(partition, key string) (*models.CachedResponse, bool) {
	if len(ms.stores) == 0 {
		ms.logger.Warn("No stores available for get operation", zap.String("key", key))
		return nil, false
	}

	for i, store := range ms.stores {
		entry, found := store.Get(partition, key)
		if !found {
			continue
		}
		if ms.enablePropagation && i > 0 {
			ms.propagate(partition, key, entry, i)
		}
		return entry, true
	}
	return nil, false
}

// propagate copies an entry into the stores in front of level
func (ms *MultiStore) propagate(partition, key string, entry *models.CachedResponse, level int) {
	for _, store := range ms.stores[:level] {
		if err := store.Put(partition, key, entry); err != nil {
			ms.logger.Debug("Failed to propagate entry",
				zap.String("partition", partition),
				zap.String("key", key),
				zap.Error(err))
		}
	}
}

// Put stores the entry in every store.
// The write succeeds when at least one store accepted it.
func (ms *MultiStore) Put(partition, key string, entry *models.CachedResponse) error {
	if len(ms.stores) == 0 {
		return errors.New("no stores available for put operation")
	}

	var errs []error
	for _, store := range ms.stores {
		if err := store.Put(partition, key, entry); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(ms.stores) {
		return errors.Join(errs...)
	}
	for _, err := range errs {
		ms.logger.Warn("Partial write to partition store",
			zap.String("partition", partition),
			zap.String("key", key),
			zap.Error(err))
	}
	return nil
}

// Delete removes the entry from every store
func (ms *MultiStore) Delete(partition, key string) error {
	var errs []error
	for _, store := range ms.stores {
		if err := store.Delete(partition, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Keys returns the union of keys across stores
func (ms *MultiStore) Keys(partition string) ([]string, error) {
	return ms.union(func(store interfaces.PartitionStore) ([]string, error) {
		return store.Keys(partition)
	})
}

// Partitions returns the union of partition names across stores
func (ms *MultiStore) Partitions() ([]string, error) {
	return ms.union(func(store interfaces.PartitionStore) ([]string, error) {
		return store.Partitions()
	})
}

// Drop deletes the partition from every store
func (ms *MultiStore) Drop(partition string) error {
	var errs []error
	for _, store := range ms.stores {
		if err := store.Drop(partition); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetStoreCount returns the number of layered stores
func (ms *MultiStore) GetStoreCount() int {
	return len(ms.stores)
}

func (ms *MultiStore) union(list func(store interfaces.PartitionStore) ([]string, error)) ([]string, error) {
	seen := make(map[string]struct{})
	var errs []error
	for _, store := range ms.stores {
		items, err := list(store)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, item := range items {
			seen[item] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for item := range seen {
		result = append(result, item)
	}
	sort.Strings(result)
	return result, errors.Join(errs...)
}
