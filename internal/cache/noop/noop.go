package noop

import (
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/models"
)

// Ensure NoOpStore implements interfaces.PartitionStore
var _ interfaces.PartitionStore = (*NoOpStore)(nil)

// NoOpStore is a no-operation partition store for disabled cache levels
type NoOpStore struct{}

// NewNoOpStore creates a new no-operation store instance
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Create does nothing
func (n *NoOpStore) Create(partition string) error {
	return nil
}

// Get always returns a miss
func (n *NoOpStore) Get(partition, key string) (*models.CachedResponse, bool) {
	return nil, false
}

// Put does nothing
func (n *NoOpStore) Put(partition, key string, entry *models.CachedResponse) error {
	return nil
}

// Delete does nothing
func (n *NoOpStore) Delete(partition, key string) error {
	return nil
}

// Keys always returns no keys
func (n *NoOpStore) Keys(partition string) ([]string, error) {
	return nil, nil
}

// Partitions always returns no partitions
func (n *NoOpStore) Partitions() ([]string, error) {
	return nil, nil
}

// Drop does nothing
func (n *NoOpStore) Drop(partition string) error {
	return nil
}
