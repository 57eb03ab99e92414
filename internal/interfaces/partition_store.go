package interfaces

import (
	"go-offline-agent/internal/models"
)

//go:generate mockgen -package=mock -source=partition_store.go -destination=mock/partition_store.go

// PartitionStore is the storage backend behind the cache partitions
type PartitionStore interface {
	// Create makes sure the named partition exists; it is idempotent
	Create(partition string) error
	Get(partition, key string) (*models.CachedResponse, bool)
	Put(partition, key string, entry *models.CachedResponse) error
	Delete(partition, key string) error
	// Keys lists the request keys stored in a partition
	Keys(partition string) ([]string, error)
	// Partitions lists every partition name known to the store
	Partitions() ([]string, error)
	// Drop deletes a partition with all of its entries
	Drop(partition string) error
}
