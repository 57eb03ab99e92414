package l1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"go-offline-agent/internal/config"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
	"go-offline-agent/internal/scheduler"
)

// Ensure BigCacheStore implements interfaces.PartitionStore
var _ interfaces.PartitionStore = (*BigCacheStore)(nil)

const (
	shards = 16
	// Entries never expire on their own; partitions are retired by version purge
	lifeWindow = 10 * 365 * 24 * time.Hour
)

// BigCacheStore implements the partition store with one BigCache per partition
type BigCacheStore struct {
	mu               sync.RWMutex
	partitions       map[string]*bigcache.BigCache
	sizeMB           int
	logger           *zap.Logger
	metricsScheduler *scheduler.Scheduler
}

// NewBigCacheStore creates a new BigCacheStore instance
func NewBigCacheStore(l1Cfg *config.L1Config, logger *zap.Logger) (*BigCacheStore, error) {
	if l1Cfg.Size < 0 {
		return nil, fmt.Errorf("invalid L1 size %d", l1Cfg.Size)
	}

	store := &BigCacheStore{
		partitions: make(map[string]*bigcache.BigCache),
		sizeMB:     l1Cfg.Size,
		logger:     logger,
	}

	// Start periodic metrics collection
	store.startMetricsCollection()

	return store, nil
}

// newPartition builds a BigCache sized for a single partition.
// HardMaxCacheSize is the partition quota; oversized entries fail to store.
func (s *BigCacheStore) newPartition() (*bigcache.BigCache, error) {
	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.Shards = shards
	cfg.CleanWindow = 0
	cfg.MaxEntriesInWindow = 1024
	cfg.MaxEntrySize = 8 * 1024
	cfg.HardMaxCacheSize = s.sizeMB
	cfg.Verbose = false

	return bigcache.New(context.Background(), cfg)
}

// Create opens the partition, creating it if absent
func (s *BigCacheStore) Create(partition string) error {
	_, err := s.partition(partition, true)
	return err
}

// partition returns the named cache, creating it when create is set
func (s *BigCacheStore) partition(name string, create bool) (*bigcache.BigCache, error) {
	s.mu.RLock()
	cache, ok := s.partitions[name]
	s.mu.RUnlock()
	if ok || !create {
		return cache, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cache, ok := s.partitions[name]; ok {
		return cache, nil
	}

	cache, err := s.newPartition()
	if err != nil {
		return nil, fmt.Errorf("failed to create partition %s: %w", name, err)
	}
	s.partitions[name] = cache
	s.logger.Debug("Created L1 partition", zap.String("partition", name))
	return cache, nil
}

// Get retrieves an entry from a partition
func (s *BigCacheStore) Get(partition, key string) (*models.CachedResponse, bool) {
	cache, _ := s.partition(partition, false)
	if cache == nil {
		return nil, false
	}

	data, err := cache.Get(key)
	if err != nil {
		return nil, false
	}

	var entry models.CachedResponse
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Warn("Failed to unmarshal L1 cache entry",
			zap.String("partition", partition),
			zap.String("key", key),
			zap.Error(err))
		metrics.RecordCacheError("l1", "decode")
		_ = cache.Delete(key) // Remove corrupted entry
		return nil, false
	}

	return &entry, true
}

// Put stores an entry, creating the partition lazily
func (s *BigCacheStore) Put(partition, key string, entry *models.CachedResponse) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}

	cache, err := s.partition(partition, true)
	if err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		metrics.RecordCacheError("l1", "encode")
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := cache.Set(key, data); err != nil {
		metrics.RecordCacheError("l1", "quota")
		return fmt.Errorf("failed to store entry in partition %s: %w", partition, err)
	}
	return nil
}

// Delete removes an entry from a partition
func (s *BigCacheStore) Delete(partition, key string) error {
	cache, _ := s.partition(partition, false)
	if cache == nil {
		return nil
	}

	if err := cache.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("failed to delete entry from partition %s: %w", partition, err)
	}
	return nil
}

// Keys lists the keys stored in a partition
func (s *BigCacheStore) Keys(partition string) ([]string, error) {
	cache, _ := s.partition(partition, false)
	if cache == nil {
		return nil, nil
	}

	keys := make([]string, 0, cache.Len())
	it := cache.Iterator()
	for it.SetNext() {
		info, err := it.Value()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate partition %s: %w", partition, err)
		}
		keys = append(keys, info.Key())
	}
	sort.Strings(keys)
	return keys, nil
}

// Partitions lists every partition held in memory
func (s *BigCacheStore) Partitions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.partitions))
	for name := range s.partitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Drop deletes a partition and releases its memory
func (s *BigCacheStore) Drop(partition string) error {
	s.mu.Lock()
	cache, ok := s.partitions[partition]
	delete(s.partitions, partition)
	s.mu.Unlock()

	if !ok {
		return nil
	}

	metrics.ForgetPartition(partition)
	if err := cache.Close(); err != nil {
		return fmt.Errorf("failed to close partition %s: %w", partition, err)
	}
	return nil
}

// Close stops metrics collection and closes every partition
func (s *BigCacheStore) Close() error {
	s.stopMetricsCollection()

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, cache := range s.partitions {
		if err := cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close partition %s: %w", name, err))
		}
	}
	s.partitions = make(map[string]*bigcache.BigCache)
	return errors.Join(errs...)
}

// GetStats returns the total configured capacity and the entry count per partition
func (s *BigCacheStore) GetStats() (capacity int64, entries map[string]int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries = make(map[string]int, len(s.partitions))
	for name, cache := range s.partitions {
		capacity += int64(cache.Capacity())
		entries[name] = cache.Len()
	}
	return capacity, entries
}

// startMetricsCollection starts periodic metrics collection
func (s *BigCacheStore) startMetricsCollection() {
	s.metricsScheduler = scheduler.New(30*time.Second, s.updateMetrics)
	s.metricsScheduler.Start()

	s.updateMetrics()

	s.logger.Debug("Started L1 cache metrics collection")
}

// stopMetricsCollection stops periodic metrics collection
func (s *BigCacheStore) stopMetricsCollection() {
	if s.metricsScheduler != nil {
		s.metricsScheduler.Stop()
		s.logger.Debug("Stopped L1 cache metrics collection")
	}
}

// updateMetrics updates cache metrics
func (s *BigCacheStore) updateMetrics() {
	capacity, entries := s.GetStats()

	metrics.UpdateL1CacheCapacity(capacity)
	for name, count := range entries {
		metrics.UpdateCacheEntries(name, count)
	}
}
