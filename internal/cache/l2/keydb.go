package l2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-offline-agent/internal/config"
	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
)

// Ensure KeyDBStore implements interfaces.PartitionStore
var _ interfaces.PartitionStore = (*KeyDBStore)(nil)

// KeyDBStore implements the partition store on Redis/KeyDB.
// Every partition is a hash keyed by request key; a set indexes partition names.
type KeyDBStore struct {
	client interfaces.KeyDbClient
	config *config.Config
	logger *zap.Logger
}

// NewKeyDBStore creates a new KeyDBStore instance with provided client
func NewKeyDBStore(cfg *config.Config, client interfaces.KeyDbClient, logger *zap.Logger) *KeyDBStore {
	return &KeyDBStore{
		client: client,
		config: cfg,
		logger: logger,
	}
}

func (kc *KeyDBStore) indexKey() string {
	return kc.config.L2.KeyPrefix + ":partitions"
}

func (kc *KeyDBStore) partitionKey(partition string) string {
	return kc.config.L2.KeyPrefix + ":partition:" + partition
}

func (kc *KeyDBStore) readContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), kc.config.GetReadTimeout())
}

func (kc *KeyDBStore) writeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), kc.config.GetSendTimeout())
}

// Create registers the partition name
func (kc *KeyDBStore) Create(partition string) error {
	ctx, cancel := kc.writeContext()
	defer cancel()

	if err := kc.client.SAdd(ctx, kc.indexKey(), partition).Err(); err != nil {
		metrics.RecordCacheError("l2", "upstream")
		return fmt.Errorf("failed to register partition %s: %w", partition, err)
	}
	return nil
}

// Get retrieves an entry from a partition hash
func (kc *KeyDBStore) Get(partition, key string) (*models.CachedResponse, bool) {
	ctx, cancel := kc.readContext()
	defer cancel()

	data, err := kc.client.HGet(ctx, kc.partitionKey(partition), key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			kc.logger.Error("L2 cache get error",
				zap.String("partition", partition),
				zap.String("key", key),
				zap.Error(err))
			metrics.RecordCacheError("l2", "upstream")
		}
		return nil, false
	}

	var entry models.CachedResponse
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		kc.logger.Error("Failed to unmarshal L2 cache entry",
			zap.String("partition", partition),
			zap.String("key", key),
			zap.Error(err))
		metrics.RecordCacheError("l2", "decode")
		kc.client.HDel(context.Background(), kc.partitionKey(partition), key)
		return nil, false
	}

	return &entry, true
}

// Put stores an entry and registers the partition
func (kc *KeyDBStore) Put(partition, key string, entry *models.CachedResponse) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		metrics.RecordCacheError("l2", "encode")
		return fmt.Errorf("failed to marshal L2 cache entry: %w", err)
	}

	if err := kc.Create(partition); err != nil {
		return err
	}

	ctx, cancel := kc.writeContext()
	defer cancel()

	if err := kc.client.HSet(ctx, kc.partitionKey(partition), key, data).Err(); err != nil {
		metrics.RecordCacheError("l2", "upstream")
		return fmt.Errorf("failed to set L2 cache entry: %w", err)
	}
	return nil
}

// Delete removes an entry from a partition hash
func (kc *KeyDBStore) Delete(partition, key string) error {
	ctx, cancel := kc.writeContext()
	defer cancel()

	if err := kc.client.HDel(ctx, kc.partitionKey(partition), key).Err(); err != nil {
		return fmt.Errorf("failed to delete L2 cache entry: %w", err)
	}
	return nil
}

// Keys lists the request keys of a partition
func (kc *KeyDBStore) Keys(partition string) ([]string, error) {
	ctx, cancel := kc.readContext()
	defer cancel()

	keys, err := kc.client.HKeys(ctx, kc.partitionKey(partition)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of partition %s: %w", partition, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Partitions lists every registered partition name
func (kc *KeyDBStore) Partitions() ([]string, error) {
	ctx, cancel := kc.readContext()
	defer cancel()

	names, err := kc.client.SMembers(ctx, kc.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Drop deletes the partition hash and unregisters its name
func (kc *KeyDBStore) Drop(partition string) error {
	ctx, cancel := kc.writeContext()
	defer cancel()

	if err := kc.client.Del(ctx, kc.partitionKey(partition)).Err(); err != nil {
		return fmt.Errorf("failed to delete partition %s: %w", partition, err)
	}
	if err := kc.client.SRem(ctx, kc.indexKey(), partition).Err(); err != nil {
		return fmt.Errorf("failed to unregister partition %s: %w", partition, err)
	}
	return nil
}

// Close closes the KeyDB connection
func (kc *KeyDBStore) Close() error {
	return kc.client.Close()
}
