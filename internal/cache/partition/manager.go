package partition

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"go-offline-agent/internal/interfaces"
	"go-offline-agent/internal/metrics"
	"go-offline-agent/internal/models"
)

var ErrEmptyPartitionName = errors.New("empty partition name")

// Manager owns the named, version-tagged partitions of the agent
type Manager struct {
	store    interfaces.PartitionStore
	names    models.PartitionNames
	logger   *zap.Logger
	mu       sync.Mutex
	opened   map[string]*Handle
	retained map[string]struct{}
}

// NewManager creates a partition manager bound to the configured partition names
func NewManager(store interfaces.PartitionStore, names models.PartitionNames, logger *zap.Logger) *Manager {
	return &Manager{
		store:    store,
		names:    names,
		logger:   logger,
		opened:   make(map[string]*Handle),
		retained: make(map[string]struct{}),
	}
}

// Open returns a handle for the named partition, creating it if absent
func (m *Manager) Open(name string) (*Handle, error) {
	if name == "" {
		return nil, ErrEmptyPartitionName
	}

	// a cached handle says nothing about the store; Create is idempotent
	if err := m.store.Create(name); err != nil {
		return nil, fmt.Errorf("failed to open partition %s: %w", name, err)
	}
	return m.Handle(name), nil
}

// Handle returns a handle for name without touching the store.
// The partition is created lazily on first write.
func (m *Manager) Handle(name string) *Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.opened[name]; ok {
		return h
	}
	h := &Handle{name: name, store: m.store}
	m.opened[name] = h
	return h
}

func (m *Manager) Shell() *Handle   { return m.Handle(m.names.Shell) }
func (m *Manager) Dynamic() *Handle { return m.Handle(m.names.Dynamic) }
func (m *Manager) Image() *Handle   { return m.Handle(m.names.Image) }

// ForRole returns the handle of the partition bound to role
func (m *Manager) ForRole(role models.PartitionRole) (*Handle, error) {
	name, err := m.names.ForRole(role)
	if err != nil {
		return nil, err
	}
	return m.Handle(name), nil
}

// CurrentNames returns the set of partition names of the running version
func (m *Manager) CurrentNames() map[string]struct{} {
	return m.names.Set()
}

// Retain marks partitions that survive every purge regardless of version
func (m *Manager) Retain(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		m.retained[name] = struct{}{}
	}
}

// List returns every partition name known to the store
func (m *Manager) List() ([]string, error) {
	return m.store.Partitions()
}

// PurgeStale deletes every partition whose name is neither in current nor retained.
// Names that could be listed are purged even when part of the listing failed.
func (m *Manager) PurgeStale(current map[string]struct{}) ([]string, error) {
	existing, listErr := m.store.Partitions()
	if listErr != nil {
		m.logger.Warn("partition listing incomplete", zap.Error(listErr))
	}

	m.mu.Lock()
	retained := make(map[string]struct{}, len(m.retained))
	for name := range m.retained {
		retained[name] = struct{}{}
	}
	m.mu.Unlock()

	var deleted []string
	var errs []error
	for _, name := range existing {
		if _, ok := current[name]; ok {
			continue
		}
		if _, ok := retained[name]; ok {
			continue
		}
		if err := m.store.Drop(name); err != nil {
			m.logger.Error("failed to delete stale partition", zap.String("partition", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("partition %s: %w", name, err))
			continue
		}

		m.mu.Lock()
		delete(m.opened, name)
		m.mu.Unlock()

		deleted = append(deleted, name)
		m.logger.Info("deleted stale partition", zap.String("partition", name))
	}

	metrics.RecordPartitionsPurged(len(deleted))
	sort.Strings(deleted)

	if listErr != nil {
		errs = append(errs, fmt.Errorf("failed to list partitions: %w", listErr))
	}
	return deleted, errors.Join(errs...)
}

// Handle is an opened named partition
type Handle struct {
	name  string
	store interfaces.PartitionStore
}

func (h *Handle) Name() string {
	return h.name
}

// Match looks up the stored response for key
func (h *Handle) Match(key string) (*models.CachedResponse, bool) {
	return h.store.Get(h.name, key)
}

// Put stores entry under key, replacing any previous entry
func (h *Handle) Put(key string, entry *models.CachedResponse) error {
	if err := h.store.Put(h.name, key, entry); err != nil {
		return fmt.Errorf("failed to store %s in %s: %w", key, h.name, err)
	}
	return nil
}

func (h *Handle) Delete(key string) error {
	return h.store.Delete(h.name, key)
}

func (h *Handle) Keys() ([]string, error) {
	return h.store.Keys(h.name)
}
