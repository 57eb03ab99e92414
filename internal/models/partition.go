package models

import (
	"fmt"
	"net/http"
	"time"
)

// PartitionRole identifies one of the three versioned storage partitions
type PartitionRole string

const (
	RoleShell   PartitionRole = "shell"
	RoleDynamic PartitionRole = "dynamic"
	RoleImage   PartitionRole = "image"
)

// PartitionNames binds every role to its version-tagged partition name
type PartitionNames struct {
	Shell   string `yaml:"shell" validate:"required"`
	Dynamic string `yaml:"dynamic" validate:"required"`
	Image   string `yaml:"image" validate:"required"`
}

// ForRole returns the partition name bound to role
func (p PartitionNames) ForRole(role PartitionRole) (string, error) {
	switch role {
	case RoleShell:
		return p.Shell, nil
	case RoleDynamic:
		return p.Dynamic, nil
	case RoleImage:
		return p.Image, nil
	default:
		return "", fmt.Errorf("unknown partition role %q", role)
	}
}

// Set returns the three names as a lookup set
func (p PartitionNames) Set() map[string]struct{} {
	return map[string]struct{}{
		p.Shell:   {},
		p.Dynamic: {},
		p.Image:   {},
	}
}

// CachedResponse is a response snapshot bound to a request key
type CachedResponse struct {
	Status   int         `json:"status"`
	Header   http.Header `json:"header"`
	Body     []byte      `json:"body"`
	StoredAt int64       `json:"stored_at"`
}

// Age returns how long ago the snapshot was written
func (c *CachedResponse) Age(now time.Time) time.Duration {
	if c.StoredAt == 0 {
		return 0
	}
	return now.Sub(time.Unix(c.StoredAt, 0))
}
