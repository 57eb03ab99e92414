package models

// Lane is the fetch strategy assigned to an intercepted request
type Lane string

const (
	// LanePassThrough requests are not intercepted and go straight to the network
	LanePassThrough Lane = "passthrough"
	LaneBypass      Lane = "bypass"
	LaneDocument    Lane = "document"
	LaneStatic      Lane = "cacheable-static"
	LaneDynamic     Lane = "cacheable-dynamic"
)

// Intercepted reports whether the agent handles the lane itself
func (l Lane) Intercepted() bool {
	return l != LanePassThrough
}

// CacheStatus describes how a response was produced
type CacheStatus string

const (
	CacheStatusHit      CacheStatus = "HIT"
	CacheStatusMiss     CacheStatus = "MISS"
	CacheStatusBypass   CacheStatus = "BYPASS"
	CacheStatusNetwork  CacheStatus = "NETWORK"
	CacheStatusFallback CacheStatus = "FALLBACK"
)

// CacheStatusHeader carries the CacheStatus on every response produced by the agent
const CacheStatusHeader = "X-Agent-Cache"
