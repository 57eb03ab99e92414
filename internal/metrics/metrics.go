package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Interception counters
	InterceptedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_intercepted_requests_total",
			Help: "Total number of requests routed by the agent",
		},
		[]string{"lane"},
	)

	Responses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_responses_total",
			Help: "Total number of responses by lane and cache status",
		},
		[]string{"lane", "cache_status"},
	)

	InterceptDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_intercept_duration_seconds",
			Help:    "Duration of intercepted request handling",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"lane"},
	)

	// Partition counters
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_cache_hits_total",
			Help: "Total number of partition hits",
		},
		[]string{"role"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_cache_misses_total",
			Help: "Total number of partition misses",
		},
		[]string{"role"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_cache_errors_total",
			Help: "Total number of swallowed storage errors",
		},
		[]string{"level", "kind"},
	)

	PartitionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agent_partitions_purged_total",
			Help: "Total number of stale partitions deleted on activation",
		},
	)

	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agent_cache_capacity_bytes",
			Help: "L1 cache capacity in bytes",
		},
		[]string{"level"}, // only "l1"
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agent_cache_entries",
			Help: "Number of entries held in L1 per partition",
		},
		[]string{"partition"},
	)

	// Network and fallback counters
	NetworkFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_network_failures_total",
			Help: "Total number of failed network fetches",
		},
		[]string{"lane", "reason"}, // reason: "timeout" or "error"
	)

	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_fallbacks_total",
			Help: "Total number of synthesized fallback responses",
		},
		[]string{"kind"},
	)

	// Deferred submissions
	SubmissionsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_submissions_enqueued_total",
			Help: "Total number of form submissions stored for replay",
		},
		[]string{"queue"},
	)

	SubmissionReplays = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_submission_replays_total",
			Help: "Total number of submission replay attempts by outcome",
		},
		[]string{"queue", "outcome"},
	)

	// Push notifications
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_notifications_total",
			Help: "Total number of push notifications shown",
		},
		[]string{"body"}, // "payload" or "default"
	)

	NotificationClicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_notification_clicks_total",
			Help: "Total number of notification clicks by action",
		},
		[]string{"action"},
	)

	PendingTasks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agent_pending_tasks",
			Help: "Number of background tasks keeping the agent alive",
		},
	)
)

// RecordIntercept records a routed request
func RecordIntercept(lane string) {
	InterceptedRequests.WithLabelValues(lane).Inc()
}

// RecordResponse records how a response was produced
func RecordResponse(lane, cacheStatus string) {
	Responses.WithLabelValues(lane, cacheStatus).Inc()
}

// TimeIntercept returns a timer function for measuring request handling duration
func TimeIntercept(lane string) func() {
	timer := prometheus.NewTimer(InterceptDuration.WithLabelValues(lane))
	return func() {
		timer.ObserveDuration()
	}
}

// RecordCacheHit records a partition hit
func RecordCacheHit(role string) {
	CacheHits.WithLabelValues(role).Inc()
}

// RecordCacheMiss records a partition miss
func RecordCacheMiss(role string) {
	CacheMisses.WithLabelValues(role).Inc()
}

// RecordCacheError records a storage error that was logged and swallowed
func RecordCacheError(level, kind string) {
	CacheErrors.WithLabelValues(level, kind).Inc()
}

// RecordPartitionsPurged records stale partitions deleted during activation
func RecordPartitionsPurged(count int) {
	PartitionsPurged.Add(float64(count))
}

// UpdateL1CacheCapacity updates L1 cache capacity metrics
func UpdateL1CacheCapacity(capacity int64) {
	CacheCapacity.WithLabelValues("l1").Set(float64(capacity))
}

// UpdateCacheEntries updates the entry count of an L1 partition
func UpdateCacheEntries(partition string, count int) {
	CacheEntries.WithLabelValues(partition).Set(float64(count))
}

// ForgetPartition removes gauges of a dropped partition
func ForgetPartition(partition string) {
	CacheEntries.DeleteLabelValues(partition)
}

// RecordNetworkFailure records a failed network fetch
func RecordNetworkFailure(lane, reason string) {
	NetworkFailures.WithLabelValues(lane, reason).Inc()
}

// RecordFallback records a synthesized response
func RecordFallback(kind string) {
	Fallbacks.WithLabelValues(kind).Inc()
}

// RecordSubmissionEnqueued records a stored form submission
func RecordSubmissionEnqueued(queue string) {
	SubmissionsEnqueued.WithLabelValues(queue).Inc()
}

// RecordSubmissionReplay records a replay attempt outcome
func RecordSubmissionReplay(queue, outcome string) {
	SubmissionReplays.WithLabelValues(queue, outcome).Inc()
}

// RecordNotification records a shown notification
func RecordNotification(body string) {
	Notifications.WithLabelValues(body).Inc()
}

// RecordNotificationClick records a notification click
func RecordNotificationClick(action string) {
	NotificationClicks.WithLabelValues(action).Inc()
}

// UpdatePendingTasks adjusts the number of in-flight background tasks
func UpdatePendingTasks(delta int) {
	PendingTasks.Add(float64(delta))
}
