// Package store provides SQLite persistence for career entries and
// insight snapshots.
package store

import "time"

// Snapshot represents a point-in-time capture of the insight metrics.
type Snapshot struct {
	ID           int64     `json:"id"`
	TakenAt      time.Time `json:"taken_at"`
	Command      string    `json:"command"`
	Version      string    `json:"version"`
	TotalEntries int       `json:"total_entries"`
}

// InsightMetric represents a named metric value within a snapshot.
type InsightMetric struct {
	ID          int64   `json:"id"`
	SnapshotID  int64   `json:"snapshot_id"`
	MetricName  string  `json:"metric_name"`
	MetricValue float64 `json:"metric_value"`
	Detail      string  `json:"detail,omitempty"`
}

// Filter narrows a ListEntries query. Zero values leave the dimension
// unconstrained.
type Filter struct {
	Category string
	Project  string
	Days     int
	Limit    int
}

// SnapshotDiff represents the comparison between two snapshots.
type SnapshotDiff struct {
	Previous *Snapshot     `json:"previous"`
	Current  *Snapshot     `json:"current"`
	Deltas   []MetricDelta `json:"deltas"`
}

// MetricDelta represents the change in a single metric between snapshots.
type MetricDelta struct {
	Name      string  `json:"name"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"` // "improved", "regressed", "unchanged"
}
