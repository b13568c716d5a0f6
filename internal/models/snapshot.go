package models

import "time"

// SceneSnapshot is the archived form of the scene at one point in time.
type SceneSnapshot struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Count   int       `json:"count"`
	Objects []Shape   `json:"objects"`
}

// SnapshotInfo describes a snapshot that was just written.
type SnapshotInfo struct {
	ID      string    `json:"id"`
	Key     string    `json:"key"`
	Size    int64     `json:"size"`
	Count   int       `json:"count"`
	TakenAt time.Time `json:"taken_at"`
}

// SnapshotListing is one entry of the snapshot listing. The shape count is
// only known after downloading, so it is not part of the listing.
type SnapshotListing struct {
	ID      string    `json:"id"`
	Key     string    `json:"key"`
	Size    int64     `json:"size"`
	TakenAt time.Time `json:"taken_at"`
}
