package models

import "time"

// UsageAnalytics holds per-collection totals and the shape type distribution.
type UsageAnalytics struct {
	TotalShapes       int64            `json:"total_shapes"`
	TotalProjects     int64            `json:"total_projects"`
	TotalGestures     int64            `json:"total_gestures"`
	ShapeDistribution map[string]int64 `json:"shape_distribution"`
	Timestamp         time.Time        `json:"timestamp"`
}

// ShapeTypeCount is one row of the shape type aggregation.
type ShapeTypeCount struct {
	ShapeType string
	Count     int64
}
