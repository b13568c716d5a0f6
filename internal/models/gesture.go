package models

import (
	"time"
)

// Gesture is one append-only hand tracking sample.
type Gesture struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PinchStrength float64   `json:"pinch_strength"`
	GrabStrength  float64   `json:"grab_strength"`
	HandPresent   bool      `json:"hand_present"`
	Confidence    float64   `json:"confidence"`
	HandLandmarks []Vec3    `json:"hand_landmarks" gorm:"serializer:json"`
	Timestamp     time.Time `json:"timestamp" gorm:"index"`
}

func (Gesture) TableName() string {
	return "gestures"
}

type GestureCreate struct {
	PinchStrength *float64 `json:"pinch_strength" validate:"required"`
	GrabStrength  *float64 `json:"grab_strength" validate:"required"`
	HandPresent   *bool    `json:"hand_present" validate:"required"`
	Confidence    *float64 `json:"confidence" validate:"required"`
	HandLandmarks []Vec3   `json:"hand_landmarks,omitempty"`
}

// GestureStats summarizes the gesture collection.
type GestureStats struct {
	TotalGestures        int64   `json:"total_gestures"`
	AveragePinchStrength float64 `json:"average_pinch_strength"`
	AverageGrabStrength  float64 `json:"average_grab_strength"`
	TotalSessions        int64   `json:"total_sessions"`
}
