package models

import "time"

// StatusCheck is a diagnostic ping recorded by a client.
type StatusCheck struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ClientName string    `json:"client_name" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required"`
}
