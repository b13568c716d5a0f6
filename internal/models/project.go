package models

import (
	"time"
)

// Project groups shapes by reference. Shapes holds shape ids only; nothing keeps it in
// sync with the shapes collection.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	Shapes      []string  `json:"shapes" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectCreate struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}
