package models

import (
	"time"

	"gorm.io/datatypes"
)

// Shape is a single 3D primitive placed in the scene.
type Shape struct {
	ID        string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShapeType string            `json:"shape_type" gorm:"not null;index"`
	Position  Vec3              `json:"position" gorm:"embedded;embeddedPrefix:position_"`
	Rotation  Vec3              `json:"rotation" gorm:"embedded;embeddedPrefix:rotation_"`
	Scale     Vec3              `json:"scale" gorm:"embedded;embeddedPrefix:scale_"`
	Material  datatypes.JSONMap `json:"material" swaggertype:"object"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (Shape) TableName() string {
	return "shapes"
}

// ShapeCreate is the request body accepted when a shape is created.
type ShapeCreate struct {
	ShapeType string                 `json:"shape_type" validate:"required"`
	Position  *Vec3                  `json:"position" validate:"required"`
	Rotation  *Vec3                  `json:"rotation,omitempty"`
	Scale     *Vec3                  `json:"scale,omitempty"`
	Material  map[string]interface{} `json:"material,omitempty"`
}

// ShapeUpdate carries a partial update. Nil fields are left untouched.
type ShapeUpdate struct {
	Position *Vec3                  `json:"position,omitempty"`
	Rotation *Vec3                  `json:"rotation,omitempty"`
	Scale    *Vec3                  `json:"scale,omitempty"`
	Material map[string]interface{} `json:"material,omitempty"`
}
