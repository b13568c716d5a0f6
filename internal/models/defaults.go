package models

import "gorm.io/datatypes"

const (
	DefaultMaterialColor   = "#00ffff"
	DefaultMaterialOpacity = 0.8
)

// DefaultRotation returns the rotation applied when a shape is created without one.
func DefaultRotation() Vec3 {
	return Vec3{X: 0, Y: 0, Z: 0}
}

// DefaultScale returns the unit scale.
func DefaultScale() Vec3 {
	return Vec3{X: 1, Y: 1, Z: 1}
}

// DefaultMaterial returns a fresh material map so callers never share state.
func DefaultMaterial() datatypes.JSONMap {
	return datatypes.JSONMap{
		"color":   DefaultMaterialColor,
		"opacity": DefaultMaterialOpacity,
	}
}
