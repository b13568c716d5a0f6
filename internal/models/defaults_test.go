package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, Vec3{}, DefaultRotation())
	assert.Equal(t, Vec3{X: 1, Y: 1, Z: 1}, DefaultScale())

	m := DefaultMaterial()
	assert.Equal(t, "#00ffff", m["color"])
	assert.Equal(t, 0.8, m["opacity"])

	m["color"] = "#ff0000"
	assert.Equal(t, "#00ffff", DefaultMaterial()["color"], "default material must not be shared")
}
