package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Score *float64 `json:"score" validate:"required"`
	Kind  string   `json:"kind,omitempty" validate:"omitempty,oneof=a b"`
}

func TestValidateStruct_OK(t *testing.T) {
	zero := 0.0
	assert.Nil(t, ValidateStruct(&sample{Name: "x", Score: &zero}))
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := ValidateStruct(&sample{Kind: "c"})
	require.NotNil(t, err)
	require.Len(t, err.Fields, 3)

	assert.Equal(t, "name", err.Fields[0].Field)
	assert.Equal(t, "name is required", err.Fields[0].Message)
	assert.Equal(t, "score is required", err.Fields[1].Message)
	assert.Equal(t, "kind must be one of: a b", err.Fields[2].Message)
	assert.Equal(t, "name is required; score is required; kind must be one of: a b", err.Error())
}
