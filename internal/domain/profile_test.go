package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfileFields(t *testing.T) {
	set, err := NormalizeProfileFields(map[string]interface{}{
		"nombre":      "  Ana ",
		"altura":      172.0,
		"edad":        31,
		"peso_actual": 80.5,
		"genero":      "",
		"usuario_id":  "u-2",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"nombre":      "Ana",
		"altura":      int64(172),
		"edad":        int64(31),
		"peso_actual": 80.5,
		"genero":      nil,
	}, set)
}

func TestNormalizeProfileFields_Invalid(t *testing.T) {
	for _, fields := range []map[string]interface{}{
		{},
		{"role": "admin"},
		{"nombre": map[string]interface{}{"first": "Ana"}},
		{"edad": "abc"},
		{"edad": 30.5},
		{"altura": -1.0},
		{"peso_objetivo": "70"},
	} {
		_, err := NormalizeProfileFields(fields)
		assert.ErrorIs(t, err, ErrInvalidInput, "%v", fields)
	}
}

func TestProfileColumnsSorted(t *testing.T) {
	cols := ProfileColumns(map[string]interface{}{"peso_objetivo": 1, "edad": 2, "x": 3})
	assert.Equal(t, []string{"edad", "peso_objetivo"}, cols)
}
