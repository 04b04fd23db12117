package naming

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerRange(t *testing.T) {
	tests := []struct {
		typ   string
		value int64
		want  bool
	}{
		{"byte", 0, true},
		{"byte", 255, true},
		{"byte", 256, false},
		{"byte", -1, false},
		{"int8", -128, true},
		{"int8", 128, false},
		{"uint16", 65535, true},
		{"uint16", 65536, false},
		{"int32", math.MinInt32, true},
		{"rune", math.MaxInt32 + 1, false},
		{"int64", math.MinInt64, true},
		{"uint64", math.MaxInt64, true},
		{"uint64", -1, false},
	}

	for _, tt := range tests {
		r, ok := IntegerRange(tt.typ)
		require.True(t, ok, "type %s", tt.typ)
		assert.Equal(t, tt.want, r.Contains(tt.value), "%s(%d)", tt.typ, tt.value)
	}
}

func TestIntegerRange_Unknown(t *testing.T) {
	_, ok := IntegerRange("CellCommand")
	assert.False(t, ok)
	_, ok = IntegerRange("string")
	assert.False(t, ok)
}

func TestIsNonIntegerBuiltin(t *testing.T) {
	assert.True(t, IsNonIntegerBuiltin("string"))
	assert.True(t, IsNonIntegerBuiltin("float64"))
	assert.False(t, IsNonIntegerBuiltin("uint8"))
	assert.False(t, IsNonIntegerBuiltin("Code"))
}
