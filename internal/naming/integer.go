package naming

import "math"

// IntRange is the inclusive range representable by a predeclared integer type.
type IntRange struct {
	Min int64
	Max uint64
}

// Contains reports whether v is representable.
func (r IntRange) Contains(v int64) bool {
	if v < r.Min {
		return false
	}
	return v < 0 || uint64(v) <= r.Max
}

var integerRanges = map[string]IntRange{
	"int8":    {math.MinInt8, math.MaxInt8},
	"int16":   {math.MinInt16, math.MaxInt16},
	"int32":   {math.MinInt32, math.MaxInt32},
	"rune":    {math.MinInt32, math.MaxInt32},
	"int64":   {math.MinInt64, math.MaxInt64},
	"int":     {math.MinInt64, math.MaxInt64},
	"uint8":   {0, math.MaxUint8},
	"byte":    {0, math.MaxUint8},
	"uint16":  {0, math.MaxUint16},
	"uint32":  {0, math.MaxUint32},
	"uint64":  {0, math.MaxUint64},
	"uint":    {0, math.MaxUint64},
	"uintptr": {0, math.MaxUint64},
}

// nonInteger lists predeclared types that cannot back an enumeration.
var nonInteger = map[string]bool{
	"bool":       true,
	"string":     true,
	"float32":    true,
	"float64":    true,
	"complex64":  true,
	"complex128": true,
	"error":      true,
	"any":        true,
}

// IntegerRange returns the value range of a predeclared integer type. ok is
// false for any other type name, including user-defined ones whose range is
// unknown here.
func IntegerRange(typ string) (r IntRange, ok bool) {
	r, ok = integerRanges[typ]
	return r, ok
}

// IsNonIntegerBuiltin reports whether typ names a predeclared type that is
// not an integer.
func IsNonIntegerBuiltin(typ string) bool {
	return nonInteger[typ]
}
