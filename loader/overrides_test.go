package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/enumgen/ir"
)

func TestLoadWithOptions_Overrides(t *testing.T) {
	spec, err := LoadWithOptions(filepath.Join("testdata", "command.yaml"), Options{
		Overrides: map[string]string{
			"pkg":  "relay",
			"name": "CellCommand",
			"ref":  "",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "relay", spec.Pkg)
	assert.Equal(t, "CellCommand", spec.Name)
	assert.Empty(t, spec.Ref)
	assert.Equal(t, "stringsCellCommand", spec.StringMapVar)
	assert.Equal(t, "byte", spec.Type, "fields without an override keep their document value")
	assert.NotContains(t, spec.Lines, "pkg")
	assert.Contains(t, spec.Lines, "type")
}

func TestLoadWithOptions_OverrideSuppliesMissingField(t *testing.T) {
	input := "name: A\ntype: byte\ncodes:\n  1: ONE\n"
	spec, err := Parse([]byte(input), Options{Overrides: map[string]string{"pkg": "gen"}})
	require.NoError(t, err)
	assert.Equal(t, "gen", spec.Pkg)
}

func TestLoadWithOptions_OverrideValidated(t *testing.T) {
	_, err := LoadWithOptions(filepath.Join("testdata", "command.yaml"), Options{
		Overrides: map[string]string{"type": "float64"},
	})
	require.Error(t, err)
	assert.Equal(t, ir.CodeSchema, ir.CodeOf(err))
	assert.Contains(t, err.Error(), "not an integer type")
}

func TestLoadWithOptions_UnknownOverride(t *testing.T) {
	_, err := LoadWithOptions(filepath.Join("testdata", "command.yaml"), Options{
		Overrides: map[string]string{"codes": "1"},
	})
	require.Error(t, err)
	assert.Equal(t, ir.CodeSchema, ir.CodeOf(err))
	assert.Contains(t, err.Error(), "invalid override")
}
