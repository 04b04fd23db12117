package ir

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandSpec() *EnumSpec {
	return &EnumSpec{
		Name: "Command",
		Pkg:  "cell",
		Type: "byte",
		Codes: []Code{
			{Value: 0, Label: "PADDING", Line: 5},
			{Value: 1, Label: "CREATE", Line: 6},
			{Value: 7, Label: "VERSIONS", Line: 7},
		},
		Lines: map[string]int{"name": 1, "pkg": 2, "type": 3, "codes": 4},
	}
}

func TestEnumSpec_Validate_OK(t *testing.T) {
	require.NoError(t, commandSpec().Validate())
}

func TestEnumSpec_Validate_EmptyCodes(t *testing.T) {
	s := commandSpec()
	s.Codes = []Code{}
	assert.NoError(t, s.Validate())
}

func TestEnumSpec_Validate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *EnumSpec)
		field   string
		line    int
		errMsg  string
		hasHint bool
	}{
		{
			name:   "missing name",
			mutate: func(s *EnumSpec) { s.Name = "" },
			field:  "name",
			line:   1,
			errMsg: "required field is missing",
		},
		{
			name:   "missing pkg",
			mutate: func(s *EnumSpec) { s.Pkg = "" },
			field:  "pkg",
			line:   2,
			errMsg: "required field is missing",
		},
		{
			name:   "missing type",
			mutate: func(s *EnumSpec) { s.Type = "" },
			field:  "type",
			line:   3,
			errMsg: "required field is missing",
		},
		{
			name:   "missing codes",
			mutate: func(s *EnumSpec) { s.Codes = nil },
			field:  "codes",
			line:   4,
			errMsg: "required field is missing",
		},
		{
			name:    "unexported name",
			mutate:  func(s *EnumSpec) { s.Name = "command" },
			field:   "name",
			line:    1,
			errMsg:  "not an exported Go identifier",
			hasHint: true,
		},
		{
			name:   "package is keyword",
			mutate: func(s *EnumSpec) { s.Pkg = "func" },
			field:  "pkg",
			line:   2,
			errMsg: "not a valid Go identifier",
		},
		{
			name:   "qualified type",
			mutate: func(s *EnumSpec) { s.Type = "cell.Code" },
			field:  "type",
			line:   3,
			errMsg: "not a valid Go identifier",
		},
		{
			name:   "string type",
			mutate: func(s *EnumSpec) { s.Type = "string" },
			field:  "type",
			line:   3,
			errMsg: "not an integer type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := commandSpec()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, CodeSchema, e.Code)
			assert.Equal(t, tt.field, e.Field)
			assert.Equal(t, tt.line, e.Line)
			assert.Contains(t, err.Error(), tt.errMsg)
			if tt.hasHint {
				assert.NotEmpty(t, errors.GetAllHints(err))
			}
		})
	}
}

func TestEnumSpec_Validate_Codes(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		codes  []Code
		line   int
		errMsg string
	}{
		{
			name:   "empty label",
			codes:  []Code{{Value: 1, Label: "", Line: 9}},
			line:   9,
			errMsg: "value 1 has an empty label",
		},
		{
			name:   "duplicate value",
			codes:  []Code{{Value: 1, Label: "A", Line: 5}, {Value: 1, Label: "B", Line: 6}},
			line:   6,
			errMsg: "duplicate value 1",
		},
		{
			name:   "overflow byte",
			codes:  []Code{{Value: 256, Label: "BIG", Line: 5}},
			line:   5,
			errMsg: "overflows byte",
		},
		{
			name:   "negative for unsigned",
			codes:  []Code{{Value: -1, Label: "NEG", Line: 5}},
			line:   5,
			errMsg: "overflows byte",
		},
		{
			name:   "label starting with digit",
			codes:  []Code{{Value: 1, Label: "2FAST", Line: 5}},
			line:   5,
			errMsg: "not a valid exported Go identifier",
		},
		{
			name:   "label without letters",
			codes:  []Code{{Value: 1, Label: "__", Line: 5}},
			line:   5,
			errMsg: "not a valid exported Go identifier",
		},
		{
			name:   "punctuation in label",
			codes:  []Code{{Value: 1, Label: "A/B", Line: 5}},
			line:   5,
			errMsg: `label "A/B" yields constant name "A/b"`,
		},
		{
			name:   "pascal collision",
			codes:  []Code{{Value: 1, Label: "CREATE_FAST", Line: 5}, {Value: 2, Label: "create-fast", Line: 6}},
			line:   6,
			errMsg: `labels "CREATE_FAST" and "create-fast" both yield constant CreateFast`,
		},
		{
			name:   "collides with type name",
			codes:  []Code{{Value: 1, Label: "COMMAND", Line: 5}},
			line:   5,
			errMsg: "collides with the type name",
		},
		{
			name:   "collides with check function",
			codes:  []Code{{Value: 1, Label: "IS_COMMAND", Line: 5}},
			line:   5,
			errMsg: "collides with the validity check function",
		},
		{
			name:   "negative allowed for signed",
			typ:    "int8",
			codes:  []Code{{Value: -128, Label: "MIN", Line: 5}, {Value: 128, Label: "OVER", Line: 6}},
			line:   6,
			errMsg: "overflows int8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := commandSpec()
			if tt.typ != "" {
				s.Type = tt.typ
			}
			s.Codes = tt.codes
			err := s.Validate()
			require.Error(t, err)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, CodeSchema, e.Code)
			assert.Equal(t, "codes", e.Field)
			assert.Equal(t, tt.line, e.Line)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEnumSpec_Validate_UnknownTypeIsUnbounded(t *testing.T) {
	s := commandSpec()
	s.Type = "Opcode"
	s.Codes = append(s.Codes, Code{Value: 1 << 40, Label: "HUGE"})
	assert.NoError(t, s.Validate())
}
