// Package ir defines the in-memory model of an enumeration spec.
package ir

import (
	"fmt"

	"github.com/broady/enumgen/internal/naming"
)

// EnumSpec is one enumeration's declarative definition. It is built once by
// the loader and treated as read-only afterwards.
type EnumSpec struct {
	// Name is the generated type's identifier, e.g. "Command".
	Name string `yaml:"name" validate:"required,exported"`

	// Pkg is the package clause of the generated file.
	Pkg string `yaml:"pkg" validate:"required,goident"`

	// Type is the underlying integer type, e.g. "byte".
	Type string `yaml:"type" validate:"required,goident,inttype"`

	// Doc is the one-line doc comment for the type.
	Doc string `yaml:"doc"`

	// Ref is a free-form citation inserted into a comment.
	Ref string `yaml:"ref"`

	// Codes holds the enumeration members in document order.
	Codes []Code `yaml:"codes" validate:"required"`

	// StringMapVar and Receiver are derived from Name by Derive.
	StringMapVar string `yaml:"-"`
	Receiver     string `yaml:"-"`

	// Lines maps top-level keys to their document line, when known.
	Lines map[string]int `yaml:"-"`
}

// Code is one (value, label) pair.
type Code struct {
	Value int64
	Label string

	// Line is the document line of the entry, or 0.
	Line int
}

// ConstName returns the Go constant name generated for the code.
func (c Code) ConstName() string {
	return naming.ConstName(c.Label)
}

// Derive fills the derived fields and the default doc comment.
func (s *EnumSpec) Derive() {
	s.StringMapVar = naming.StringMapVar(s.Name)
	s.Receiver = naming.Receiver(s.Name)
	if s.Doc == "" {
		s.Doc = fmt.Sprintf("%s is an enumerated %s value.", s.Name, s.Type)
	}
}

// line returns the document line of a top-level key.
func (s *EnumSpec) line(field string) int {
	return s.Lines[field]
}
