// Package golang renders enumeration specs as Go source.
package golang

import (
	"bytes"
	"io"
	"text/template"

	"github.com/broady/enumgen/ir"
)

// Emitter expands the enum templates against a spec.
type Emitter struct {
	tmpl *template.Template
}

// NewEmitter returns an Emitter using the built-in templates.
func NewEmitter() *Emitter {
	return &Emitter{tmpl: templates}
}

// entry is the per-code template data. Spec fields are promoted so entry
// templates can refer to {{.Name}} as well as {{.Value}} and {{.Label}}.
type entry struct {
	*ir.EnumSpec
	ir.Code

	// LabelPascal is the constant name, derived from the lowercased label.
	LabelPascal string
}

// Emit writes the five blocks for spec to buf: header, constants, lookup
// table, String method and validity check. On error buf may hold a partial
// rendering; callers should discard it.
func (e *Emitter) Emit(buf *bytes.Buffer, spec *ir.EnumSpec) error {
	if err := checkRenderable(spec); err != nil {
		return err
	}

	steps := []func() error{
		func() error { return e.execute(buf, tmplHeader, spec) },
		func() error { return e.execute(buf, tmplConstOpen, spec) },
		func() error { return e.foreachCode(buf, spec, tmplConstEntry) },
		func() error { return e.execute(buf, tmplConstClose, spec) },
		func() error { return e.execute(buf, tmplMapOpen, spec) },
		func() error { return e.foreachCode(buf, spec, tmplMapEntry) },
		func() error { return e.execute(buf, tmplMapClose, spec) },
		func() error { return e.execute(buf, tmplStringer, spec) },
		func() error { return e.execute(buf, tmplValidator, spec) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// foreachCode expands the named per-entry template once per code, in spec
// order.
func (e *Emitter) foreachCode(w io.Writer, spec *ir.EnumSpec, name string) error {
	for _, c := range spec.Codes {
		data := entry{
			EnumSpec:    spec,
			Code:        c,
			LabelPascal: c.ConstName(),
		}
		if err := e.execute(w, name, data); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) execute(w io.Writer, name string, data any) error {
	if err := e.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return ir.TemplateError("", "expanding %s", name).WithCause(err)
	}
	return nil
}

// checkRenderable reports fields the templates need but spec lacks. Specs
// produced by the loader always pass.
func checkRenderable(spec *ir.EnumSpec) error {
	if spec == nil {
		return ir.TemplateError("", "nil spec")
	}
	required := []struct {
		field string
		value string
	}{
		{"name", spec.Name},
		{"pkg", spec.Pkg},
		{"type", spec.Type},
		{"doc", spec.Doc},
		{"string_map_var", spec.StringMapVar},
		{"receiver", spec.Receiver},
	}
	for _, r := range required {
		if r.value == "" {
			return ir.TemplateError(r.field, "missing at render time")
		}
	}
	return nil
}

// Render returns the generated source for spec. Nothing is returned unless
// every block rendered.
func Render(spec *ir.EnumSpec) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEmitter().Emit(&buf, spec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
