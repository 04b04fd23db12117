package loader

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/schema"

	"github.com/broady/enumgen/ir"
)

// Overrides holds replacement values for top-level spec fields.
type Overrides struct {
	Name string `schema:"name"`
	Pkg  string `schema:"pkg"`
	Type string `schema:"type"`
	Doc  string `schema:"doc"`
	Ref  string `schema:"ref"`
}

var overrideDecoder = newOverrideDecoder()

func newOverrideDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	return d
}

// applyOverrides decodes set into Overrides and replaces each given field on
// spec. A key given with an empty value clears the field.
func applyOverrides(spec *ir.EnumSpec, set map[string]string) error {
	if len(set) == 0 {
		return nil
	}
	values := make(url.Values, len(set))
	for k, v := range set {
		values.Set(k, v)
	}

	var o Overrides
	if err := overrideDecoder.Decode(&o, values); err != nil {
		return errors.WithHint(
			ir.SchemaError("", 0, "invalid override: %v", err),
			"overridable fields are name, pkg, type, doc and ref")
	}

	fields := []struct {
		key string
		dst *string
		val string
	}{
		{"name", &spec.Name, o.Name},
		{"pkg", &spec.Pkg, o.Pkg},
		{"type", &spec.Type, o.Type},
		{"doc", &spec.Doc, o.Doc},
		{"ref", &spec.Ref, o.Ref},
	}
	for _, f := range fields {
		if _, ok := set[f.key]; !ok {
			continue
		}
		*f.dst = f.val
		delete(spec.Lines, f.key)
	}
	return nil
}
