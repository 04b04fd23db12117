package ir

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/broady/enumgen/internal/naming"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "goident", func(fl validator.FieldLevel) bool {
		return naming.IsIdentifier(fl.Field().String())
	})
	mustRegister(v, "exported", func(fl validator.FieldLevel) bool {
		return naming.IsExported(fl.Field().String())
	})
	mustRegister(v, "inttype", func(fl validator.FieldLevel) bool {
		return !naming.IsNonIntegerBuiltin(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks the spec and returns the first problem found as a
// SchemaError.
func (s *EnumSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return s.fieldError(verrs[0])
		}
		return SchemaError("", 0, "%v", err)
	}
	return s.validateCodes()
}

func (s *EnumSpec) fieldError(fe validator.FieldError) error {
	field := fe.Field()
	line := s.line(field)
	switch fe.Tag() {
	case "required":
		return SchemaError(field, line, "required field is missing")
	case "goident":
		return SchemaError(field, line, "%q is not a valid Go identifier", fe.Value())
	case "exported":
		return errors.WithHint(
			SchemaError(field, line, "%q is not an exported Go identifier", fe.Value()),
			"the type name must start with an upper-case letter")
	case "inttype":
		return SchemaError(field, line, "%q is not an integer type", fe.Value())
	default:
		return SchemaError(field, line, "failed %q validation", fe.Tag())
	}
}

// validateCodes checks value uniqueness, range and the generated constant
// names.
func (s *EnumSpec) validateCodes() error {
	reserved := map[string]string{
		s.Name:                      "the type name",
		"Is" + s.Name:               "the validity check function",
		naming.StringMapVar(s.Name): "the lookup table",
	}
	bounds, bounded := naming.IntegerRange(s.Type)

	values := make(map[int64]Code, len(s.Codes))
	names := make(map[string]Code, len(s.Codes))
	for _, c := range s.Codes {
		if c.Label == "" {
			return SchemaError("codes", c.Line, "value %d has an empty label", c.Value)
		}
		if prev, dup := values[c.Value]; dup {
			return SchemaError("codes", c.Line, "duplicate value %d (labels %q and %q)", c.Value, prev.Label, c.Label)
		}
		values[c.Value] = c

		if bounded && !bounds.Contains(c.Value) {
			return SchemaError("codes", c.Line, "value %d of %q overflows %s", c.Value, c.Label, s.Type)
		}

		name := c.ConstName()
		if !naming.IsExported(name) {
			return SchemaError("codes", c.Line, "label %q yields constant name %q, which is not a valid exported Go identifier", c.Label, name)
		}
		if what, clash := reserved[name]; clash {
			return SchemaError("codes", c.Line, "label %q yields constant %s, which collides with %s", c.Label, name, what)
		}
		if prev, dup := names[name]; dup {
			return SchemaError("codes", c.Line, "labels %q and %q both yield constant %s", prev.Label, c.Label, name)
		}
		names[name] = c
	}
	return nil
}
