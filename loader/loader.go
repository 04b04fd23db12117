// Package loader reads enumeration specs from YAML documents.
//
// A spec document looks like:
//
//	name: Command
//	pkg: cell
//	type: byte
//	doc: Command represents a cell command.
//	ref: tor-spec.txt section 3
//	codes:
//	  0: PADDING
//	  1: CREATE
//	  7: VERSIONS
//
// Entries under codes keep their document order.
package loader

import (
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/broady/enumgen/ir"
)

// Options configures loading.
type Options struct {
	// Overrides replaces top-level scalar fields after parsing.
	// Valid keys: name, pkg, type, doc, ref.
	Overrides map[string]string

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// document is the raw shape of a spec file. Unknown keys are ignored.
type document struct {
	Name  string    `yaml:"name"`
	Pkg   string    `yaml:"pkg"`
	Type  string    `yaml:"type"`
	Doc   string    `yaml:"doc"`
	Ref   string    `yaml:"ref"`
	Codes yaml.Node `yaml:"codes"`
}

// Load reads the spec at path.
func Load(path string) (*ir.EnumSpec, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads the spec at path, applying opts.
func LoadWithOptions(path string, opts Options) (*ir.EnumSpec, error) {
	log := opts.logger()

	f, err := os.Open(path)
	if err != nil {
		return nil, ir.NotFoundError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ir.NotFoundError(path, err)
	}
	log.Debug("read spec", zap.String("path", path), zap.Int("bytes", len(data)))

	spec, err := Parse(data, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	log.Debug("loaded spec",
		zap.String("path", path),
		zap.String("name", spec.Name),
		zap.String("type", spec.Type),
		zap.Int("codes", len(spec.Codes)))
	return spec, nil
}

// Parse decodes a spec document, validates it and fills its derived fields.
func Parse(data []byte, opts Options) (*ir.EnumSpec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.WithHint(ir.ParseError(err), "the spec must be a well-formed YAML document")
	}

	var doc document
	lines := make(map[string]int)
	if top := documentRoot(&root); top != nil {
		if top.Kind != yaml.MappingNode {
			return nil, ir.SchemaError("", top.Line, "document root must be a mapping, got %s", kindName(top))
		}
		if err := top.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
		for i := 0; i+1 < len(top.Content); i += 2 {
			lines[top.Content[i].Value] = top.Content[i].Line
		}
	}

	codes, err := decodeCodes(&doc.Codes)
	if err != nil {
		return nil, err
	}

	spec := &ir.EnumSpec{
		Name:  doc.Name,
		Pkg:   doc.Pkg,
		Type:  doc.Type,
		Doc:   doc.Doc,
		Ref:   doc.Ref,
		Codes: codes,
		Lines: lines,
	}
	if err := applyOverrides(spec, opts.Overrides); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec.Derive()
	return spec, nil
}

// documentRoot returns the top-level node, or nil for an empty document.
func documentRoot(n *yaml.Node) *yaml.Node {
	if n.Kind != yaml.DocumentNode || len(n.Content) == 0 {
		return nil
	}
	return resolve(n.Content[0])
}

// decodeCodes converts the codes mapping into ordered entries. An absent or
// null node yields nil so validation reports the field as missing.
func decodeCodes(n *yaml.Node) ([]ir.Code, error) {
	n = resolve(n)
	if n.Kind == 0 || isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.WithHint(
			ir.SchemaError("codes", n.Line, "must be a mapping from integer values to labels, got %s", kindName(n)),
			"write each code as `<value>: <LABEL>`, e.g. `0: PADDING`")
	}

	codes := make([]ir.Code, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), resolve(n.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return nil, ir.SchemaError("codes", k.Line, "key must be an integer, got %s", kindName(k))
		}
		value, err := strconv.ParseInt(k.Value, 0, 64)
		if errors.Is(err, strconv.ErrRange) {
			return nil, ir.SchemaError("codes", k.Line, "key %s is out of range: values must fit in int64", k.Value)
		}
		if err != nil {
			return nil, ir.SchemaError("codes", k.Line, "key %q is not an integer", k.Value)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, ir.SchemaError("codes", v.Line, "label for value %d must be a scalar, got %s", value, kindName(v))
		}
		label := v.Value
		if isNull(v) {
			label = ""
		}
		codes = append(codes, ir.Code{Value: value, Label: label, Line: k.Line})
	}
	return codes, nil
}

// decodeError converts a yaml decoding failure of a top-level field.
func decodeError(err error) error {
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		return ir.SchemaError("", 0, "%s", te.Errors[0])
	}
	return ir.SchemaError("", 0, "%v", err)
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		return "a scalar"
	default:
		return "an unexpected node"
	}
}
