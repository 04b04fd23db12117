package enumgen

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"

	"github.com/broady/enumgen/golang"
	"github.com/broady/enumgen/ir"
	"github.com/broady/enumgen/loader"
	"github.com/broady/enumgen/sink"
)

// Generator provides a fluent API for generating one enumeration.
// Create with FromFile or FromSpec and configure with method chaining.
type Generator struct {
	path      string
	spec      *ir.EnumSpec
	overrides map[string]string
	goimports bool
	logger    *zap.Logger
}

// FromFile returns a Generator for the YAML spec at path.
func FromFile(path string) *Generator {
	return &Generator{path: path}
}

// FromSpec returns a Generator for an in-memory spec. The spec is validated
// and its derived fields filled on a copy when generating.
func FromSpec(spec *ir.EnumSpec) *Generator {
	return &Generator{spec: spec}
}

// WithOverrides replaces top-level spec fields (name, pkg, type, doc, ref)
// after the file is parsed. It has no effect on FromSpec generators.
func (g *Generator) WithOverrides(set map[string]string) *Generator {
	g.overrides = set
	return g
}

// WithGoimports runs the output through goimports, which adds the fmt import
// and applies gofmt layout.
func (g *Generator) WithGoimports() *Generator {
	g.goimports = true
	return g
}

// WithLogger sets the logger used for debug output.
func (g *Generator) WithLogger(l *zap.Logger) *Generator {
	g.logger = l
	return g
}

func (g *Generator) log() *zap.Logger {
	if g.logger == nil {
		return zap.NewNop()
	}
	return g.logger
}

// Load returns the validated spec with derived fields filled in.
func (g *Generator) Load() (*ir.EnumSpec, error) {
	if g.spec == nil {
		return loader.LoadWithOptions(g.path, loader.Options{
			Overrides: g.overrides,
			Logger:    g.logger,
		})
	}

	spec := *g.spec
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec.Derive()
	return &spec, nil
}

// Generate returns the complete generated source. On error no source is
// returned.
func (g *Generator) Generate() ([]byte, error) {
	_, src, err := g.generate()
	return src, err
}

func (g *Generator) generate() (*ir.EnumSpec, []byte, error) {
	spec, err := g.Load()
	if err != nil {
		return nil, nil, err
	}

	src, err := golang.Render(spec)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "render %s", spec.Name)
	}
	g.log().Debug("rendered", zap.String("name", spec.Name), zap.Int("bytes", len(src)))

	if g.goimports {
		src, err = golang.Format(Filename(spec), src)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "format %s", spec.Name)
		}
		g.log().Debug("formatted", zap.String("name", spec.Name), zap.Int("bytes", len(src)))
	}
	return spec, src, nil
}

// ToWriter generates the source and writes it to w in a single call.
func (g *Generator) ToWriter(w io.Writer) error {
	return g.ToSink(context.Background(), sink.NewWriterSink(w), "")
}

// ToSink generates the source and hands it to s as path. When path is empty
// the default Filename is used.
func (g *Generator) ToSink(ctx context.Context, s sink.OutputSink, path string) error {
	spec, src, err := g.generate()
	if err != nil {
		return err
	}
	if path == "" {
		path = Filename(spec)
	}
	if err := s.WriteFile(ctx, path, src); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	g.log().Debug("wrote", zap.String("path", path), zap.Int("bytes", len(src)))
	return nil
}

// Filename returns the conventional output file name for spec, e.g.
// "link_spec_type_gen.go" for LinkSpecType.
func Filename(spec *ir.EnumSpec) string {
	return strcase.ToSnake(spec.Name) + "_gen.go"
}
