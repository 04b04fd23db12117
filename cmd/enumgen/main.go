package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/broady/enumgen"
	"github.com/broady/enumgen/internal/watch"
	"github.com/broady/enumgen/sink"
)

type CLI struct {
	Spec      string            `arg:"" help:"Path to the enum spec (YAML)."`
	Output    string            `help:"Write to this file instead of stdout." short:"o"`
	Goimports bool              `help:"Add missing imports and gofmt the output."`
	Set       map[string]string `help:"Override a top-level spec field (name, pkg, type, doc, ref)." placeholder:"KEY=VALUE"`
	Watch     bool              `help:"Regenerate whenever the spec changes. Requires --output." short:"w"`
	Verbose   bool              `help:"Log debug output to stderr." short:"v"`
	Version   kong.VersionFlag  `help:"Print version information."`
}

func (c *CLI) Validate() error {
	if c.Watch && c.Output == "" {
		return errors.New("--watch requires --output")
	}
	return nil
}

func (c *CLI) Run(ctx context.Context, stdout io.Writer, logger *zap.Logger) error {
	gen := enumgen.FromFile(c.Spec).WithOverrides(c.Set).WithLogger(logger)
	if c.Goimports {
		gen = gen.WithGoimports()
	}

	if c.Output == "" {
		return gen.ToSink(ctx, sink.NewWriterSink(stdout), "")
	}

	out := sink.NewFilesystemSink(filepath.Dir(c.Output))
	name := filepath.Base(c.Output)
	build := func(ctx context.Context) error {
		return gen.ToSink(ctx, out, name)
	}
	if !c.Watch {
		return build(ctx)
	}
	return watch.New(c.Spec, build, logger).Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	exitCode := -1
	parser, err := kong.New(cli,
		kong.Name("enumgen"),
		kong.Description("Generate a typed Go enumeration from a YAML spec and print it to stdout."),
		kong.Vars{"version": Version()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "enumgen: error: %v\n", err)
		return 2
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		printError(stderr, err)
		return 2
	}

	logger := newLogger(stderr, cli.Verbose)
	defer func() { _ = logger.Sync() }()

	if err := cli.Run(ctx, stdout, logger); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "enumgen: error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "enumgen: hint: %s\n", hint)
	}
}
