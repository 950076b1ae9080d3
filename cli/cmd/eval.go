package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/synbuild/log"
	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/script"
)

// Eval evaluates scripts and prints the syntax they build.
type Eval struct {
	Output `embed:""`

	Expr    []string `help:"Script text to evaluate; may be repeated." short:"e"`
	Scripts []string `arg:"" help:"Script files, names on the search path, or '-' for stdin." name:"script" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	return evaluate(ctx, e.Expr, e.Scripts, func(node any) error {
		return e.Write(ctx, os.Stdout, node)
	})
}

// Dump evaluates scripts and prints the structure of the resulting trees.
type Dump struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                     help:"Indent width."            short:"i"`

	Expr    []string `help:"Script text to evaluate; may be repeated." short:"e"`
	Scripts []string `arg:"" help:"Script files, names on the search path, or '-' for stdin." name:"script" optional:""`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := Output{Format: d.Format, Indent: d.Indent}

	return evaluate(ctx, d.Expr, d.Scripts, func(node any) error {
		return out.Write(ctx, os.Stdout, node)
	})
}

// evaluate runs each expression and then each named script in order,
// passing every result to emit.
func evaluate(
	ctx context.Context,
	exprs, scripts []string,
	emit func(node any) error,
) error {
	if len(exprs) == 0 && len(scripts) == 0 {
		return ErrNoInput
	}

	opts := []script.Option{script.WithLogger(log.Default())}

	for _, src := range exprs {
		node, err := script.Eval(ctx, src, opts...)
		if err != nil {
			return err
		}

		if err := emit(node); err != nil {
			return err
		}
	}

	srcs, err := openSources(scripts, SearchPathFrom(ctx))
	if err != nil {
		return err
	}

	defer closeSources(srcs)

	for _, src := range srcs {
		node, err := run(ctx, src.name, src, opts...)
		if err != nil {
			return err
		}

		if err := emit(node); err != nil {
			return err
		}
	}

	return nil
}

func run(
	ctx context.Context,
	name string,
	r io.Reader,
	opts ...script.Option,
) (any, error) {
	p, err := script.Load(ctx, r, opts...)
	if err != nil {
		return nil, wrapScript(err, name)
	}

	node, err := script.Run(ctx, p, opts...)
	if err != nil {
		return nil, wrapScript(err, name)
	}

	return node, nil
}

func wrapScript(err error, name string) error {
	return pkg.WrapError(err).With(slog.String("script", name))
}
