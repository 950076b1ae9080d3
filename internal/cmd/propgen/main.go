// Command propgen generates the cross-cutting modifier methods of the syntax
// package from a YAML table of properties.
//
// Each property names a node field and the node types that carry it. For
// every listed type propgen emits the modifiers registered for that property
// in [methods], so adding a node to a concern is a one-line change to the
// table followed by go generate.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/synbuild/log"
)

type propgen struct {
	Input   string `default:"props.yaml"   help:"Property table"       short:"i" type:"existingfile"`
	Output  string `default:"props_gen.go" help:"Generated Go file"    short:"o"`
	Package string `default:"syntax"       help:"Package of the output" short:"p"`
}

func (p *propgen) Run(ctx context.Context) error {
	table, err := load(p.Input)
	if err != nil {
		return err
	}

	src, err := generate(p.Package, table)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "generated modifiers",
		slog.String("output", p.Output),
		slog.Int("props", len(table.Props)),
	)

	return os.WriteFile(p.Output, src, 0o644) //nolint:gosec
}

func main() {
	var cli propgen

	ctx := context.Background()
	ktx := kong.Parse(&cli,
		kong.Name("propgen"),
		kong.Description("Generate cross-cutting syntax node modifiers"),
	)
	ktx.BindTo(ctx, (*context.Context)(nil))

	err := ktx.Run()
	if err != nil {
		log.Error("generate failed", slog.Any("error", err))
		os.Exit(1)
	}
}
