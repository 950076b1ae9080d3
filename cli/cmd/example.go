package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/synbuild/log"
	"github.com/ardnew/synbuild/syntax"
)

// Example prints a three-variant enum built with the syntax constructors.
type Example struct {
	Output `embed:""`
}

// Run executes the example command.
func (e *Example) Run(ctx context.Context) error {
	log.DebugContext(ctx, "example", slog.String("format", e.Format))

	return e.Write(ctx, os.Stdout, ExampleEnum())
}

// ExampleEnum returns
//
//	pub enum my_enum { A(A, B), B, C { other: A, one: B } }
func ExampleEnum() *syntax.ItemEnum {
	return syntax.NewItemEnum("my_enum").WithVariants(
		syntax.NewVariant("A").WithFields(syntax.NewFieldsUnnamed(
			syntax.NewField(syntax.NewTypePath("A")),
			syntax.NewField(syntax.NewTypePath("B")),
		)),
		syntax.NewVariant("B"),
		syntax.NewVariant("C").WithFields(syntax.NewFieldsNamed(
			syntax.NewField(syntax.NewTypePath("A")).WithIdent("other"),
			syntax.NewField(syntax.NewTypePath("B")).WithIdent("one"),
		)),
	)
}
