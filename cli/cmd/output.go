package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/syntax/printer"
)

// Output formats.
const (
	FormatRust = "rust"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Output selects how a syntax node is written.
type Output struct {
	Format string `default:"rust" enum:"rust,yaml,json" help:"Output format (${enum})."  short:"o"`
	Pretty bool   `default:"true"                       help:"Break lines and indent." negatable:""`
	Indent int    `default:"4"                          help:"Indent width."            short:"i"`
}

// Write renders node to w followed by a newline. A string result, such as
// that of a script ending in emit(...), is written unchanged.
func (o Output) Write(ctx context.Context, w io.Writer, node any) error {
	if s, ok := node.(string); ok {
		_, err := fmt.Fprintln(w, s)

		return err
	}

	switch o.Format {
	case FormatYAML:
		return writeYAML(ctx, w, printer.Tree(node), o.Indent)

	case FormatJSON:
		return writeJSON(ctx, w, printer.Tree(node), o.Indent)

	default:
		opts := []printer.Option{printer.WithPretty(o.Pretty)}
		if o.Indent > 0 {
			opts = append(opts, printer.WithIndent(strings.Repeat(" ", o.Indent)))
		}

		if err := printer.Fprint(w, node, opts...); err != nil {
			return err
		}

		if o.Pretty {
			return nil
		}

		_, err := fmt.Fprintln(w)

		return err
	}
}

func writeYAML(ctx context.Context, w io.Writer, tree any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, tree, opts...)
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// writeJSON encodes through the YAML encoder's JSON mode, which keeps the
// field order of [yaml.MapSlice].
func writeJSON(ctx context.Context, w io.Writer, tree any, indent int) error {
	data, err := yaml.MarshalContext(ctx, tree, yaml.JSON())
	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err)
	}

	data = bytes.TrimSpace(data)

	var buf bytes.Buffer
	if indent > 0 {
		err = json.Indent(&buf, data, "", strings.Repeat(" ", indent))
	} else {
		err = json.Compact(&buf, data)
	}

	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err).
			With(slog.Int("bytes", len(data)))
	}

	buf.WriteByte('\n')

	_, err = buf.WriteTo(w)

	return err
}
