// Package printer renders trees built with package syntax as source tokens.
//
// [Tokens] returns the flat token sequence of a node. [Fprint] and [Sprint]
// lay the tokens out as text, either on one line separated by single spaces
// or, with [WithPretty], broken into indented lines at braces and
// semicolons. [Tree] returns a structural dump of a node for YAML or JSON
// encoding.
//
// The printer reproduces the tree as built. It does not insert parentheses
// for operator precedence; wrap operands in [syntax.ExprParen] where needed.
package printer

import (
	"io"
	"strings"
)

type config struct {
	pretty bool
	indent string
}

// Option configures the text layout of [Fprint] and [Sprint].
type Option func(config) config

// DefaultIndent is the indentation unit used by [WithPretty].
const DefaultIndent = "    "

// WithPretty breaks the output into lines after opening braces, closing
// braces and semicolons, indenting nested braces.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

// WithIndent sets the indentation unit used in pretty output.
func WithIndent(indent string) Option {
	return func(c config) config {
		c.indent = indent

		return c
	}
}

func makeConfig(opts ...Option) config {
	c := config{indent: DefaultIndent}
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Tokens returns the source tokens of node. The node may be any value from
// package syntax: a category value, a concrete node, a token or an
// [syntax.Ident].
func Tokens(node any) ([]string, error) {
	var e emitter

	e.node(node)

	if e.err != nil {
		return nil, e.err
	}

	return e.toks, nil
}

// Fprint writes the source text of node to w.
func Fprint(w io.Writer, node any, opts ...Option) error {
	toks, err := Tokens(node)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, layout(toks, makeConfig(opts...)))

	return err
}

// Sprint returns the source text of node.
func Sprint(node any, opts ...Option) (string, error) {
	var b strings.Builder

	err := Fprint(&b, node, opts...)

	return b.String(), err
}

func layout(toks []string, c config) string {
	if !c.pretty {
		return strings.Join(toks, " ")
	}

	var (
		b     strings.Builder
		depth int
		bol   = true
	)

	newline := func() {
		b.WriteByte('\n')

		bol = true
	}

	for i, tok := range toks {
		next := ""
		if i+1 < len(toks) {
			next = toks[i+1]
		}

		if tok == "}" {
			depth = max(depth-1, 0)

			if !bol {
				newline()
			}
		}

		if bol {
			b.WriteString(strings.Repeat(c.indent, depth))

			bol = false
		} else {
			b.WriteByte(' ')
		}

		b.WriteString(tok)

		switch tok {
		case "{":
			depth++

			newline()
		case ";":
			if next != "}" {
				newline()
			}
		case "}":
			switch next {
			case "", ",", ";", ")", "else":
			default:
				newline()
			}
		case ",":
			if depth > 0 && next != "}" && opensLine(toks, i) {
				newline()
			}
		}
	}

	if !bol {
		b.WriteByte('\n')
	}

	return b.String()
}

// opensLine reports whether the comma at toks[i] separates entries of a
// braced list rather than a parenthesized or bracketed one.
func opensLine(toks []string, i int) bool {
	level := 0
	for j := i - 1; j >= 0; j-- {
		switch toks[j] {
		case ")", "]", ">":
			level++
		case "(", "[", "<":
			if level == 0 {
				return false
			}

			level--
		case "}":
			level++
		case "{":
			if level == 0 {
				return true
			}

			level--
		}
	}

	return false
}
