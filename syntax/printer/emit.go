package printer

import (
	"fmt"
	"strconv"

	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/syntax"
)

// emitter accumulates tokens. The first unsupported node it meets is kept in
// err and emission continues so the caller sees one error per call.
type emitter struct {
	toks []string
	err  error
}

func (e *emitter) word(toks ...string) { e.toks = append(e.toks, toks...) }

func (e *emitter) fail(n any) {
	if e.err == nil {
		e.err = pkg.ErrUnsupportedNode.Wrap(fmt.Errorf("%T", n))
	}
}

// sep emits each element of xs with f, separated by s.
func sep[T any](e *emitter, s string, xs []T, f func(T)) {
	for i, x := range xs {
		if i > 0 {
			e.word(s)
		}

		f(x)
	}
}

// nodes emits xs separated by s.
func nodes[T any](e *emitter, s string, xs []T) {
	sep(e, s, xs, func(x T) { e.node(x) })
}

// each emits xs one after another.
func each[T any](e *emitter, xs []T) {
	for _, x := range xs {
		e.node(x)
	}
}

// tuple emits elements joined by commas, keeping the trailing comma a
// one-element tuple needs.
func tuple[T any](e *emitter, xs []T) {
	e.word("(")
	nodes(e, ",", xs)

	if len(xs) == 1 {
		e.word(",")
	}

	e.word(")")
}

// node dispatches on the concrete type of n.
//
//nolint:cyclop,funlen,gocyclo
func (e *emitter) node(n any) {
	switch n := n.(type) {
	case nil:
		e.fail(n)

	// Verbatim, identifiers, tokens.
	case syntax.TokenStream:
		e.verbatim(n)
	case syntax.Ident:
		e.word(string(n))
	case syntax.Lifetime:
		e.word(n.String())
	case syntax.Index:
		e.word(strconv.FormatUint(uint64(n), 10))
	case fmt.Stringer:
		if !e.token(n) {
			e.other(n)
		}

	default:
		e.other(n)
	}
}

// token emits the marker tokens that are also category variants.
func (e *emitter) token(n fmt.Stringer) bool {
	switch n.(type) {
	case syntax.Pub, syntax.Mut, syntax.Not, syntax.Question,
		syntax.DotDot, syntax.DotDotEq,
		syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash, syntax.Percent,
		syntax.Caret, syntax.And, syntax.Or, syntax.AndAnd, syntax.OrOr,
		syntax.Shl, syntax.Shr, syntax.EqEq, syntax.Lt, syntax.Le, syntax.Ne,
		syntax.Ge, syntax.Gt,
		syntax.PlusEq, syntax.MinusEq, syntax.StarEq, syntax.SlashEq,
		syntax.PercentEq, syntax.CaretEq, syntax.AndEq, syntax.OrEq,
		syntax.ShlEq, syntax.ShrEq:
		e.word(n.String())

		return true
	}

	return false
}

//nolint:cyclop,funlen,gocyclo,maintidx
func (e *emitter) other(n any) {
	switch n := n.(type) {
	// Unit variants that print nothing.
	case syntax.VisInherited, syntax.FieldsUnit, syntax.PathArgumentsNone,
		syntax.ReturnTypeDefault, syntax.StaticMutabilityNone,
		syntax.FieldMutabilityNone, syntax.TraitBoundModifierNone,
		syntax.AttrOuter:

	// Literals.
	case syntax.Lit:
		e.lit(n)

	// Attributes, visibility, macros.
	case *syntax.Attribute:
		e.attr(n)
	case *syntax.Path:
		e.path(n)
	case *syntax.MetaList:
		e.path(n.Path)
		e.delimited(n.Delimiter, n.Tokens)
	case *syntax.MetaNameValue:
		e.path(n.Path)
		e.word("=")
		e.node(n.Value)
	case *syntax.VisRestricted:
		e.word("pub", "(")
		if n.In != nil {
			e.word("in")
		}

		e.path(n.Path)
		e.word(")")
	case *syntax.Macro:
		e.mac(n, "")

	// Paths and generics.
	case *syntax.PathSegment:
		e.segment(n)
	case *syntax.AngleBracketedGenericArguments:
		e.angle(n)
	case *syntax.ParenthesizedGenericArguments:
		e.word("(")
		nodes(e, ",", n.Inputs)
		e.word(")")
		e.output(n.Output)
	case *syntax.AssocType:
		e.word(string(n.Ident))
		e.optAngle(n.Generics)
		e.word("=")
		e.node(n.Ty)
	case *syntax.AssocConst:
		e.word(string(n.Ident))
		e.optAngle(n.Generics)
		e.word("=")
		e.node(n.Value)
	case *syntax.Constraint:
		e.word(string(n.Ident))
		e.optAngle(n.Generics)
		e.word(":")
		nodes(e, "+", n.Bounds)
	case *syntax.Generics:
		e.params(n)
		e.where(n)
	case *syntax.LifetimeParam:
		e.attrs(n.Attrs)
		e.word(n.Lifetime.String())

		if len(n.Bounds) > 0 {
			e.word(":")
			nodes(e, "+", n.Bounds)
		}
	case *syntax.TypeParam:
		e.attrs(n.Attrs)
		e.word(string(n.Ident))

		if len(n.Bounds) > 0 {
			e.word(":")
			nodes(e, "+", n.Bounds)
		}

		if n.Default != nil {
			e.word("=")
			e.node(n.Default)
		}
	case *syntax.ConstParam:
		e.attrs(n.Attrs)
		e.word("const", string(n.Ident), ":")
		e.node(n.Ty)

		if n.Default != nil {
			e.word("=")
			e.node(n.Default)
		}
	case *syntax.BoundLifetimes:
		e.word("for", "<")
		nodes(e, ",", n.Lifetimes)
		e.word(">")
	case *syntax.TraitBound:
		e.node(n.Modifier)

		if n.Lifetimes != nil {
			e.node(n.Lifetimes)
		}

		e.path(n.Path)
	case *syntax.WhereClause:
		e.word("where")
		nodes(e, ",", n.Predicates)
	case *syntax.PredicateLifetime:
		e.word(n.Lifetime.String(), ":")
		nodes(e, "+", n.Bounds)
	case *syntax.PredicateType:
		if n.Lifetimes != nil {
			e.node(n.Lifetimes)
		}

		e.node(n.BoundedTy)
		e.word(":")
		nodes(e, "+", n.Bounds)
	case *syntax.QSelf:
		e.qpath(n, &syntax.Path{})
	case *syntax.ReturnTypeExplicit:
		e.output(n)

	default:
		if !e.ty(n) && !e.pat(n) && !e.expr(n) && !e.stmt(n) && !e.item(n) {
			e.fail(n)
		}
	}
}

func (e *emitter) attrs(attrs []*syntax.Attribute) {
	for _, a := range attrs {
		e.attr(a)
	}
}

func (e *emitter) attr(a *syntax.Attribute) {
	e.word("#")

	if _, inner := a.Style.(syntax.Not); inner {
		e.word("!")
	}

	e.word("[")
	e.node(a.Meta)
	e.word("]")
}

func (e *emitter) delimited(d syntax.MacroDelimiter, ts syntax.TokenStream) {
	if d == nil {
		d = syntax.Paren{}
	}

	e.word(d.Open())
	e.verbatim(ts)
	e.word(d.Close())
}

// verbatim emits ts as a single token so its content is never split or
// re-spaced. A blank stream emits nothing.
func (e *emitter) verbatim(ts syntax.TokenStream) {
	if text := ts.Text(); text != "" {
		e.word(text)
	}
}

// mac emits path! ident (tokens). The ident is written only for named
// invocations such as macro_rules! name { ... }.
func (e *emitter) mac(m *syntax.Macro, ident syntax.Ident) {
	e.path(m.Path)
	e.word("!")

	if ident != "" {
		e.word(string(ident))
	}

	e.delimited(m.Delimiter, m.Tokens)
}

func (e *emitter) semi(s *syntax.Semi) {
	if s != nil {
		e.word(";")
	}
}

func (e *emitter) path(p *syntax.Path) {
	if p == nil {
		e.fail(p)

		return
	}

	if p.LeadingColon != nil {
		e.word("::")
	}

	sep(e, "::", p.Segments, e.segment)
}

func (e *emitter) segment(s *syntax.PathSegment) {
	e.word(string(s.Ident))

	if s.Arguments != nil {
		e.node(s.Arguments)
	}
}

func (e *emitter) angle(a *syntax.AngleBracketedGenericArguments) {
	if a.Colon2 != nil {
		e.word("::")
	}

	e.word("<")
	nodes(e, ",", a.Args)
	e.word(">")
}

func (e *emitter) optAngle(a *syntax.AngleBracketedGenericArguments) {
	if a != nil {
		e.angle(a)
	}
}

// qpath emits a path qualified by q: <Ty as Trait>::rest. The first
// q.Position segments of p belong to the trait.
func (e *emitter) qpath(q *syntax.QSelf, p *syntax.Path) {
	if q == nil {
		e.path(p)

		return
	}

	pos := min(max(q.Position, 0), len(p.Segments))

	e.word("<")
	e.node(q.Ty)

	if pos > 0 || q.As != nil {
		e.word("as")

		if p.LeadingColon != nil {
			e.word("::")
		}

		sep(e, "::", p.Segments[:pos], e.segment)
	}

	e.word(">")

	for _, s := range p.Segments[pos:] {
		e.word("::")
		e.segment(s)
	}
}

// params emits <params...> when g has any parameters.
func (e *emitter) params(g *syntax.Generics) {
	if g == nil || len(g.Params) == 0 {
		return
	}

	e.word("<")
	nodes(e, ",", g.Params)
	e.word(">")
}

func (e *emitter) where(g *syntax.Generics) {
	if g == nil || g.WhereClause == nil || len(g.WhereClause.Predicates) == 0 {
		return
	}

	e.node(g.WhereClause)
}

func (e *emitter) output(r syntax.ReturnType) {
	if x, ok := r.(*syntax.ReturnTypeExplicit); ok {
		e.word("->")
		e.node(x.Ty)
	}
}

func (e *emitter) vis(v syntax.Visibility) {
	if v != nil {
		e.node(v)
	}
}

func (e *emitter) flag(on bool, tok string) {
	if on {
		e.word(tok)
	}
}
