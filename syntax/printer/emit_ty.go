package printer

import (
	"strconv"
	"strings"

	"github.com/ardnew/synbuild/syntax"
)

//nolint:cyclop,funlen
func (e *emitter) ty(n any) bool {
	switch n := n.(type) {
	case *syntax.TypeArray:
		e.word("[")
		e.node(n.Elem)
		e.word(";")
		e.node(n.Len)
		e.word("]")
	case *syntax.TypeBareFn:
		if n.Lifetimes != nil {
			e.node(n.Lifetimes)
		}

		e.flag(n.Unsafety != nil, "unsafe")
		e.abi(n.Abi)
		e.word("fn", "(")
		sep(e, ",", n.Inputs, e.bareFnArg)

		if n.Variadic != nil {
			if len(n.Inputs) > 0 {
				e.word(",")
			}

			e.attrs(n.Variadic.Attrs)

			if n.Variadic.Name != "" {
				e.word(string(n.Variadic.Name), ":")
			}

			e.word("...")
		}

		e.word(")")
		e.output(n.Output)
	case *syntax.TypeGroup:
		e.node(n.Elem)
	case *syntax.TypeImplTrait:
		e.word("impl")
		nodes(e, "+", n.Bounds)
	case *syntax.TypeInfer:
		e.word("_")
	case *syntax.TypeMacro:
		e.mac(n.Mac, "")
	case *syntax.TypeNever:
		e.word("!")
	case *syntax.TypeParen:
		e.word("(")
		e.node(n.Elem)
		e.word(")")
	case *syntax.TypePath:
		e.qpath(n.QSelf, n.Path)
	case *syntax.TypePtr:
		e.word("*")

		if n.Mutability != nil {
			e.word("mut")
		} else {
			e.word("const")
		}

		e.node(n.Elem)
	case *syntax.TypeReference:
		e.word("&")

		if n.Lifetime != nil {
			e.word(n.Lifetime.String())
		}

		e.flag(n.Mutability != nil, "mut")
		e.node(n.Elem)
	case *syntax.TypeSlice:
		e.word("[")
		e.node(n.Elem)
		e.word("]")
	case *syntax.TypeTraitObject:
		e.word("dyn")
		nodes(e, "+", n.Bounds)
	case *syntax.TypeTuple:
		tuple(e, n.Elems)
	case *syntax.BareFnArg:
		e.bareFnArg(n)
	case *syntax.Abi:
		e.abi(n)

	default:
		return false
	}

	return true
}

func (e *emitter) bareFnArg(a *syntax.BareFnArg) {
	e.attrs(a.Attrs)

	if a.Name != "" {
		e.word(string(a.Name), ":")
	}

	e.node(a.Ty)
}

func (e *emitter) abi(a *syntax.Abi) {
	if a == nil {
		return
	}

	e.word("extern")

	if a.Name != nil {
		e.lit(a.Name)
	}
}

//nolint:cyclop,funlen
func (e *emitter) pat(n any) bool {
	switch n := n.(type) {
	case *syntax.PatIdent:
		e.attrs(n.Attrs)
		e.flag(n.ByRef != nil, "ref")
		e.flag(n.Mutability != nil, "mut")
		e.word(string(n.Ident))

		if n.Subpat != nil {
			e.word("@")
			e.node(n.Subpat)
		}
	case *syntax.PatOr:
		e.attrs(n.Attrs)
		e.flag(n.LeadingVert != nil, "|")
		nodes(e, "|", n.Cases)
	case *syntax.PatParen:
		e.attrs(n.Attrs)
		e.word("(")
		e.node(n.Pat)
		e.word(")")
	case *syntax.PatReference:
		e.attrs(n.Attrs)
		e.word("&")
		e.flag(n.Mutability != nil, "mut")
		e.node(n.Pat)
	case *syntax.PatRest:
		e.attrs(n.Attrs)
		e.word("..")
	case *syntax.PatSlice:
		e.attrs(n.Attrs)
		e.word("[")
		nodes(e, ",", n.Elems)
		e.word("]")
	case *syntax.PatStruct:
		e.attrs(n.Attrs)
		e.qpath(n.QSelf, n.Path)
		e.word("{")
		sep(e, ",", n.Fields, e.fieldPat)

		if n.Rest != nil {
			if len(n.Fields) > 0 {
				e.word(",")
			}

			e.node(n.Rest)
		}

		e.word("}")
	case *syntax.PatTuple:
		e.attrs(n.Attrs)
		tuple(e, n.Elems)
	case *syntax.PatTupleStruct:
		e.attrs(n.Attrs)
		e.qpath(n.QSelf, n.Path)
		e.word("(")
		nodes(e, ",", n.Elems)
		e.word(")")
	case *syntax.PatType:
		e.attrs(n.Attrs)
		e.node(n.Pat)
		e.word(":")
		e.node(n.Ty)
	case *syntax.PatWild:
		e.attrs(n.Attrs)
		e.word("_")
	case *syntax.FieldPat:
		e.fieldPat(n)

	default:
		return false
	}

	return true
}

func (e *emitter) fieldPat(f *syntax.FieldPat) {
	e.attrs(f.Attrs)

	if f.Colon != nil {
		e.node(f.Member)
		e.word(":")
	}

	e.node(f.Pat)
}

func (e *emitter) lit(l syntax.Lit) {
	switch l := l.(type) {
	case *syntax.LitStr:
		e.word(quote(l.Value, '"'))
	case *syntax.LitByteStr:
		e.word("b" + quoteBytes(l.Value, '"'))
	case *syntax.LitByte:
		e.word("b" + quoteBytes([]byte{l.Value}, '\''))
	case *syntax.LitChar:
		e.word(quote(string(l.Value), '\''))
	case *syntax.LitInt:
		e.word(l.Repr)
	case *syntax.LitFloat:
		e.word(l.Repr)
	case *syntax.LitBool:
		e.word(strconv.FormatBool(l.Value))

	default:
		e.fail(l)
	}
}

// quote returns s between q quotes with the escapes a Rust string or
// character literal accepts.
func quote(s string, q byte) string {
	var b strings.Builder

	b.WriteByte(q)

	for _, r := range s {
		switch {
		case r == rune(q), r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == 0:
			b.WriteString(`\0`)
		case r < 0x20 || r == 0x7f:
			b.WriteString(`\u{` + strconv.FormatInt(int64(r), 16) + `}`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte(q)

	return b.String()
}

// quoteBytes is quote for byte literals, which only hold ASCII.
func quoteBytes(bs []byte, q byte) string {
	const hex = "0123456789abcdef"

	var b strings.Builder

	b.WriteByte(q)

	for _, c := range bs {
		switch {
		case c == q, c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == 0:
			b.WriteString(`\0`)
		case c < 0x20 || c >= 0x7f:
			b.WriteString(`\x`)
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte(q)

	return b.String()
}
