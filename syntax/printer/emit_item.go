package printer

import "github.com/ardnew/synbuild/syntax"

//nolint:cyclop,funlen,gocyclo,maintidx
func (e *emitter) item(n any) bool {
	switch n := n.(type) {
	case *syntax.ItemConst:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("const", string(n.Ident))
		e.params(n.Generics)
		e.word(":")
		e.node(n.Ty)
		e.word("=")
		e.node(n.Expr)
		e.word(";")
	case *syntax.ItemEnum:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.enum(n.Ident, n.Generics, n.Variants)
	case *syntax.ItemExternCrate:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("extern", "crate", string(n.Ident))

		if n.Rename != "" {
			e.word("as", string(n.Rename))
		}

		e.word(";")
	case *syntax.ItemFn:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.signature(n.Sig)
		e.block(n.Block)
	case *syntax.ItemForeignMod:
		e.attrs(n.Attrs)
		e.flag(n.Unsafety != nil, "unsafe")
		e.abi(n.Abi)
		e.word("{")
		each(e, n.Items)
		e.word("}")
	case *syntax.ItemImpl:
		e.attrs(n.Attrs)
		e.flag(n.Defaultness != nil, "default")
		e.flag(n.Unsafety != nil, "unsafe")
		e.word("impl")
		e.params(n.Generics)

		if n.Trait != nil {
			e.implTrait(n.Trait)
		}

		e.node(n.SelfTy)
		e.where(n.Generics)
		e.word("{")
		each(e, n.Items)
		e.word("}")
	case *syntax.ItemMacro:
		e.attrs(n.Attrs)
		e.mac(n.Mac, n.Ident)
		e.semi(n.Semi)
	case *syntax.ItemMod:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.flag(n.Unsafety != nil, "unsafe")
		e.word("mod", string(n.Ident))

		if n.Content == nil {
			e.word(";")
		} else {
			e.word("{")
			each(e, n.Content)
			e.word("}")
		}
	case *syntax.ItemStatic:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("static")
		e.node(n.Mutability)
		e.word(string(n.Ident), ":")
		e.node(n.Ty)
		e.word("=")
		e.node(n.Expr)
		e.word(";")
	case *syntax.ItemStruct:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.strukt(n.Ident, n.Generics, n.Fields)
	case *syntax.ItemTrait:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.flag(n.Unsafety != nil, "unsafe")
		e.flag(n.Auto != nil, "auto")
		e.word("trait", string(n.Ident))
		e.params(n.Generics)

		if n.Colon != nil || len(n.Supertraits) > 0 {
			e.word(":")
			nodes(e, "+", n.Supertraits)
		}

		e.where(n.Generics)
		e.word("{")
		each(e, n.Items)
		e.word("}")
	case *syntax.ItemTraitAlias:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("trait", string(n.Ident))
		e.params(n.Generics)
		e.word("=")
		nodes(e, "+", n.Bounds)
		e.where(n.Generics)
		e.word(";")
	case *syntax.ItemType:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("type", string(n.Ident))
		e.params(n.Generics)
		e.where(n.Generics)
		e.word("=")
		e.node(n.Ty)
		e.word(";")
	case *syntax.ItemUnion:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.union(n.Ident, n.Generics, n.Fields)
	case *syntax.ItemUse:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("use")
		e.flag(n.LeadingColon != nil, "::")
		e.node(n.Tree)
		e.word(";")
	case *syntax.ImplTrait:
		e.implTrait(n)

	default:
		return e.part(n)
	}

	return true
}

// part emits the pieces items are built from.
//
//nolint:cyclop,funlen,gocyclo,maintidx
func (e *emitter) part(n any) bool {
	switch n := n.(type) {
	// Data structures.
	case *syntax.Variant:
		e.variant(n)
	case *syntax.FieldsNamed:
		e.word("{")
		sep(e, ",", n.Named, e.field)
		e.word("}")
	case *syntax.FieldsUnnamed:
		e.word("(")
		sep(e, ",", n.Unnamed, e.field)
		e.word(")")
	case *syntax.Field:
		e.field(n)
	case *syntax.DeriveInput:
		e.attrs(n.Attrs)
		e.vis(n.Vis)

		switch d := n.Data.(type) {
		case *syntax.DataStruct:
			e.strukt(n.Ident, n.Generics, d.Fields)
		case *syntax.DataEnum:
			e.enum(n.Ident, n.Generics, d.Variants)
		case *syntax.DataUnion:
			e.union(n.Ident, n.Generics, d.Fields)

		default:
			e.fail(d)
		}
	case *syntax.DataStruct:
		e.node(n.Fields)
	case *syntax.DataEnum:
		e.word("{")
		sep(e, ",", n.Variants, e.variant)
		e.word("}")
	case *syntax.DataUnion:
		e.node(n.Fields)

	// Use trees.
	case *syntax.UsePath:
		e.word(string(n.Ident), "::")
		e.node(n.Tree)
	case *syntax.UseName:
		e.word(string(n.Ident))
	case *syntax.UseRename:
		e.word(string(n.Ident), "as", string(n.Rename))
	case *syntax.UseGlob:
		e.word("*")
	case *syntax.UseGroup:
		e.word("{")
		nodes(e, ",", n.Items)
		e.word("}")

	// Foreign items.
	case *syntax.ForeignItemFn:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.signature(n.Sig)
		e.word(";")
	case *syntax.ForeignItemStatic:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("static")
		e.node(n.Mutability)
		e.word(string(n.Ident), ":")
		e.node(n.Ty)
		e.word(";")
	case *syntax.ForeignItemType:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.word("type", string(n.Ident))
		e.params(n.Generics)
		e.where(n.Generics)
		e.word(";")
	case *syntax.ForeignItemMacro:
		e.attrs(n.Attrs)
		e.mac(n.Mac, "")
		e.semi(n.Semi)

	// Trait items.
	case *syntax.TraitItemConst:
		e.attrs(n.Attrs)
		e.word("const", string(n.Ident))
		e.params(n.Generics)
		e.word(":")
		e.node(n.Ty)

		if n.Default != nil {
			e.word("=")
			e.node(n.Default)
		}

		e.word(";")
	case *syntax.TraitItemFn:
		e.attrs(n.Attrs)
		e.signature(n.Sig)

		if n.Default != nil {
			e.block(n.Default)
		} else {
			e.word(";")
		}
	case *syntax.TraitItemType:
		e.attrs(n.Attrs)
		e.word("type", string(n.Ident))
		e.params(n.Generics)

		if n.Colon != nil || len(n.Bounds) > 0 {
			e.word(":")
			nodes(e, "+", n.Bounds)
		}

		e.where(n.Generics)

		if n.Default != nil {
			e.word("=")
			e.node(n.Default)
		}

		e.word(";")
	case *syntax.TraitItemMacro:
		e.attrs(n.Attrs)
		e.mac(n.Mac, "")
		e.semi(n.Semi)

	// Impl items.
	case *syntax.ImplItemConst:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.flag(n.Defaultness != nil, "default")
		e.word("const", string(n.Ident))
		e.params(n.Generics)
		e.word(":")
		e.node(n.Ty)
		e.word("=")
		e.node(n.Expr)
		e.word(";")
	case *syntax.ImplItemFn:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.flag(n.Defaultness != nil, "default")
		e.signature(n.Sig)
		e.block(n.Block)
	case *syntax.ImplItemType:
		e.attrs(n.Attrs)
		e.vis(n.Vis)
		e.flag(n.Defaultness != nil, "default")
		e.word("type", string(n.Ident))
		e.params(n.Generics)
		e.word("=")
		e.node(n.Ty)
		e.where(n.Generics)
		e.word(";")
	case *syntax.ImplItemMacro:
		e.attrs(n.Attrs)
		e.mac(n.Mac, "")
		e.semi(n.Semi)

	// Functions.
	case *syntax.Signature:
		e.signature(n)
	case *syntax.Receiver:
		e.receiver(n)
	case *syntax.Variadic:
		e.variadic(n)
	case *syntax.File:
		if n.Shebang != "" {
			e.word(n.Shebang)
		}

		e.attrs(n.Attrs)
		each(e, n.Items)

	default:
		return false
	}

	return true
}

func (e *emitter) enum(ident syntax.Ident, g *syntax.Generics, vs []*syntax.Variant) {
	e.word("enum", string(ident))
	e.params(g)
	e.where(g)
	e.word("{")
	sep(e, ",", vs, e.variant)
	e.word("}")
}

// strukt emits a struct body. Braced structs end at the brace; tuple and unit
// structs take the where clause after their fields and end with a semicolon.
func (e *emitter) strukt(ident syntax.Ident, g *syntax.Generics, f syntax.Fields) {
	e.word("struct", string(ident))
	e.params(g)

	switch f := f.(type) {
	case *syntax.FieldsNamed:
		e.where(g)
		e.node(f)
	case *syntax.FieldsUnnamed:
		e.node(f)
		e.where(g)
		e.word(";")
	default:
		e.where(g)
		e.word(";")
	}
}

func (e *emitter) union(ident syntax.Ident, g *syntax.Generics, f *syntax.FieldsNamed) {
	e.word("union", string(ident))
	e.params(g)
	e.where(g)

	if f == nil {
		f = &syntax.FieldsNamed{}
	}

	e.node(f)
}

func (e *emitter) variant(v *syntax.Variant) {
	e.attrs(v.Attrs)
	e.word(string(v.Ident))

	if v.Fields != nil {
		e.node(v.Fields)
	}

	if v.Discriminant != nil {
		e.word("=")
		e.node(v.Discriminant)
	}
}

func (e *emitter) field(f *syntax.Field) {
	e.attrs(f.Attrs)
	e.vis(f.Vis)

	if f.Mutability != nil {
		e.node(f.Mutability)
	}

	if f.Ident != "" {
		e.word(string(f.Ident), ":")
	}

	e.node(f.Ty)
}

func (e *emitter) implTrait(t *syntax.ImplTrait) {
	e.flag(t.Bang != nil, "!")
	e.path(t.Path)
	e.word("for")
}

func (e *emitter) signature(s *syntax.Signature) {
	if s == nil {
		e.fail(s)

		return
	}

	e.flag(s.Constness != nil, "const")
	e.flag(s.Asyncness != nil, "async")
	e.flag(s.Unsafety != nil, "unsafe")
	e.abi(s.Abi)
	e.word("fn", string(s.Ident))
	e.params(s.Generics)
	e.word("(")
	nodes(e, ",", s.Inputs)

	if s.Variadic != nil {
		if len(s.Inputs) > 0 {
			e.word(",")
		}

		e.variadic(s.Variadic)
	}

	e.word(")")
	e.output(s.Output)
	e.where(s.Generics)
}

// receiver emits self with its reference and mutability. The explicit type
// is written only for by-value receivers, where &self already implies it
// otherwise.
func (e *emitter) receiver(r *syntax.Receiver) {
	e.attrs(r.Attrs)

	if r.Reference != nil {
		e.word("&")
		e.lifetime(r.Reference.Lifetime)
	}

	e.flag(r.Mutability != nil, "mut")
	e.word("self")

	if r.Reference == nil && r.Colon != nil && r.Ty != nil {
		e.word(":")
		e.node(r.Ty)
	}
}

func (e *emitter) variadic(v *syntax.Variadic) {
	e.attrs(v.Attrs)

	if v.Pat != nil {
		e.node(v.Pat)
		e.word(":")
	}

	e.word("...")
	e.flag(v.Comma != nil, ",")
}
