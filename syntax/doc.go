// Package syntax builds Rust syntax trees from small constructor functions
// and chainable modifiers.
//
// Each grammar category (expressions, types, patterns, items, statements,
// generics, paths, literals, attributes, visibility, operators, macros) is a
// sealed interface. Every concrete node type is a struct that belongs to one
// or more categories, so a node can be passed anywhere its category is
// accepted without an explicit conversion.
//
// # Construction
//
// A constructor takes only the fields that carry meaning and fills every
// other field with its syntactically valid empty form:
//
//	e := syntax.NewItemEnum("my_enum").WithVariants(
//		syntax.NewVariant("A").WithFields(syntax.NewFieldsUnnamed(
//			syntax.NewField(syntax.NewTypePath("A")),
//			syntax.NewField(syntax.NewTypePath("B")),
//		)),
//		syntax.NewVariant("B"),
//	)
//
// A fresh value is always complete and may be embedded or printed as is.
//
// # Modifiers
//
// Modifiers never mutate their receiver. Each returns a copy with one field
// changed. Methods named With* replace a field; methods named Add* append to
// an ordered list:
//
//	fn := syntax.NewItemFn(sig, body).
//		AddAttr(syntax.NewAttribute(syntax.IntoPath("inline"))).
//		WithVis(syntax.VisibilityPublic())
//
// Boolean modifiers such as [ItemImpl.WithUnsafety] set or clear a marker
// token.
//
// # Categories
//
// Expression variants are also statements and const generic arguments. Type
// variants are also generic arguments. Item variants are also statements.
// [TokenStream] is the verbatim variant of every category that has one.
// Marker tokens double as the variants they name: [Plus] is a [BinOp],
// [DotDot] is a [RangeLimits], [Brace] is a [MacroDelimiter].
//
// Printing lives in package [github.com/ardnew/synbuild/syntax/printer].
package syntax

//go:generate go run ../internal/cmd/propgen --input props.yaml --output props_gen.go --package syntax
