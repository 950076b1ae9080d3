// Package script evaluates expr-lang programs that build syntax trees.
//
// Every constructor of package syntax is available under its snake_case name
// without the New prefix, so NewItemEnum is item_enum and NewFieldsUnnamed is
// fields_unnamed. Constructor arguments are converted from script values: a
// string passed where a path is expected is split on "::", an integer passed
// where a field member is expected becomes a tuple index, and so on.
//
// Builder methods are called on the returned nodes directly:
//
//	item_enum("my_enum").WithVariants(
//		variant("A").WithFields(fields_unnamed(field("A"), field("B"))),
//		variant("B"),
//	)
//
// Method arguments are not converted; use ident("x") where a method takes an
// identifier. The functions emit, tokens and tree render a node with package
// printer.
package script
