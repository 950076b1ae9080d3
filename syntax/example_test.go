package syntax_test

import (
	"fmt"

	"github.com/ardnew/synbuild/syntax"
	"github.com/ardnew/synbuild/syntax/printer"
)

func ExampleNewItemEnum() {
	e := syntax.NewItemEnum("my_enum").WithVariants(
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

	s, _ := printer.Sprint(e)
	fmt.Println(s)
	// Output: pub enum my_enum { A ( A , B ) , B , C { other : A , one : B } }
}

func ExampleNewVisRestricted() {
	for _, p := range []string{"crate", "my_mod"} {
		s, _ := printer.Sprint(syntax.NewVisRestricted(p))
		fmt.Println(s)
	}
	// Output:
	// pub ( crate )
	// pub ( in my_mod )
}

func ExampleItemFn_AddAttr() {
	sig := syntax.NewSignature("add",
		syntax.NewPatType(syntax.NewPatIdent("a"), syntax.NewTypePath("i32")),
		syntax.NewPatType(syntax.NewPatIdent("b"), syntax.NewTypePath("i32")),
	).WithOutput(syntax.NewTypePath("i32"))

	body := syntax.NewBlock(syntax.NewExprBinary(
		syntax.NewExprPath("a"), syntax.BinOpAdd(), syntax.NewExprPath("b"),
	))

	fn := syntax.NewItemFn(sig, body).
		AddAttr(syntax.NewAttribute(syntax.IntoPath("inline"))).
		WithVis(syntax.VisibilityPublic())

	s, _ := printer.Sprint(fn)
	fmt.Println(s)
	// Output: # [ inline ] pub fn add ( a : i32 , b : i32 ) -> i32 { a + b }
}
