package printer_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/syntax"
	"github.com/ardnew/synbuild/syntax/printer"
)

func ty(p string) *syntax.TypePath { return syntax.NewTypePath(p) }

func lit[T syntax.LitValue](v T) *syntax.ExprLit {
	return syntax.NewExprLit(syntax.LitOf(v))
}

func myEnum() *syntax.ItemEnum {
	return syntax.NewItemEnum("my_enum").WithVariants(
		syntax.NewVariant("A").WithFields(syntax.NewFieldsUnnamed(
			syntax.NewField(ty("A")),
			syntax.NewField(ty("B")),
		)),
		syntax.NewVariant("B"),
		syntax.NewVariant("C").WithFields(syntax.NewFieldsNamed(
			syntax.NewField(ty("A")).WithIdent("other"),
			syntax.NewField(ty("B")).WithIdent("one"),
		)),
	)
}

// Token Tests
// ============================================================================

// TestSprint_Items verifies the tokens of item declarations.
func TestSprint_Items(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node any
		want string
	}{
		{
			name: "enum with every variant shape",
			node: myEnum(),
			want: "pub enum my_enum { A ( A , B ) , B , C { other : A , one : B } }",
		},
		{
			name: "unit struct",
			node: syntax.NewItemStruct("Unit", syntax.FieldsUnit{}),
			want: "struct Unit ;",
		},
		{
			name: "tuple struct",
			node: syntax.NewItemStruct("Pair", syntax.NewFieldsUnnamed(
				syntax.NewField(ty("u8")),
				syntax.NewField(ty("u16")),
			)).WithVis(syntax.VisibilityPublic()),
			want: "pub struct Pair ( u8 , u16 ) ;",
		},
		{
			name: "derive attribute",
			node: syntax.NewItemStruct("S", syntax.FieldsUnit{}).AddAttr(
				syntax.NewAttribute(syntax.NewMetaList(
					"derive", syntax.Paren{},
					syntax.NewTokenStream("Debug", ",", "Clone"),
				)),
			),
			want: "# [ derive ( Debug , Clone ) ] struct S ;",
		},
		{
			name: "out of line module",
			node: syntax.NewItemMod("m"),
			want: "mod m ;",
		},
		{
			name: "empty inline module",
			node: syntax.NewItemMod("m").WithContent(),
			want: "mod m { }",
		},
		{
			name: "crate visibility",
			node: syntax.NewItemMod("m").
				WithVis(syntax.NewVisRestricted("crate")),
			want: "pub ( crate ) mod m ;",
		},
		{
			name: "path visibility",
			node: syntax.NewItemMod("m").
				WithVis(syntax.NewVisRestricted("a::b")),
			want: "pub ( in a :: b ) mod m ;",
		},
		{
			name: "trait with bare colon",
			node: syntax.NewItemTrait("Tr").WithColon(true),
			want: "trait Tr : { }",
		},
		{
			name: "trait with supertrait",
			node: syntax.NewItemTrait("Tr").
				WithSupertraits(syntax.NewTraitBound("Clone")),
			want: "trait Tr : Clone { }",
		},
		{
			name: "negative impl",
			node: syntax.NewItemImpl(ty("S")).
				WithTrait(true, syntax.IntoPath("Send")),
			want: "impl ! Send for S { }",
		},
		{
			name: "static mut",
			node: syntax.NewItemStatic("N", ty("u32"), lit(0)).
				WithMutability(true),
			want: "static mut N : u32 = 0 ;",
		},
		{
			name: "use group",
			node: syntax.NewItemUse(syntax.NewUsePath("std", syntax.NewUseGroup(
				syntax.NewUseName("fmt"),
				syntax.NewUseRename("io", "stdio"),
			))).WithLeading(true),
			want: "use :: std :: { fmt , io as stdio } ;",
		},
		{
			name: "method with default receiver",
			node: syntax.NewItemFn(
				syntax.NewSignature("f", syntax.NewReceiver()),
				syntax.NewBlock(),
			),
			want: "fn f ( self : Self ) { }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Sprint(tt.node)
			if err != nil {
				t.Fatalf("Sprint() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSprint_Parts verifies the tokens of types, patterns and expressions.
func TestSprint_Parts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node any
		want string
	}{
		{
			name: "unit type",
			node: syntax.NewTypeTuple(),
			want: "( )",
		},
		{
			name: "one element tuple",
			node: syntax.NewTypeTuple(ty("T")),
			want: "( T , )",
		},
		{
			name: "one parenthesized argument",
			node: syntax.NewTypePath(syntax.NewPath(
				syntax.NewPathSegment("Fn").WithArguments(
					syntax.NewParenthesizedGenericArguments(ty("u8")),
				),
			)),
			want: "Fn ( u8 )",
		},
		{
			name: "parenthesized arguments with output",
			node: syntax.NewTypePath(syntax.NewPath(
				syntax.NewPathSegment("FnMut").WithArguments(
					syntax.NewParenthesizedGenericArguments(ty("u8"), ty("u16")).
						WithOutput(ty("bool")),
				),
			)),
			want: "FnMut ( u8 , u16 ) -> bool",
		},
		{
			name: "closure body follows its inputs",
			node: syntax.NewExprClosure(
				syntax.NewExprBinary(
					syntax.NewExprPath("a"), syntax.BinOpAdd(), syntax.NewExprPath("b"),
				),
				syntax.NewPatIdent("a"),
				syntax.NewPatIdent("b"),
			),
			want: "| a , b | a + b",
		},
		{
			name: "const pointer",
			node: syntax.NewTypePtrConst(ty("u8")),
			want: "* const u8",
		},
		{
			name: "qualified path",
			node: ty("Iterator::Item").
				WithQSelf(syntax.NewQSelf(ty("T"), 1).WithAs(true)),
			want: "< T as Iterator > :: Item",
		},
		{
			name: "reference receiver with lifetime",
			node: syntax.NewReceiver().
				WithReference(true).
				WithLifetime(syntax.NewLifetime("a")),
			want: "& 'a self",
		},
		{
			name: "mutable reference receiver",
			node: syntax.NewReceiver().WithReference(true).WithMutability(true),
			want: "& mut self",
		},
		{
			name: "struct literal with rest",
			node: syntax.NewExprStruct("Point",
				syntax.NewFieldValue(syntax.Ident("x"), lit(1)),
			).WithRest(syntax.NewExprPath("base")),
			want: "Point { x : 1 , .. base }",
		},
		{
			name: "struct pattern shorthand",
			node: syntax.NewPatStruct("Point",
				syntax.NewFieldPat(syntax.Ident("x"), syntax.NewPatIdent("x")),
			).WithRest(syntax.NewPatRest()),
			want: "Point { x , .. }",
		},
		{
			name: "closed range",
			node: syntax.NewExprRange(syntax.RangeLimitsClosed()).
				WithStart(lit(1)).
				WithEnd(lit(10)),
			want: "1 ..= 10",
		},
		{
			name: "open start range",
			node: syntax.NewExprRange(syntax.RangeLimitsHalfOpen()).
				WithEnd(lit(10)),
			want: ".. 10",
		},
		{
			name: "turbofish",
			node: syntax.NewExprMethodCall(syntax.NewExprPath("it"), "collect").
				WithTurbofish(syntax.NewAngleBracketedGenericArguments(ty("Vec"))),
			want: "it . collect :: < Vec > ( )",
		},
		{
			name: "match with guard",
			node: syntax.NewExprMatch(syntax.NewExprPath("x"),
				syntax.NewArm(syntax.NewPatWild(), lit(0)).WithGuard(lit(true)),
			),
			want: "match x { _ if true => 0 , }",
		},
		{
			name: "local",
			node: syntax.NewLocal(syntax.NewPatIdent("x")).
				WithInit(syntax.NewLocalInit(lit(1))),
			want: "let x = 1 ;",
		},
		{
			name: "binary",
			node: syntax.NewExprBinary(lit(1), syntax.BinOpShl(), lit(2)),
			want: "1 << 2",
		},
		{
			name: "inner attribute",
			node: syntax.NewAttribute(syntax.IntoPath("test")).WithStyle(true),
			want: "# ! [ test ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Sprint(tt.node)
			if err != nil {
				t.Fatalf("Sprint() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSprint_Literals verifies literal escaping.
func TestSprint_Literals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lit  syntax.Lit
		want string
	}{
		{"string", syntax.NewLitStr("a\"b\n"), `"a\"b\n"`},
		{"byte string", syntax.NewLitByteStr([]byte{'a', 0xff}), `b"a\xff"`},
		{"nul byte", syntax.NewLitByte(0), `b'\0'`},
		{"quote char", syntax.NewLitChar('\''), `'\''`},
		{"unicode char", syntax.NewLitChar('é'), `'é'`},
		{"int", syntax.NewLitInt("0x1fu8"), "0x1fu8"},
		{"float", syntax.LitOf(2.0), "2.0"},
		{"bool", syntax.LitOf(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Sprint(syntax.NewExprLit(tt.lit))
			if err != nil {
				t.Fatalf("Sprint() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSprint_Verbatim verifies that token streams print exactly as written.
func TestSprint_Verbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node any
		want string
	}{
		{
			name: "string literal keeps inner whitespace",
			node: syntax.NewExprMacro(
				syntax.NewMacro("println", syntax.TokenStream(`"a  b\tc"`)),
			),
			want: `println ! ( "a  b\tc" )`,
		},
		{
			name: "separators inside a literal",
			node: syntax.NewExprMacro(
				syntax.NewMacro("print", syntax.TokenStream(`"x ; { y }  z"`)),
			),
			want: `print ! ( "x ; { y }  z" )`,
		},
		{
			name: "surrounding whitespace trimmed",
			node: syntax.NewMacro("m", syntax.TokenStream("  a  b \n")),
			want: "m ! ( a  b )",
		},
		{
			name: "blank stream",
			node: syntax.NewMacro("m", syntax.TokenStream(" ")),
			want: "m ! ( )",
		},
		{
			name: "joined fragments",
			node: syntax.NewTokenStream("Debug", ",", "Clone"),
			want: "Debug , Clone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Sprint(tt.node)
			if err != nil {
				t.Fatalf("Sprint() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Error Tests
// ============================================================================

// TestTokens_Unsupported verifies that values outside package syntax fail.
func TestTokens_Unsupported(t *testing.T) {
	t.Parallel()

	for _, node := range []any{nil, 42, "text", struct{}{}} {
		toks, err := printer.Tokens(node)
		if !errors.Is(err, pkg.ErrUnsupportedNode) {
			t.Errorf("Tokens(%#v) error = %v, want %v",
				node, err, pkg.ErrUnsupportedNode)
		}

		if toks != nil {
			t.Errorf("Tokens(%#v) = %v, want nil", node, toks)
		}
	}
}

// TestTokens_MissingChild verifies that a nil required child is reported.
func TestTokens_MissingChild(t *testing.T) {
	t.Parallel()

	_, err := printer.Tokens(syntax.NewExprCall(nil))
	if !errors.Is(err, pkg.ErrUnsupportedNode) {
		t.Errorf("Tokens() error = %v, want %v", err, pkg.ErrUnsupportedNode)
	}
}

// Layout Tests
// ============================================================================

// TestSprint_Pretty verifies line breaking and indentation.
func TestSprint_Pretty(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		"pub enum my_enum {",
		"  A ( A , B ) ,",
		"  B ,",
		"  C {",
		"    other : A ,",
		"    one : B",
		"  }",
		"}",
		"",
	}, "\n")

	got, err := printer.Sprint(myEnum(),
		printer.WithPretty(true), printer.WithIndent("  "))
	if err != nil {
		t.Fatalf("Sprint() error = %v", err)
	}

	if got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}
}

// TestSprint_PrettyStatements verifies one statement per line.
func TestSprint_PrettyStatements(t *testing.T) {
	t.Parallel()

	fn := syntax.NewItemFn(
		syntax.NewSignature("main"),
		syntax.NewBlock(
			syntax.NewLocal(syntax.NewPatIdent("x")).
				WithInit(syntax.NewLocalInit(lit(1))),
			syntax.NewStmtExpr(syntax.NewExprPath("x")),
		),
	)

	want := "fn main ( ) {\n    let x = 1 ;\n    x\n}\n"

	got, err := printer.Sprint(fn, printer.WithPretty(true))
	if err != nil {
		t.Fatalf("Sprint() error = %v", err)
	}

	if got != want {
		t.Errorf("Sprint() = %q, want %q", got, want)
	}
}

// TestSprint_PrettyVerbatim verifies that line breaking never splits a token
// stream at the separators it contains.
func TestSprint_PrettyVerbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node any
		want string
	}{
		{
			name: "verbatim item",
			node: syntax.NewItemMod("m").WithContent(
				syntax.TokenStream(`const S: &str = "x ; { y";`),
			),
			want: "mod m {\n    const S: &str = \"x ; { y\";\n}\n",
		},
		{
			name: "braced macro body",
			node: syntax.NewItemMacro("m",
				syntax.NewMacro("macro_rules", "() => { a; b }").
					WithDelimiter(syntax.MacroDelimiterBrace()),
			),
			want: "macro_rules ! m {\n    () => { a; b }\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Sprint(tt.node, printer.WithPretty(true))
			if err != nil {
				t.Fatalf("Sprint() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Tree Tests
// ============================================================================

// TestTree verifies the structural dump of a node.
func TestTree(t *testing.T) {
	t.Parallel()

	got := printer.Tree(syntax.NewVariant("B").WithDiscriminant(lit(2)))
	want := yaml.MapSlice{
		{Key: printer.KindKey, Value: "Variant"},
		{Key: "Ident", Value: "B"},
		{Key: "Fields", Value: yaml.MapSlice{
			{Key: printer.KindKey, Value: "FieldsUnit"},
		}},
		{Key: "Discriminant", Value: yaml.MapSlice{
			{Key: printer.KindKey, Value: "ExprLit"},
			{Key: "Lit", Value: yaml.MapSlice{
				{Key: printer.KindKey, Value: "LitInt"},
				{Key: "Repr", Value: "2"},
			}},
		}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tree() = %#v, want %#v", got, want)
	}
}

// TestTree_Markers verifies present markers and omitted absent ones.
func TestTree_Markers(t *testing.T) {
	t.Parallel()

	got, ok := printer.Tree(syntax.NewItemMacro("m",
		syntax.NewMacro("macro_rules", "")).WithSemi(true)).(yaml.MapSlice)
	if !ok {
		t.Fatalf("Tree() is not a map")
	}

	keys := make([]string, 0, len(got))
	for _, item := range got {
		keys = append(keys, item.Key.(string))
	}

	want := []string{printer.KindKey, "Ident", "Mac", "Semi"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Tree() keys = %v, want %v", keys, want)
	}
}

// Constructor Tests
// ============================================================================

func ep(p string) *syntax.ExprPath { return syntax.NewExprPath(p) }

func lt(name string) syntax.Lifetime { return syntax.NewLifetime(name) }

func named(ident syntax.Ident, t string) *syntax.Field {
	return syntax.NewField(ty(t)).WithIdent(ident)
}

func abiC() *syntax.Abi { return syntax.NewAbi(syntax.NewLitStr("C")) }

func forA() *syntax.BoundLifetimes {
	return syntax.NewBoundLifetimes(syntax.NewLifetimeParam(lt("a")))
}

// in returns a conversion of a node to the category C that reports whether
// the node belongs to it.
func in[C any]() func(any) (any, bool) {
	return func(n any) (any, bool) {
		c, ok := n.(C)

		return c, ok
	}
}

// TestSprint_Constructors verifies the text of every constructor with its
// defaults, and that each node survives conversion to its category and back.
//
//nolint:maintidx
func TestSprint_Constructors(t *testing.T) {
	t.Parallel()

	var (
		expr       = in[syntax.Expr]()
		item       = in[syntax.Item]()
		stmt       = in[syntax.Stmt]()
		typ        = in[syntax.Type]()
		pat        = in[syntax.Pat]()
		useTree    = in[syntax.UseTree]()
		foreign    = in[syntax.ForeignItem]()
		traitItem  = in[syntax.TraitItem]()
		implItem   = in[syntax.ImplItem]()
		fnArg      = in[syntax.FnArg]()
		pathArgs   = in[syntax.PathArguments]()
		genArg     = in[syntax.GenericArgument]()
		genParam   = in[syntax.GenericParam]()
		bound      = in[syntax.TypeParamBound]()
		predicate  = in[syntax.WherePredicate]()
		meta       = in[syntax.Meta]()
		vis        = in[syntax.Visibility]()
		attrStyle  = in[syntax.AttrStyle]()
		limits     = in[syntax.RangeLimits]()
		binOp      = in[syntax.BinOp]()
		unOp       = in[syntax.UnOp]()
		fields     = in[syntax.Fields]()
		data       = in[syntax.Data]()
		literal    = in[syntax.Lit]()
		member     = in[syntax.Member]()
		mutability = in[syntax.StaticMutability]()
	)

	tests := []struct {
		name string
		cat  func(any) (any, bool)
		node any
		want string
	}{
		// Attributes and data.
		{"NewAttribute", nil, syntax.NewAttribute(syntax.IntoPath("inline")), "# [ inline ]"},
		{"AttrStyleInner", attrStyle, syntax.AttrStyleInner(), "!"},
		{
			"NewMetaList", meta,
			syntax.NewMetaList("derive", syntax.MacroDelimiterParen(),
				syntax.NewTokenStream("Debug")),
			"derive ( Debug )",
		},
		{"NewMetaNameValue", meta, syntax.NewMetaNameValue("doc", lit("x")), `doc = "x"`},
		{"NewVariant", nil, syntax.NewVariant("A").WithDiscriminant(lit(1)), "A = 1"},
		{"NewFieldsNamed", fields, syntax.NewFieldsNamed(named("a", "u8")), "{ a : u8 }"},
		{"NewFieldsUnnamed", fields, syntax.NewFieldsUnnamed(syntax.NewField(ty("u8"))), "( u8 )"},
		{"NewField", nil, named("a", "u8"), "a : u8"},
		{
			"NewDeriveInput struct", nil,
			syntax.NewDeriveInput("S", syntax.NewDataStruct(
				syntax.NewFieldsUnnamed(syntax.NewField(ty("u8"))))),
			"struct S ( u8 ) ;",
		},
		{
			"NewDeriveInput enum", nil,
			syntax.NewDeriveInput("E", syntax.NewDataEnum(syntax.NewVariant("A"))),
			"enum E { A }",
		},
		{
			"NewDeriveInput union", nil,
			syntax.NewDeriveInput("U",
				syntax.NewDataUnion(syntax.NewFieldsNamed(named("a", "u8")))),
			"union U { a : u8 }",
		},
		{"NewDataStruct", data, syntax.NewDataStruct(syntax.NewFieldsNamed(named("a", "u8"))), "{ a : u8 }"},
		{"NewDataEnum", data, syntax.NewDataEnum(syntax.NewVariant("A"), syntax.NewVariant("B")), "{ A , B }"},
		{"NewDataUnion", data, syntax.NewDataUnion(syntax.NewFieldsNamed(named("a", "u8"))), "{ a : u8 }"},

		// Expressions.
		{"NewLabel", nil, syntax.NewLabel(lt("outer")), "'outer :"},
		{"NewArm", nil, syntax.NewArm(syntax.NewPatWild(), lit(0)), "_ => 0 ,"},
		{"NewFieldValue", nil, syntax.NewFieldValue(syntax.Ident("x"), lit(1)), "x : 1"},
		{"RangeLimitsHalfOpen", limits, syntax.RangeLimitsHalfOpen(), ".."},
		{"RangeLimitsClosed", limits, syntax.RangeLimitsClosed(), "..="},
		{"NewExprArray", expr, syntax.NewExprArray(lit(1), lit(2)), "[ 1 , 2 ]"},
		{"NewExprAssign", expr, syntax.NewExprAssign(ep("x"), lit(1)), "x = 1"},
		{"NewExprAsync", expr, syntax.NewExprAsync(syntax.NewBlock()).WithCapture(true), "async move { }"},
		{"NewExprAwait", expr, syntax.NewExprAwait(ep("f")), "f . await"},
		{"NewExprBinary", expr, syntax.NewExprBinary(lit(1), syntax.BinOpAdd(), lit(2)), "1 + 2"},
		{
			"NewExprBlock", expr,
			syntax.NewExprBlock(syntax.NewBlock(syntax.NewStmtExpr(lit(1)))),
			"{ 1 }",
		},
		{"NewExprBreak", expr, syntax.NewExprBreak(), "break"},
		{
			"NewExprBreak labeled", expr,
			syntax.NewExprBreak().WithLabel(lt("a")).WithExpr(lit(1)),
			"break 'a 1",
		},
		{"NewExprCall", expr, syntax.NewExprCall(ep("f"), lit(1), lit(2)), "f ( 1 , 2 )"},
		{"NewExprCast", expr, syntax.NewExprCast(ep("x"), ty("u8")), "x as u8"},
		{
			"NewExprClosure", expr,
			syntax.NewExprClosure(ep("x"), syntax.NewPatIdent("x")).
				WithAsyncness(true).
				WithCapture(true),
			"async move | x | x",
		},
		{
			"NewExprClosure const static", expr,
			syntax.NewExprClosure(lit(0)).WithConstness(true).WithMovability(true),
			"const static | | 0",
		},
		{"NewExprConst", expr, syntax.NewExprConst(syntax.NewBlock()), "const { }"},
		{"NewExprContinue", expr, syntax.NewExprContinue().WithLabel(lt("a")), "continue 'a"},
		{"NewExprField", expr, syntax.NewExprField(ep("t"), syntax.NewIndex(0)), "t . 0"},
		{
			"NewExprForLoop", expr,
			syntax.NewExprForLoop(syntax.NewPatIdent("i"), ep("it"), syntax.NewBlock()),
			"for i in it { }",
		},
		{"NewExprGroup", expr, syntax.NewExprGroup(lit(1)), "1"},
		{
			"NewExprIf", expr,
			syntax.NewExprIf(lit(true), syntax.NewBlock()).
				WithElseBranch(syntax.NewExprBlock(syntax.NewBlock())),
			"if true { } else { }",
		},
		{"NewExprIndex", expr, syntax.NewExprIndex(ep("v"), lit(0)), "v [ 0 ]"},
		{"NewExprInfer", expr, syntax.NewExprInfer(), "_"},
		{
			"NewExprLet", expr,
			syntax.NewExprLet(
				syntax.NewPatTupleStruct("Some", syntax.NewPatIdent("x")), ep("o")),
			"let Some ( x ) = o",
		},
		{"NewExprLit", expr, syntax.NewExprLit(syntax.NewLitStr("s")), `"s"`},
		{"NewExprLoop", expr, syntax.NewExprLoop(syntax.NewBlock()), "loop { }"},
		{
			"NewExprMacro", expr,
			syntax.NewExprMacro(syntax.NewMacro("vec", syntax.NewTokenStream("1", ",", "2")).
				WithDelimiter(syntax.MacroDelimiterBracket())),
			"vec ! [ 1 , 2 ]",
		},
		{
			"NewExprMatch", expr,
			syntax.NewExprMatch(ep("x"), syntax.NewArm(syntax.NewPatWild(), lit(0))),
			"match x { _ => 0 , }",
		},
		{"NewExprMethodCall", expr, syntax.NewExprMethodCall(ep("v"), "push", lit(1)), "v . push ( 1 )"},
		{"NewExprParen", expr, syntax.NewExprParen(lit(1)), "( 1 )"},
		{"NewExprPath", expr, ep("std::mem::swap"), "std :: mem :: swap"},
		{
			"NewExprRange", expr,
			syntax.NewExprRange(syntax.RangeLimitsHalfOpen()).WithStart(lit(0)).WithEnd(lit(1)),
			"0 .. 1",
		},
		{"NewExprReference", expr, syntax.NewExprReference(ep("x")), "& x"},
		{"NewExprRepeat", expr, syntax.NewExprRepeat(lit(0), lit(4)), "[ 0 ; 4 ]"},
		{"NewExprReturn", expr, syntax.NewExprReturn(), "return"},
		{"NewExprReturn value", expr, syntax.NewExprReturn().WithExpr(lit(1)), "return 1"},
		{
			"NewExprStruct", expr,
			syntax.NewExprStruct("S", syntax.NewFieldValue(syntax.Ident("a"), lit(1))).
				WithDot2(true),
			"S { a : 1 , .. }",
		},
		{"NewExprTry", expr, syntax.NewExprTry(ep("r")), "r ?"},
		{"NewExprTryBlock", expr, syntax.NewExprTryBlock(syntax.NewBlock()), "try { }"},
		{"NewExprTuple", expr, syntax.NewExprTuple(lit(1), lit(2)), "( 1 , 2 )"},
		{"NewExprTuple single", expr, syntax.NewExprTuple(lit(1)), "( 1 , )"},
		{"NewExprUnary", expr, syntax.NewExprUnary(syntax.UnOpNeg(), lit(1)), "- 1"},
		{"NewExprUnsafe", expr, syntax.NewExprUnsafe(syntax.NewBlock()), "unsafe { }"},
		{"NewExprWhile", expr, syntax.NewExprWhile(lit(true), syntax.NewBlock()), "while true { }"},
		{"NewExprYield", expr, syntax.NewExprYield().WithExpr(lit(1)), "yield 1"},

		// Files and generics.
		{
			"NewFile", nil,
			syntax.NewFile(syntax.NewItemUse(syntax.NewUseGlob())).
				WithShebang("#!/usr/bin/env run"),
			"#!/usr/bin/env run use * ;",
		},
		{"NewFile AddItem", nil, syntax.NewFile().AddItem(syntax.NewItemMod("m")), "mod m ;"},
		{
			"NewGenerics", nil,
			syntax.NewGenerics(syntax.NewTypeParam("T")).WithWhereClause(
				syntax.NewWhereClause(
					syntax.NewPredicateType(ty("T"), syntax.NewTraitBound("Clone")))),
			"< T > where T : Clone",
		},
		{
			"NewLifetimeParam", genParam,
			syntax.NewLifetimeParam(lt("a")).WithBounds(lt("b"), lt("c")),
			"'a : 'b + 'c",
		},
		{
			"NewTypeParam", genParam,
			syntax.NewTypeParam("T").
				WithBounds(syntax.NewTraitBound("Clone")).
				WithDefault(ty("u8")),
			"T : Clone = u8",
		},
		{
			"NewConstParam", genParam,
			syntax.NewConstParam("N", ty("usize")).WithDefault(lit(1)),
			"const N : usize = 1",
		},
		{"NewBoundLifetimes", nil, forA(), "for < 'a >"},
		{"NewTraitBound maybe", bound, syntax.NewTraitBound("Sized").WithModifier(true), "? Sized"},
		{"NewTraitBound higher ranked", bound, syntax.NewTraitBound("Fn").WithLifetimes(forA()), "for < 'a > Fn"},
		{
			"NewWhereClause", nil,
			syntax.NewWhereClause(syntax.NewPredicateLifetime(lt("a"), lt("b"))),
			"where 'a : 'b",
		},
		{"NewPredicateLifetime", predicate, syntax.NewPredicateLifetime(lt("a"), lt("b")), "'a : 'b"},
		{
			"NewPredicateType", predicate,
			syntax.NewPredicateType(ty("T"), syntax.NewTraitBound("Copy")).WithLifetimes(forA()),
			"for < 'a > T : Copy",
		},
		{"NewLifetime", bound, lt("a"), "'a"},
		{"NewIndex", member, syntax.NewIndex(3), "3"},

		// Items.
		{"StaticMutabilityMut", mutability, syntax.StaticMutabilityMut(), "mut"},
		{"NewItemConst", item, syntax.NewItemConst("N", ty("u8"), lit(1)), "const N : u8 = 1 ;"},
		{"NewItemEnum", item, syntax.NewItemEnum("E").AddVariant(syntax.NewVariant("A")), "pub enum E { A }"},
		{"NewItemExternCrate", item, syntax.NewItemExternCrate("alloc").WithRename("a"), "extern crate alloc as a ;"},
		{
			"NewItemFn", item,
			syntax.NewItemFn(syntax.NewSignature("f").WithOutput(ty("u8")),
				syntax.NewBlock(syntax.NewStmtExpr(lit(0)))),
			"fn f ( ) -> u8 { 0 }",
		},
		{
			"NewItemForeignMod", item,
			syntax.NewItemForeignMod(abiC()).AddItem(syntax.NewForeignItemType("T")),
			`extern "C" { type T ; }`,
		},
		{
			"NewItemImpl", item,
			syntax.NewItemImpl(ty("S")).
				WithTrait(false, syntax.IntoPath("Clone")).
				AddItem(syntax.NewImplItemType("Out", ty("u8"))),
			"impl Clone for S { type Out = u8 ; }",
		},
		{
			"NewItemMacro", item,
			syntax.NewItemMacro("m", syntax.NewMacro("macro_rules", "() => {}").
				WithDelimiter(syntax.MacroDelimiterBrace())),
			"macro_rules ! m { () => {} }",
		},
		{
			"NewItemMod", item,
			syntax.NewItemMod("m").WithContent(syntax.NewItemUse(syntax.NewUseName("x"))),
			"mod m { use x ; }",
		},
		{"NewItemStatic", item, syntax.NewItemStatic("S", ty("u8"), lit(0)), "static S : u8 = 0 ;"},
		{
			"NewItemStruct", item,
			syntax.NewItemStruct("S", syntax.NewFieldsNamed(named("a", "u8"))),
			"struct S { a : u8 }",
		},
		{"NewItemTrait auto", item, syntax.NewItemTrait("T").WithAuto(true), "auto trait T { }"},
		{
			"NewItemTrait", item,
			syntax.NewItemTrait("T").AddItem(
				syntax.NewTraitItemFn(syntax.NewSignature("f"))),
			"trait T { fn f ( ) ; }",
		},
		{
			"NewItemTraitAlias", item,
			syntax.NewItemTraitAlias("A", syntax.NewTraitBound("B"), syntax.NewTraitBound("C")),
			"trait A = B + C ;",
		},
		{"NewItemType", item, syntax.NewItemType("X", ty("u8")), "type X = u8 ;"},
		{
			"NewItemUnion", item,
			syntax.NewItemUnion("U", syntax.NewFieldsNamed(named("a", "u8"))),
			"union U { a : u8 }",
		},
		{
			"NewItemUse", item,
			syntax.NewItemUse(syntax.NewUsePath("a", syntax.NewUseRename("b", "c"))),
			"use a :: b as c ;",
		},
		{"NewUseName", useTree, syntax.NewUseName("x"), "x"},
		{"NewUseGlob", useTree, syntax.NewUseGlob(), "*"},
		{
			"NewUseGroup", useTree,
			syntax.NewUseGroup(syntax.NewUseName("a"), syntax.NewUseGlob()),
			"{ a , * }",
		},

		// Foreign, trait and impl items.
		{"NewForeignItemFn", foreign, syntax.NewForeignItemFn(syntax.NewSignature("f")), "fn f ( ) ;"},
		{
			"NewForeignItemStatic", foreign,
			syntax.NewForeignItemStatic("E", ty("i32")).WithMutability(true),
			"static mut E : i32 ;",
		},
		{"NewForeignItemType", foreign, syntax.NewForeignItemType("T"), "type T ;"},
		{
			"NewForeignItemMacro", foreign,
			syntax.NewForeignItemMacro(syntax.NewMacro("m", "")).WithSemi(true),
			"m ! ( ) ;",
		},
		{
			"NewTraitItemConst", traitItem,
			syntax.NewTraitItemConst("N", ty("u8")).WithDefault(lit(1)),
			"const N : u8 = 1 ;",
		},
		{
			"NewTraitItemFn", traitItem,
			syntax.NewTraitItemFn(syntax.NewSignature("f")).WithDefault(syntax.NewBlock()),
			"fn f ( ) { }",
		},
		{
			"NewTraitItemType", traitItem,
			syntax.NewTraitItemType("T").
				WithBounds(syntax.NewTraitBound("Clone")).
				WithDefault(ty("u8")),
			"type T : Clone = u8 ;",
		},
		{
			"NewTraitItemMacro", traitItem,
			syntax.NewTraitItemMacro(syntax.NewMacro("m", "")).WithSemi(true),
			"m ! ( ) ;",
		},
		{"NewImplItemConst", implItem, syntax.NewImplItemConst("N", ty("u8"), lit(1)), "const N : u8 = 1 ;"},
		{
			"NewImplItemFn", implItem,
			syntax.NewImplItemFn(
				syntax.NewSignature("f", syntax.NewReceiver().WithReference(true)),
				syntax.NewBlock()),
			"fn f ( & self ) { }",
		},
		{"NewImplItemType", implItem, syntax.NewImplItemType("T", ty("u8")), "type T = u8 ;"},
		{"NewImplItemMacro", implItem, syntax.NewImplItemMacro(syntax.NewMacro("m", "")), "m ! ( )"},

		// Signatures.
		{
			"NewSignature", nil,
			syntax.NewSignature("f", syntax.NewPatType(syntax.NewPatIdent("x"), ty("u8"))).
				WithConstness(true).
				WithAsyncness(true).
				WithAbi(abiC()),
			`const async extern "C" fn f ( x : u8 )`,
		},
		{
			"NewSignature variadic", nil,
			syntax.NewSignature("printf",
				syntax.NewPatType(syntax.NewPatIdent("fmt"),
					syntax.NewTypePtrConst(ty("c_char")))).
				WithVariadic(syntax.NewVariadic()),
			"fn printf ( fmt : * const c_char , ... )",
		},
		{"NewReceiver", fnArg, syntax.NewReceiver().WithTy(ty("Rc")), "self : Rc"},
		{"NewVariadic", nil, syntax.NewVariadic().WithPat(syntax.NewPatIdent("args")), "args : ..."},

		// Literals.
		{"NewLitStr", literal, syntax.NewLitStr("a b"), `"a b"`},
		{"NewLitByteStr", literal, syntax.NewLitByteStr([]byte("ab")), `b"ab"`},
		{"NewLitByte", literal, syntax.NewLitByte('a'), `b'a'`},
		{"NewLitChar", literal, syntax.NewLitChar('x'), `'x'`},
		{"NewLitInt", literal, syntax.NewLitInt("1u8"), "1u8"},
		{"NewLitFloat", literal, syntax.NewLitFloat("1.5"), "1.5"},
		{"NewLitBool", literal, syntax.NewLitBool(true), "true"},

		// Macros.
		{"NewMacro", nil, syntax.NewMacro("m", "x"), "m ! ( x )"},
		{
			"MacroDelimiterParen", nil,
			syntax.NewMacro("m", "x").WithDelimiter(syntax.MacroDelimiterParen()),
			"m ! ( x )",
		},
		{
			"MacroDelimiterBrace", nil,
			syntax.NewMacro("m", "x").WithDelimiter(syntax.MacroDelimiterBrace()),
			"m ! { x }",
		},
		{
			"MacroDelimiterBracket", nil,
			syntax.NewMacro("m", "x").WithDelimiter(syntax.MacroDelimiterBracket()),
			"m ! [ x ]",
		},

		// Operators.
		{"BinOpAdd", binOp, syntax.BinOpAdd(), "+"},
		{"BinOpSub", binOp, syntax.BinOpSub(), "-"},
		{"BinOpMul", binOp, syntax.BinOpMul(), "*"},
		{"BinOpDiv", binOp, syntax.BinOpDiv(), "/"},
		{"BinOpRem", binOp, syntax.BinOpRem(), "%"},
		{"BinOpAnd", binOp, syntax.BinOpAnd(), "&&"},
		{"BinOpOr", binOp, syntax.BinOpOr(), "||"},
		{"BinOpBitXor", binOp, syntax.BinOpBitXor(), "^"},
		{"BinOpBitAnd", binOp, syntax.BinOpBitAnd(), "&"},
		{"BinOpBitOr", binOp, syntax.BinOpBitOr(), "|"},
		{"BinOpShl", binOp, syntax.BinOpShl(), "<<"},
		{"BinOpShr", binOp, syntax.BinOpShr(), ">>"},
		{"BinOpEq", binOp, syntax.BinOpEq(), "=="},
		{"BinOpLt", binOp, syntax.BinOpLt(), "<"},
		{"BinOpLe", binOp, syntax.BinOpLe(), "<="},
		{"BinOpNe", binOp, syntax.BinOpNe(), "!="},
		{"BinOpGe", binOp, syntax.BinOpGe(), ">="},
		{"BinOpGt", binOp, syntax.BinOpGt(), ">"},
		{"BinOpAddAssign", binOp, syntax.BinOpAddAssign(), "+="},
		{"BinOpSubAssign", binOp, syntax.BinOpSubAssign(), "-="},
		{"BinOpMulAssign", binOp, syntax.BinOpMulAssign(), "*="},
		{"BinOpDivAssign", binOp, syntax.BinOpDivAssign(), "/="},
		{"BinOpRemAssign", binOp, syntax.BinOpRemAssign(), "%="},
		{"BinOpBitXorAssign", binOp, syntax.BinOpBitXorAssign(), "^="},
		{"BinOpBitAndAssign", binOp, syntax.BinOpBitAndAssign(), "&="},
		{"BinOpBitOrAssign", binOp, syntax.BinOpBitOrAssign(), "|="},
		{"BinOpShlAssign", binOp, syntax.BinOpShlAssign(), "<<="},
		{"BinOpShrAssign", binOp, syntax.BinOpShrAssign(), ">>="},
		{"UnOpDeref", unOp, syntax.UnOpDeref(), "*"},
		{"UnOpNot", unOp, syntax.UnOpNot(), "!"},
		{"UnOpNeg", unOp, syntax.UnOpNeg(), "-"},

		// Patterns.
		{
			"NewPatIdent", pat,
			syntax.NewPatIdent("x").WithByRef(true).WithSubpat(syntax.NewPatWild()),
			"ref x @ _",
		},
		{"NewPatOr", pat, syntax.NewPatOr(syntax.NewPatIdent("a"), syntax.NewPatIdent("b")), "a | b"},
		{"NewPatParen", pat, syntax.NewPatParen(syntax.NewPatWild()), "( _ )"},
		{"NewPatReference", pat, syntax.NewPatReference(syntax.NewPatIdent("x")), "& x"},
		{"NewPatRest", pat, syntax.NewPatRest(), ".."},
		{"NewPatWild", pat, syntax.NewPatWild(), "_"},
		{
			"NewPatSlice", pat,
			syntax.NewPatSlice(syntax.NewPatIdent("a"), syntax.NewPatRest()),
			"[ a , .. ]",
		},
		{
			"NewPatStruct", pat,
			syntax.NewPatStruct("S",
				syntax.NewFieldPat(syntax.Ident("a"), syntax.NewPatWild()).WithColon(true)),
			"S { a : _ }",
		},
		{"NewPatTuple", pat, syntax.NewPatTuple(syntax.NewPatWild()), "( _ , )"},
		{"NewPatTupleStruct", pat, syntax.NewPatTupleStruct("Some", syntax.NewPatIdent("x")), "Some ( x )"},
		{"NewPatType", fnArg, syntax.NewPatType(syntax.NewPatIdent("x"), ty("u8")), "x : u8"},
		{
			"NewFieldPat", nil,
			syntax.NewFieldPat(syntax.Ident("a"), syntax.NewPatWild()).WithColon(true),
			"a : _",
		},

		// Paths.
		{
			"NewPath", meta,
			syntax.NewPath(syntax.NewPathSegment("a"), syntax.NewPathSegment("b")).
				WithLeadingColon(true),
			":: a :: b",
		},
		{
			"NewPathSegment", nil,
			syntax.NewPathSegment("Vec").
				WithArguments(syntax.NewAngleBracketedGenericArguments(ty("u8"))),
			"Vec < u8 >",
		},
		{
			"NewAngleBracketedGenericArguments", pathArgs,
			syntax.NewAngleBracketedGenericArguments(lt("a"), ty("T")).WithColon2(true),
			":: < 'a , T >",
		},
		{"NewAssocType", genArg, syntax.NewAssocType("Item", ty("u8")), "Item = u8"},
		{"NewAssocConst", genArg, syntax.NewAssocConst("N", lit(1)), "N = 1"},
		{"NewConstraint", genArg, syntax.NewConstraint("Item", syntax.NewTraitBound("Copy")), "Item : Copy"},
		{
			"NewParenthesizedGenericArguments", pathArgs,
			syntax.NewParenthesizedGenericArguments(ty("u8"), ty("u16")),
			"( u8 , u16 )",
		},
		{"NewQSelf", nil, syntax.NewQSelf(ty("T"), 0), "< T >"},

		// Visibility.
		{"VisibilityPublic", vis, syntax.VisibilityPublic(), "pub"},
		{"NewVisRestricted", vis, syntax.NewVisRestricted("super"), "pub ( super )"},

		// Statements.
		{"NewBlock", nil, syntax.NewBlock().AddStmt(syntax.NewStmtExpr(lit(1))), "{ 1 }"},
		{
			"NewLocal", stmt,
			syntax.NewLocal(syntax.NewPatIdent("x")).WithInit(
				syntax.NewLocalInit(ep("o")).
					WithDiverge(syntax.NewExprBlock(syntax.NewBlock()))),
			"let x = o else { } ;",
		},
		{"NewLocalInit", nil, syntax.NewLocalInit(lit(1)), "= 1"},
		{"NewStmtMacro", stmt, syntax.NewStmtMacro(syntax.NewMacro("m", "")).WithSemi(true), "m ! ( ) ;"},
		{"NewStmtExpr", stmt, syntax.NewStmtExpr(lit(1)).WithSemi(true), "1 ;"},

		// Verbatim tokens.
		{"NewTokenStream", expr, syntax.NewTokenStream("a", "b"), "a b"},

		// Types.
		{"NewAbi", nil, abiC(), `extern "C"`},
		{"NewBareFnArg", nil, syntax.NewBareFnArg(ty("u8")).WithName("x"), "x : u8"},
		{"NewTypeArray", typ, syntax.NewTypeArray(ty("u8"), lit(4)), "[ u8 ; 4 ]"},
		{
			"NewTypeBareFn", typ,
			syntax.NewTypeBareFn(syntax.NewBareFnArg(ty("u8"))).
				WithAbi(abiC()).
				WithVariadic(syntax.NewBareVariadic().WithName("rest")),
			`extern "C" fn ( u8 , rest : ... )`,
		},
		{
			"NewTypeBareFn higher ranked", typ,
			syntax.NewTypeBareFn().WithLifetimes(forA()).WithOutput(ty("u8")),
			"for < 'a > fn ( ) -> u8",
		},
		{"NewTypeGroup", typ, syntax.NewTypeGroup(ty("u8")), "u8"},
		{
			"NewTypeImplTrait", typ,
			syntax.NewTypeImplTrait(syntax.NewTraitBound("A"), lt("a")),
			"impl A + 'a",
		},
		{"NewTypeInfer", typ, syntax.NewTypeInfer(), "_"},
		{"NewTypeMacro", typ, syntax.NewTypeMacro(syntax.NewMacro("ty", "")), "ty ! ( )"},
		{"NewTypeNever", typ, syntax.NewTypeNever(), "!"},
		{"NewTypeParen", typ, syntax.NewTypeParen(ty("u8")), "( u8 )"},
		{"NewTypeSlice", typ, syntax.NewTypeSlice(ty("u8")), "[ u8 ]"},
		{"NewTypePath", typ, ty("a::B"), "a :: B"},
		{"NewTypePtrConst", typ, syntax.NewTypePtrConst(ty("u8")), "* const u8"},
		{"NewTypePtrMut", typ, syntax.NewTypePtrMut(ty("u8")), "* mut u8"},
		{
			"NewTypeReference", typ,
			syntax.NewTypeReference(ty("str")).WithLifetime(lt("a")),
			"& 'a str",
		},
		{"NewTypeTraitObject", typ, syntax.NewTypeTraitObject(syntax.NewTraitBound("Any")), "dyn Any"},
		{"NewTypeTuple", typ, syntax.NewTypeTuple(ty("u8"), ty("u16")), "( u8 , u16 )"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Sprint(tt.node)
			if err != nil {
				t.Fatalf("Sprint() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}

			if tt.cat == nil {
				return
			}

			embedded, ok := tt.cat(tt.node)
			if !ok {
				t.Fatalf("%T is not in its category", tt.node)
			}

			if !reflect.DeepEqual(embedded, tt.node) {
				t.Errorf("embedded = %#v, want %#v", embedded, tt.node)
			}

			again, err := printer.Sprint(embedded)
			if err != nil || again != got {
				t.Errorf("Sprint(embedded) = %q, %v, want %q", again, err, got)
			}
		})
	}
}
