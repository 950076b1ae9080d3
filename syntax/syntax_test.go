package syntax_test

import (
	"reflect"
	"testing"

	"github.com/ardnew/synbuild/syntax"
)

// Conversion Tests
// ============================================================================

// TestIntoPath verifies conversions from strings, identifiers and paths.
func TestIntoPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    *syntax.Path
		want    string
		leading bool
		segs    int
	}{
		{"single", syntax.IntoPath("Vec"), "Vec", false, 1},
		{"ident", syntax.IntoPath(syntax.Ident("Vec")), "Vec", false, 1},
		{"nested", syntax.IntoPath("std::vec::Vec"), "std::vec::Vec", false, 3},
		{"leading", syntax.IntoPath("::core::fmt"), "::core::fmt", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			if got := tt.path.LeadingColon != nil; got != tt.leading {
				t.Errorf("leading colon = %v, want %v", got, tt.leading)
			}

			if got := len(tt.path.Segments); got != tt.segs {
				t.Errorf("len(Segments) = %d, want %d", got, tt.segs)
			}
		})
	}
}

// TestIntoPath_Identity verifies that a path converts to itself.
func TestIntoPath_Identity(t *testing.T) {
	t.Parallel()

	p := syntax.NewPath(syntax.NewPathSegment("a"), syntax.NewPathSegment("b"))
	if got := syntax.IntoPath(p); got != p {
		t.Errorf("IntoPath(p) = %p, want %p", got, p)
	}
}

// TestPath_GetIdent verifies single segment detection.
func TestPath_GetIdent(t *testing.T) {
	t.Parallel()

	if id, ok := syntax.IntoPath("self").GetIdent(); !ok || id != "self" {
		t.Errorf("GetIdent() = %q, %v, want self, true", id, ok)
	}

	if _, ok := syntax.IntoPath("a::b").GetIdent(); ok {
		t.Error("GetIdent() on a::b reported a single identifier")
	}

	if _, ok := syntax.IntoPath("::a").GetIdent(); ok {
		t.Error("GetIdent() on ::a reported a single identifier")
	}
}

// TestLitOf verifies Go value conversion into literals.
func TestLitOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lit  syntax.Lit
		want syntax.Lit
	}{
		{"string", syntax.LitOf("hi"), syntax.NewLitStr("hi")},
		{"bytes", syntax.LitOf([]byte("hi")), syntax.NewLitByteStr([]byte("hi"))},
		{"bool", syntax.LitOf(true), syntax.NewLitBool(true)},
		{"int", syntax.LitOf(-7), syntax.NewLitInt("-7")},
		{"uint64", syntax.LitOf(uint64(42)), syntax.NewLitInt("42")},
		{"whole float", syntax.LitOf(3.0), syntax.NewLitFloat("3.0")},
		{"float", syntax.LitOf(float32(0.5)), syntax.NewLitFloat("0.5")},
		{"exponent", syntax.LitOf(1e21), syntax.NewLitFloat("1e+21")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !reflect.DeepEqual(tt.lit, tt.want) {
				t.Errorf("LitOf() = %#v, want %#v", tt.lit, tt.want)
			}
		})
	}
}

// TestLitInt_Suffix verifies splitting of numeric suffixes.
func TestLitInt_Suffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		repr, digits, suffix string
	}{
		{"42", "42", ""},
		{"42u8", "42", "u8"},
		{"0xffusize", "0xff", "usize"},
		{"u8", "u8", ""},
	}

	for _, tt := range tests {
		l := syntax.NewLitInt(tt.repr)
		if got := l.Suffix(); got != tt.suffix {
			t.Errorf("%s: Suffix() = %q, want %q", tt.repr, got, tt.suffix)
		}

		if got := l.Digits(); got != tt.digits {
			t.Errorf("%s: Digits() = %q, want %q", tt.repr, got, tt.digits)
		}
	}

	f := syntax.NewLitFloat("1.5f32")
	if f.Suffix() != "f32" || f.Digits() != "1.5" {
		t.Errorf("float split = %q, %q", f.Digits(), f.Suffix())
	}
}

// TestNewLifetime verifies that the apostrophe is optional.
func TestNewLifetime(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a", "'a"} {
		if got := syntax.NewLifetime(name).String(); got != "'a" {
			t.Errorf("NewLifetime(%q) = %s, want 'a", name, got)
		}
	}
}

// TestOperators verifies that named operators are their tokens.
func TestOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  any
		want any
	}{
		{syntax.BinOpAdd(), syntax.Plus{}},
		{syntax.BinOpAnd(), syntax.AndAnd{}},
		{syntax.BinOpBitAnd(), syntax.And{}},
		{syntax.BinOpShrAssign(), syntax.ShrEq{}},
		{syntax.UnOpDeref(), syntax.Star{}},
		{syntax.UnOpNot(), syntax.Not{}},
		{syntax.UnOpNeg(), syntax.Minus{}},
		{syntax.RangeLimitsHalfOpen(), syntax.DotDot{}},
		{syntax.RangeLimitsClosed(), syntax.DotDotEq{}},
		{syntax.VisibilityPublic(), syntax.Pub{}},
		{syntax.AttrStyleInner(), syntax.Not{}},
		{syntax.StaticMutabilityMut(), syntax.Mut{}},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %T, want %T", tt.got, tt.want)
		}
	}
}

// Default Tests
// ============================================================================

// TestDefaults verifies the fields constructors fill in.
func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("enum is public", func(t *testing.T) {
		t.Parallel()

		e := syntax.NewItemEnum("e")
		if _, ok := e.Vis.(syntax.Pub); !ok {
			t.Errorf("Vis = %T, want Pub", e.Vis)
		}

		if e.Generics == nil || len(e.Generics.Params) != 0 {
			t.Errorf("Generics = %#v, want empty", e.Generics)
		}
	})

	t.Run("variant is unit", func(t *testing.T) {
		t.Parallel()

		v := syntax.NewVariant("V")
		if _, ok := v.Fields.(syntax.FieldsUnit); !ok {
			t.Errorf("Fields = %T, want FieldsUnit", v.Fields)
		}
	})

	t.Run("field is inherited and unnamed", func(t *testing.T) {
		t.Parallel()

		f := syntax.NewField(syntax.NewTypePath("u8"))
		if _, ok := f.Vis.(syntax.VisInherited); !ok {
			t.Errorf("Vis = %T, want VisInherited", f.Vis)
		}

		if f.Ident != "" || f.Colon != nil {
			t.Errorf("Ident = %q, Colon = %v, want unnamed", f.Ident, f.Colon)
		}

		named := f.WithIdent("x")
		if named.Colon == nil {
			t.Error("WithIdent() left the colon unset")
		}
	})

	t.Run("shorthand field pattern", func(t *testing.T) {
		t.Parallel()

		p := syntax.NewFieldPat(syntax.Ident("x"), syntax.NewPatIdent("x"))
		if p.Colon != nil {
			t.Error("NewFieldPat() set the colon")
		}

		if p.WithColon(true).Colon == nil {
			t.Error("WithColon(true) left the colon unset")
		}
	})

	t.Run("field value has colon", func(t *testing.T) {
		t.Parallel()

		v := syntax.NewFieldValue(syntax.NewIndex(0), syntax.NewExprInfer())
		if v.Colon == nil {
			t.Error("NewFieldValue() left the colon unset")
		}
	})

	t.Run("arm has comma", func(t *testing.T) {
		t.Parallel()

		a := syntax.NewArm(syntax.NewPatWild(), syntax.NewExprInfer())
		if a.Comma == nil {
			t.Error("NewArm() left the comma unset")
		}
	})

	t.Run("signature returns nothing", func(t *testing.T) {
		t.Parallel()

		s := syntax.NewSignature("f")
		if _, ok := s.Output.(syntax.ReturnTypeDefault); !ok {
			t.Errorf("Output = %T, want ReturnTypeDefault", s.Output)
		}

		out, ok := s.WithOutput(syntax.NewTypeNever()).Output.(*syntax.ReturnTypeExplicit)
		if !ok {
			t.Fatal("WithOutput() did not set an explicit return type")
		}

		if _, ok := out.Ty.(*syntax.TypeNever); !ok {
			t.Errorf("Output.Ty = %T, want *TypeNever", out.Ty)
		}
	})

	t.Run("static is immutable", func(t *testing.T) {
		t.Parallel()

		s := syntax.NewItemStatic("S", syntax.NewTypePath("u8"), syntax.NewExprInfer())
		if _, ok := s.Mutability.(syntax.StaticMutabilityNone); !ok {
			t.Errorf("Mutability = %T, want StaticMutabilityNone", s.Mutability)
		}

		if _, ok := s.WithMutability(true).Mutability.(syntax.Mut); !ok {
			t.Error("WithMutability(true) did not set mut")
		}
	})

	t.Run("inline module", func(t *testing.T) {
		t.Parallel()

		m := syntax.NewItemMod("m")
		if m.Content != nil {
			t.Error("NewItemMod() is inline")
		}

		if m.WithContent().Content == nil {
			t.Error("WithContent() left the module out of line")
		}
	})
}

// TestNewVisRestricted verifies when the in keyword is present.
func TestNewVisRestricted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		in   bool
	}{
		{"crate", false},
		{"self", false},
		{"super", false},
		{"my_mod", true},
		{"a::b", true},
		{"crate::a", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			v := syntax.NewVisRestricted(tt.path)
			if got := v.In != nil; got != tt.in {
				t.Errorf("in = %v, want %v", got, tt.in)
			}

			if got := v.Path.String(); got != tt.path {
				t.Errorf("Path = %q, want %q", got, tt.path)
			}
		})
	}
}

// Modifier Tests
// ============================================================================

// TestAttrs verifies that AddAttr appends and WithAttrs replaces.
func TestAttrs(t *testing.T) {
	t.Parallel()

	a := syntax.NewAttribute(syntax.IntoPath("a"))
	b := syntax.NewAttribute(syntax.IntoPath("b"))
	c := syntax.NewAttribute(syntax.IntoPath("c"))

	base := syntax.NewItemStruct("S", syntax.FieldsUnit{})
	one := base.AddAttr(a)
	two := one.AddAttr(b)

	if len(base.Attrs) != 0 {
		t.Errorf("AddAttr() modified its receiver: %d attrs", len(base.Attrs))
	}

	if !reflect.DeepEqual(two.Attrs, []*syntax.Attribute{a, b}) {
		t.Errorf("Attrs = %v, want [a b]", two.Attrs)
	}

	replaced := two.WithAttrs(c)
	if !reflect.DeepEqual(replaced.Attrs, []*syntax.Attribute{c}) {
		t.Errorf("WithAttrs() = %v, want [c]", replaced.Attrs)
	}

	if len(two.Attrs) != 2 {
		t.Errorf("WithAttrs() modified its receiver: %d attrs", len(two.Attrs))
	}
}

// TestAdd_NoAliasing verifies that siblings built from one value do not
// share list storage.
func TestAdd_NoAliasing(t *testing.T) {
	t.Parallel()

	base := syntax.NewItemEnum("e").
		AddVariant(syntax.NewVariant("A")).
		AddVariant(syntax.NewVariant("B"))

	x := base.AddVariant(syntax.NewVariant("X"))
	y := base.AddVariant(syntax.NewVariant("Y"))

	if got := x.Variants[2].Ident; got != "X" {
		t.Errorf("x.Variants[2] = %s, want X", got)
	}

	if got := y.Variants[2].Ident; got != "Y" {
		t.Errorf("y.Variants[2] = %s, want Y", got)
	}

	if len(base.Variants) != 2 {
		t.Errorf("len(base.Variants) = %d, want 2", len(base.Variants))
	}
}

// TestExprStruct_Rest verifies that a rest expression implies the dots.
func TestExprStruct_Rest(t *testing.T) {
	t.Parallel()

	s := syntax.NewExprStruct("S")
	if s.Dot2 != nil || s.Rest != nil {
		t.Fatal("NewExprStruct() has a rest")
	}

	rest := s.WithRest(syntax.NewExprPath("base"))
	if rest.Dot2 == nil || rest.Rest == nil {
		t.Error("WithRest() did not set both the dots and the expression")
	}

	dots := s.WithDot2(true)
	if dots.Dot2 == nil || dots.Rest != nil {
		t.Error("WithDot2(true) should set only the dots")
	}

	cleared := rest.WithDot2(false)
	if cleared.Dot2 != nil || cleared.Rest != nil {
		t.Errorf("WithDot2(false) = (%v, %v), want no dots and no rest",
			cleared.Dot2, cleared.Rest)
	}

	if rest.Rest == nil {
		t.Error("WithDot2(false) modified its receiver")
	}
}

// TestReceiver_Exclusive verifies that reference and lifetime replace each
// other.
func TestReceiver_Exclusive(t *testing.T) {
	t.Parallel()

	r := syntax.NewReceiver()
	if r.Reference != nil || r.Mutability != nil || r.Colon == nil {
		t.Fatalf("NewReceiver() = %#v, want by value self: Self", r)
	}

	l := syntax.NewLifetime("a")

	byLifetime := r.WithReference(true).WithLifetime(l)
	if byLifetime.Reference == nil || byLifetime.Reference.Lifetime == nil ||
		*byLifetime.Reference.Lifetime != l {
		t.Errorf("Reference = %#v, want &'a", byLifetime.Reference)
	}

	byRef := byLifetime.WithReference(true)
	if byRef.Reference == nil || byRef.Reference.Lifetime != nil {
		t.Errorf("Reference = %#v, want & without lifetime", byRef.Reference)
	}

	if byRef.WithReference(false).Reference != nil {
		t.Error("WithReference(false) kept the reference")
	}
}

// TestWithTurbofish verifies the turbofish separator is added on a copy.
func TestWithTurbofish(t *testing.T) {
	t.Parallel()

	args := syntax.NewAngleBracketedGenericArguments(syntax.NewTypeInfer())
	call := syntax.NewExprMethodCall(syntax.NewExprPath("it"), "collect").
		WithTurbofish(args)

	if call.Turbofish.Colon2 == nil {
		t.Error("WithTurbofish() did not add ::")
	}

	if args.Colon2 != nil {
		t.Error("WithTurbofish() modified its argument")
	}
}

// TestCategories verifies the cross-category memberships.
func TestCategories(t *testing.T) {
	t.Parallel()

	var (
		_ syntax.Stmt            = syntax.NewExprInfer()
		_ syntax.GenericArgument = syntax.NewExprInfer()
		_ syntax.GenericArgument = syntax.NewTypeInfer()
		_ syntax.Stmt            = syntax.NewItemMod("m")
		_ syntax.Pat             = syntax.NewExprPath("None")
		_ syntax.FnArg           = syntax.NewReceiver()
		_ syntax.FnArg           = syntax.NewPatType(syntax.NewPatWild(), syntax.NewTypeInfer())
		_ syntax.Expr            = syntax.TokenStream("x")
		_ syntax.Item            = syntax.TokenStream("x")
		_ syntax.BinOp           = syntax.Plus{}
		_ syntax.MacroDelimiter  = syntax.Brace{}
	)
}

// TestModifiers_Idempotent verifies that a modifier applied twice equals one
// application, and that overriding a default and then restoring it yields the
// constructor's value.
func TestModifiers_Idempotent(t *testing.T) {
	t.Parallel()

	u8 := syntax.NewTypePath("u8")
	zero := syntax.NewExprLit(syntax.LitOf(0))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{
			name: "visibility twice",
			got: syntax.NewItemMod("m").
				WithVis(syntax.VisibilityPublic()).
				WithVis(syntax.VisibilityPublic()),
			want: syntax.NewItemMod("m").WithVis(syntax.VisibilityPublic()),
		},
		{
			name: "enum visibility restored",
			got: syntax.NewItemEnum("e").
				WithVis(syntax.VisInherited{}).
				WithVis(syntax.VisibilityPublic()),
			want: syntax.NewItemEnum("e"),
		},
		{
			name: "field name removed",
			got:  syntax.NewField(u8).WithIdent("x").WithIdent(""),
			want: syntax.NewField(u8),
		},
		{
			name: "static mutability restored",
			got: syntax.NewItemStatic("S", u8, zero).
				WithMutability(true).
				WithMutability(false),
			want: syntax.NewItemStatic("S", u8, zero),
		},
		{
			name: "bound modifier restored",
			got:  syntax.NewTraitBound("Sized").WithModifier(true).WithModifier(false),
			want: syntax.NewTraitBound("Sized"),
		},
		{
			name: "attribute style restored",
			got: syntax.NewAttribute(syntax.IntoPath("test")).
				WithStyle(true).
				WithStyle(false),
			want: syntax.NewAttribute(syntax.IntoPath("test")),
		},
		{
			name: "auto trait restored",
			got:  syntax.NewItemTrait("T").WithAuto(true).WithAuto(false),
			want: syntax.NewItemTrait("T"),
		},
		{
			name: "binding mode restored",
			got:  syntax.NewPatIdent("x").WithByRef(true).WithByRef(false),
			want: syntax.NewPatIdent("x"),
		},
		{
			name: "receiver by value restored",
			got:  syntax.NewReceiver().WithReference(true).WithReference(false),
			want: syntax.NewReceiver(),
		},
		{
			name: "struct rest removed",
			got: syntax.NewExprStruct("S").
				WithRest(syntax.NewExprPath("base")).
				WithDot2(false),
			want: syntax.NewExprStruct("S"),
		},
		{
			name: "macro delimiter restored",
			got: syntax.NewMacro("m", "").
				WithDelimiter(syntax.MacroDelimiterBrace()).
				WithDelimiter(syntax.MacroDelimiterParen()),
			want: syntax.NewMacro("m", ""),
		},
		{
			name: "closure capture twice",
			got: syntax.NewExprClosure(zero).
				WithCapture(true).
				WithCapture(true),
			want: syntax.NewExprClosure(zero).WithCapture(true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %#v, want %#v", tt.got, tt.want)
			}
		})
	}
}
