package syntax

import (
	"slices"
	"strings"
)

// Path is a path such as std::collections::HashMap or ::core::fmt.
type Path struct {
	LeadingColon *PathSep
	Segments     []*PathSegment
}

func (*Path) meta() {}

// PathSegment is one segment of a path with its generic arguments.
type PathSegment struct {
	Ident     Ident
	Arguments PathArguments
}

// PathArgumentsNone is the absence of arguments after a path segment.
type PathArgumentsNone struct{}

func (PathArgumentsNone) pathArguments() {}

// AngleBracketedGenericArguments is the <'a, T> after a path segment. Colon2
// is the turbofish ::.
type AngleBracketedGenericArguments struct {
	Colon2 *PathSep
	Args   []GenericArgument
}

func (*AngleBracketedGenericArguments) pathArguments() {}

// ParenthesizedGenericArguments is the (A, B) -> C after an Fn trait path.
type ParenthesizedGenericArguments struct {
	Inputs []Type
	Output ReturnType
}

func (*ParenthesizedGenericArguments) pathArguments() {}

// AssocType binds an associated type: Item = T.
type AssocType struct {
	Ident    Ident
	Generics *AngleBracketedGenericArguments
	Ty       Type
}

// AssocConst binds an associated constant: N = 4.
type AssocConst struct {
	Ident    Ident
	Generics *AngleBracketedGenericArguments
	Value    Expr
}

// Constraint bounds an associated type: Item: Display.
type Constraint struct {
	Ident    Ident
	Generics *AngleBracketedGenericArguments
	Bounds   []TypeParamBound
}

func (*AssocType) genericArgument()  {}
func (*AssocConst) genericArgument() {}
func (*Constraint) genericArgument() {}

// QSelf is the qualified self type of <Vec<T> as SomeTrait>::Assoc. Position
// counts the leading path segments that belong to the trait.
type QSelf struct {
	Ty       Type
	Position int
	As       *As
}

// PathLike lists the values that convert into a [*Path].
type PathLike interface {
	string | Ident | *Path
}

// IntoPath converts p into a path. Strings and identifiers are split on ::,
// and a leading :: sets the leading colon.
func IntoPath[P PathLike](p P) *Path {
	switch v := any(p).(type) {
	case *Path:
		return v
	case Ident:
		return parsePath(string(v))
	case string:
		return parsePath(v)
	}

	panic("unreachable")
}

func parsePath(s string) *Path {
	p := &Path{}
	if rest, ok := strings.CutPrefix(s, "::"); ok {
		p.LeadingColon = &PathSep{}
		s = rest
	}

	for seg := range strings.SplitSeq(s, "::") {
		p.Segments = append(p.Segments, NewPathSegment(Ident(seg)))
	}

	return p
}

// NewPath returns a relative path made of segments.
func NewPath(segments ...*PathSegment) *Path {
	return &Path{Segments: slices.Clone(segments)}
}

// WithLeadingColon returns a copy of p that is (or is not) anchored at the
// crate root with ::.
func (p *Path) WithLeadingColon(on bool) *Path {
	c := *p
	c.LeadingColon = marker[PathSep](on)

	return &c
}

// GetIdent returns the identifier of a path made of exactly one segment
// without a leading colon or arguments.
func (p *Path) GetIdent() (Ident, bool) {
	if p.LeadingColon != nil || len(p.Segments) != 1 {
		return "", false
	}

	seg := p.Segments[0]
	if _, ok := seg.Arguments.(PathArgumentsNone); !ok && seg.Arguments != nil {
		return "", false
	}

	return seg.Ident, true
}

// String returns the path segments joined with ::, ignoring arguments.
func (p *Path) String() string {
	var b strings.Builder
	if p.LeadingColon != nil {
		b.WriteString("::")
	}

	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteString("::")
		}

		b.WriteString(string(seg.Ident))
	}

	return b.String()
}

// NewPathSegment returns a segment without arguments.
func NewPathSegment(ident Ident) *PathSegment {
	return &PathSegment{Ident: ident, Arguments: PathArgumentsNone{}}
}

// WithArguments returns a copy of s followed by args.
func (s *PathSegment) WithArguments(args PathArguments) *PathSegment {
	c := *s
	c.Arguments = args

	return &c
}

// NewAngleBracketedGenericArguments returns <args...> without a turbofish.
func NewAngleBracketedGenericArguments(
	args ...GenericArgument,
) *AngleBracketedGenericArguments {
	return &AngleBracketedGenericArguments{Args: slices.Clone(args)}
}

// WithColon2 returns a copy of a with (or without) the turbofish ::.
func (a *AngleBracketedGenericArguments) WithColon2(
	on bool,
) *AngleBracketedGenericArguments {
	c := *a
	c.Colon2 = marker[PathSep](on)

	return &c
}

// NewAssocType returns ident = ty.
func NewAssocType(ident Ident, ty Type) *AssocType {
	return &AssocType{Ident: ident, Ty: ty}
}

// WithGenerics returns a copy of a with generic arguments on the associated
// type name.
func (a *AssocType) WithGenerics(
	generics *AngleBracketedGenericArguments,
) *AssocType {
	c := *a
	c.Generics = generics

	return &c
}

// NewAssocConst returns ident = value.
func NewAssocConst(ident Ident, value Expr) *AssocConst {
	return &AssocConst{Ident: ident, Value: value}
}

// WithGenerics returns a copy of a with generic arguments on the associated
// constant name.
func (a *AssocConst) WithGenerics(
	generics *AngleBracketedGenericArguments,
) *AssocConst {
	c := *a
	c.Generics = generics

	return &c
}

// NewConstraint returns ident: bounds.
func NewConstraint(ident Ident, bounds ...TypeParamBound) *Constraint {
	return &Constraint{Ident: ident, Bounds: slices.Clone(bounds)}
}

// WithGenerics returns a copy of k with generic arguments on the associated
// type name.
func (k *Constraint) WithGenerics(
	generics *AngleBracketedGenericArguments,
) *Constraint {
	c := *k
	c.Generics = generics

	return &c
}

// NewParenthesizedGenericArguments returns (inputs...) with no explicit
// return type.
func NewParenthesizedGenericArguments(
	inputs ...Type,
) *ParenthesizedGenericArguments {
	return &ParenthesizedGenericArguments{
		Inputs: slices.Clone(inputs),
		Output: ReturnTypeDefault{},
	}
}

// NewQSelf returns <ty> qualifying the first position segments of a path.
func NewQSelf(ty Type, position int) *QSelf {
	return &QSelf{Ty: ty, Position: position}
}

// WithAs returns a copy of q with (or without) the as keyword.
func (q *QSelf) WithAs(on bool) *QSelf {
	c := *q
	c.As = marker[As](on)

	return &c
}
