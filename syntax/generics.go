package syntax

import "slices"

// Generics is the parameter list and where clause of a generic item. The
// zero value has neither angle brackets nor a where clause.
type Generics struct {
	Lt          *Lt
	Params      []GenericParam
	Gt          *Gt
	WhereClause *WhereClause
}

// NewGenerics returns <params...>.
func NewGenerics(params ...GenericParam) *Generics {
	return &Generics{
		Lt:     &Lt{},
		Params: slices.Clone(params),
		Gt:     &Gt{},
	}
}

// WithWhereClause returns a copy of g with the where clause w.
func (g *Generics) WithWhereClause(w *WhereClause) *Generics {
	c := *g
	c.WhereClause = w

	return &c
}

// AddParam returns a copy of g with p appended to its parameters. The angle
// brackets are added if g had none.
func (g *Generics) AddParam(p GenericParam) *Generics {
	c := *g
	c.Lt, c.Gt = &Lt{}, &Gt{}
	c.Params = append(slices.Clip(g.Params), p)

	return &c
}

type (
	// LifetimeParam is a lifetime parameter: 'a: 'b + 'c.
	LifetimeParam struct {
		Attrs    []*Attribute
		Lifetime Lifetime
		Colon    *Colon
		Bounds   []Lifetime
	}

	// TypeParam is a type parameter: T: Bound = Default.
	TypeParam struct {
		Attrs   []*Attribute
		Ident   Ident
		Colon   *Colon
		Bounds  []TypeParamBound
		Eq      *Eq
		Default Type
	}

	// ConstParam is a const parameter: const N: usize = 4.
	ConstParam struct {
		Attrs   []*Attribute
		Ident   Ident
		Ty      Type
		Eq      *Eq
		Default Expr
	}
)

func (*LifetimeParam) genericParam() {}
func (*TypeParam) genericParam()     {}
func (*ConstParam) genericParam()    {}

// NewLifetimeParam returns an unbounded lifetime parameter.
func NewLifetimeParam(lifetime Lifetime) *LifetimeParam {
	return &LifetimeParam{Lifetime: lifetime}
}

// WithBounds returns a copy of p outliving bounds.
func (p *LifetimeParam) WithBounds(bounds ...Lifetime) *LifetimeParam {
	c := *p
	c.Colon = &Colon{}
	c.Bounds = slices.Clone(bounds)

	return &c
}

// NewTypeParam returns an unbounded type parameter without a default.
func NewTypeParam(ident Ident) *TypeParam {
	return &TypeParam{Ident: ident}
}

// WithBounds returns a copy of p with bounds.
func (p *TypeParam) WithBounds(bounds ...TypeParamBound) *TypeParam {
	c := *p
	c.Colon = &Colon{}
	c.Bounds = slices.Clone(bounds)

	return &c
}

// WithDefault returns a copy of p defaulting to ty.
func (p *TypeParam) WithDefault(ty Type) *TypeParam {
	c := *p
	c.Eq = &Eq{}
	c.Default = ty

	return &c
}

// NewConstParam returns const ident: ty.
func NewConstParam(ident Ident, ty Type) *ConstParam {
	return &ConstParam{Ident: ident, Ty: ty}
}

// WithDefault returns a copy of p defaulting to expr.
func (p *ConstParam) WithDefault(expr Expr) *ConstParam {
	c := *p
	c.Eq = &Eq{}
	c.Default = expr

	return &c
}

// BoundLifetimes is a higher-ranked binder: for<'a, 'b>.
type BoundLifetimes struct {
	Lifetimes []GenericParam
}

// NewBoundLifetimes returns for<lifetimes...>.
func NewBoundLifetimes(lifetimes ...GenericParam) *BoundLifetimes {
	return &BoundLifetimes{Lifetimes: slices.Clone(lifetimes)}
}

// TraitBound is a trait used as a bound: for<'a> ?Sized.
type TraitBound struct {
	Modifier  TraitBoundModifier
	Lifetimes *BoundLifetimes
	Path      *Path
}

func (*TraitBound) typeParamBound() {}

// TraitBoundModifierNone is a trait bound without ?.
type TraitBoundModifierNone struct{}

func (TraitBoundModifierNone) traitBoundModifier() {}

// NewTraitBound returns a plain bound on the trait at path.
func NewTraitBound[P PathLike](path P) *TraitBound {
	return &TraitBound{
		Modifier: TraitBoundModifierNone{},
		Path:     IntoPath(path),
	}
}

// WithLifetimes returns a copy of b under the binder l.
func (b *TraitBound) WithLifetimes(l *BoundLifetimes) *TraitBound {
	c := *b
	c.Lifetimes = l

	return &c
}

// WithModifier returns a copy of b that is a ?Trait bound when maybe is true.
func (b *TraitBound) WithModifier(maybe bool) *TraitBound {
	c := *b
	if maybe {
		c.Modifier = Question{}
	} else {
		c.Modifier = TraitBoundModifierNone{}
	}

	return &c
}

// WhereClause is where followed by predicates.
type WhereClause struct {
	Predicates []WherePredicate
}

// NewWhereClause returns a where clause listing predicates.
func NewWhereClause(predicates ...WherePredicate) *WhereClause {
	return &WhereClause{Predicates: slices.Clone(predicates)}
}

type (
	// PredicateLifetime is a lifetime predicate: 'a: 'b + 'c.
	PredicateLifetime struct {
		Lifetime Lifetime
		Bounds   []Lifetime
	}

	// PredicateType is a type predicate: for<'a> T: Bound.
	PredicateType struct {
		Lifetimes *BoundLifetimes
		BoundedTy Type
		Bounds    []TypeParamBound
	}
)

func (*PredicateLifetime) wherePredicate() {}
func (*PredicateType) wherePredicate()     {}

// NewPredicateLifetime returns lifetime: bounds.
func NewPredicateLifetime(
	lifetime Lifetime,
	bounds ...Lifetime,
) *PredicateLifetime {
	return &PredicateLifetime{Lifetime: lifetime, Bounds: slices.Clone(bounds)}
}

// NewPredicateType returns boundedTy: bounds.
func NewPredicateType(
	boundedTy Type,
	bounds ...TypeParamBound,
) *PredicateType {
	return &PredicateType{BoundedTy: boundedTy, Bounds: slices.Clone(bounds)}
}

// WithLifetimes returns a copy of p under the binder l.
func (p *PredicateType) WithLifetimes(l *BoundLifetimes) *PredicateType {
	c := *p
	c.Lifetimes = l

	return &c
}
