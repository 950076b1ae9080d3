package syntax

import "slices"

type (
	// TypeArray is a fixed size array type: [T; n].
	TypeArray struct {
		Elem Type
		Len  Expr
	}

	// TypeBareFn is a function pointer type: for<'a> unsafe extern "C"
	// fn(usize) -> bool.
	TypeBareFn struct {
		Lifetimes *BoundLifetimes
		Unsafety  *Unsafe
		Abi       *Abi
		Inputs    []*BareFnArg
		Variadic  *BareVariadic
		Output    ReturnType
	}

	// TypeGroup is a type in an invisible group, as produced by macro
	// expansion.
	TypeGroup struct{ Elem Type }

	// TypeImplTrait is impl Bound1 + Bound2.
	TypeImplTrait struct{ Bounds []TypeParamBound }

	// TypeInfer is the inferred type _.
	TypeInfer struct{}

	// TypeMacro is a type produced by a macro invocation.
	TypeMacro struct{ Mac *Macro }

	// TypeNever is the never type !.
	TypeNever struct{}

	// TypeParen is a parenthesized type.
	TypeParen struct{ Elem Type }

	// TypePath is a path naming a type, optionally qualified:
	// <Vec<T> as Trait>::Assoc.
	TypePath struct {
		QSelf *QSelf
		Path  *Path
	}

	// TypePtr is a raw pointer: *const T or *mut T.
	TypePtr struct {
		Const      *Const
		Mutability *Mut
		Elem       Type
	}

	// TypeReference is a reference: &'a mut T.
	TypeReference struct {
		Lifetime   *Lifetime
		Mutability *Mut
		Elem       Type
	}

	// TypeSlice is a dynamically sized slice: [T].
	TypeSlice struct{ Elem Type }

	// TypeTraitObject is dyn Bound1 + Bound2.
	TypeTraitObject struct{ Bounds []TypeParamBound }

	// TypeTuple is a tuple type: (A, B).
	TypeTuple struct{ Elems []Type }
)

func (*TypeArray) typeNode()       {}
func (*TypeBareFn) typeNode()      {}
func (*TypeGroup) typeNode()       {}
func (*TypeImplTrait) typeNode()   {}
func (*TypeInfer) typeNode()       {}
func (*TypeMacro) typeNode()       {}
func (*TypeNever) typeNode()       {}
func (*TypeParen) typeNode()       {}
func (*TypePath) typeNode()        {}
func (*TypePtr) typeNode()         {}
func (*TypeReference) typeNode()   {}
func (*TypeSlice) typeNode()       {}
func (*TypeTraitObject) typeNode() {}
func (*TypeTuple) typeNode()       {}

func (*TypeArray) genericArgument()       {}
func (*TypeBareFn) genericArgument()      {}
func (*TypeGroup) genericArgument()       {}
func (*TypeImplTrait) genericArgument()   {}
func (*TypeInfer) genericArgument()       {}
func (*TypeMacro) genericArgument()       {}
func (*TypeNever) genericArgument()       {}
func (*TypeParen) genericArgument()       {}
func (*TypePath) genericArgument()        {}
func (*TypePtr) genericArgument()         {}
func (*TypeReference) genericArgument()   {}
func (*TypeSlice) genericArgument()       {}
func (*TypeTraitObject) genericArgument() {}
func (*TypeTuple) genericArgument()       {}

// ReturnTypeDefault is the absence of a return type annotation.
type ReturnTypeDefault struct{}

// ReturnTypeExplicit is -> Ty.
type ReturnTypeExplicit struct{ Ty Type }

func (ReturnTypeDefault) returnType()   {}
func (*ReturnTypeExplicit) returnType() {}

// Abi is extern "name".
type Abi struct{ Name *LitStr }

// NewAbi returns extern name.
func NewAbi(name *LitStr) *Abi { return &Abi{Name: name} }

// BareFnArg is an argument of a function pointer type. Name is empty for an
// unnamed argument.
type BareFnArg struct {
	Attrs []*Attribute
	Name  Ident
	Ty    Type
}

// NewBareFnArg returns an unnamed argument of type ty.
func NewBareFnArg(ty Type) *BareFnArg { return &BareFnArg{Ty: ty} }

// WithName returns a copy of a with the argument name name.
func (a *BareFnArg) WithName(name Ident) *BareFnArg {
	c := *a
	c.Name = name

	return &c
}

// BareVariadic is the trailing ... of a variadic function pointer type.
type BareVariadic struct {
	Attrs []*Attribute
	Name  Ident
	Comma *Comma
}

// NewBareVariadic returns an unnamed ....
func NewBareVariadic() *BareVariadic { return &BareVariadic{} }

// WithName returns a copy of v named name.
func (v *BareVariadic) WithName(name Ident) *BareVariadic {
	c := *v
	c.Name = name

	return &c
}

// NewTypeArray returns [elem; len].
func NewTypeArray(elem Type, length Expr) *TypeArray {
	return &TypeArray{Elem: elem, Len: length}
}

// NewTypeBareFn returns fn(inputs...) with no qualifiers and no return type.
func NewTypeBareFn(inputs ...*BareFnArg) *TypeBareFn {
	return &TypeBareFn{
		Inputs: slices.Clone(inputs),
		Output: ReturnTypeDefault{},
	}
}

// WithLifetimes returns a copy of t under the binder l.
func (t *TypeBareFn) WithLifetimes(l *BoundLifetimes) *TypeBareFn {
	c := *t
	c.Lifetimes = l

	return &c
}

// WithAbi returns a copy of t with the extern ABI abi.
func (t *TypeBareFn) WithAbi(abi *Abi) *TypeBareFn {
	c := *t
	c.Abi = abi

	return &c
}

// WithVariadic returns a copy of t ending in v.
func (t *TypeBareFn) WithVariadic(v *BareVariadic) *TypeBareFn {
	c := *t
	c.Variadic = v

	return &c
}

// NewTypeGroup returns elem inside an invisible group.
func NewTypeGroup(elem Type) *TypeGroup { return &TypeGroup{Elem: elem} }

// NewTypeImplTrait returns impl bounds.
func NewTypeImplTrait(bounds ...TypeParamBound) *TypeImplTrait {
	return &TypeImplTrait{Bounds: slices.Clone(bounds)}
}

// NewTypeInfer returns the placeholder type _.
func NewTypeInfer() *TypeInfer { return &TypeInfer{} }

// NewTypeMacro returns mac in type position.
func NewTypeMacro(mac *Macro) *TypeMacro { return &TypeMacro{Mac: mac} }

// NewTypeNever returns the never type !.
func NewTypeNever() *TypeNever { return &TypeNever{} }

// NewTypeParen returns (elem).
func NewTypeParen(elem Type) *TypeParen { return &TypeParen{Elem: elem} }

// NewTypeSlice returns [elem].
func NewTypeSlice(elem Type) *TypeSlice { return &TypeSlice{Elem: elem} }

// NewTypePath returns the type named by path.
func NewTypePath[P PathLike](path P) *TypePath {
	return &TypePath{Path: IntoPath(path)}
}

// NewTypePtrConst returns *const elem.
func NewTypePtrConst(elem Type) *TypePtr {
	return &TypePtr{Const: &Const{}, Elem: elem}
}

// NewTypePtrMut returns *mut elem.
func NewTypePtrMut(elem Type) *TypePtr {
	return &TypePtr{Mutability: &Mut{}, Elem: elem}
}

// NewTypeReference returns &elem.
func NewTypeReference(elem Type) *TypeReference {
	return &TypeReference{Elem: elem}
}

// WithLifetime returns a copy of t borrowing for l.
func (t *TypeReference) WithLifetime(l Lifetime) *TypeReference {
	c := *t
	c.Lifetime = &l

	return &c
}

// NewTypeTraitObject returns dyn bounds.
func NewTypeTraitObject(bounds ...TypeParamBound) *TypeTraitObject {
	return &TypeTraitObject{Bounds: slices.Clone(bounds)}
}

// NewTypeTuple returns (elems...). No elements is the unit type.
func NewTypeTuple(elems ...Type) *TypeTuple {
	return &TypeTuple{Elems: slices.Clone(elems)}
}
