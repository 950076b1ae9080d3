package syntax

import "slices"

type (
	// ItemConst is const IDENT: Ty = expr;.
	ItemConst struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
		Ty       Type
		Expr     Expr
	}

	// ItemEnum is enum Ident { variants... }.
	ItemEnum struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
		Variants []*Variant
	}

	// ItemExternCrate is extern crate ident as rename;.
	ItemExternCrate struct {
		Attrs  []*Attribute
		Vis    Visibility
		Ident  Ident
		Rename Ident
	}

	ItemFn struct {
		Attrs []*Attribute
		Vis   Visibility
		Sig   *Signature
		Block *Block
	}

	// ItemForeignMod is an extern block: extern "C" { items... }.
	ItemForeignMod struct {
		Attrs    []*Attribute
		Unsafety *Unsafe
		Abi      *Abi
		Items    []ForeignItem
	}

	// ItemImpl is an impl block, inherent or of a trait.
	ItemImpl struct {
		Attrs       []*Attribute
		Defaultness *Default
		Unsafety    *Unsafe
		Generics    *Generics
		Trait       *ImplTrait
		SelfTy      Type
		Items       []ImplItem
	}

	// ItemMacro is a macro invocation in item position, including
	// macro_rules! name { ... }. Ident is empty when the invocation is
	// not named.
	ItemMacro struct {
		Attrs []*Attribute
		Ident Ident
		Mac   *Macro
		Semi  *Semi
	}

	// ItemMod is a module. A nil Content is an out of line module: mod m;.
	ItemMod struct {
		Attrs    []*Attribute
		Vis      Visibility
		Unsafety *Unsafe
		Ident    Ident
		Content  []Item
	}

	// ItemStatic is static mut IDENT: Ty = expr;.
	ItemStatic struct {
		Attrs      []*Attribute
		Vis        Visibility
		Mutability StaticMutability
		Ident      Ident
		Ty         Type
		Expr       Expr
	}

	ItemStruct struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
		Fields   Fields
	}

	// ItemTrait is a trait definition: unsafe auto trait Ident: Super {
	// items... }.
	ItemTrait struct {
		Attrs       []*Attribute
		Vis         Visibility
		Unsafety    *Unsafe
		Auto        *Auto
		Ident       Ident
		Generics    *Generics
		Colon       *Colon
		Supertraits []TypeParamBound
		Items       []TraitItem
	}

	// ItemTraitAlias is trait Ident = Bounds;.
	ItemTraitAlias struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
		Bounds   []TypeParamBound
	}

	// ItemType is a type alias: type Ident = Ty;.
	ItemType struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
		Ty       Type
	}

	// ItemUnion is a union, whose fields are always named.
	ItemUnion struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
		Fields   *FieldsNamed
	}

	// ItemUse is a use declaration: use ::a::{b, c as d};.
	ItemUse struct {
		Attrs        []*Attribute
		Vis          Visibility
		LeadingColon *PathSep
		Tree         UseTree
	}
)

func (*ItemConst) itemNode()       {}
func (*ItemEnum) itemNode()        {}
func (*ItemExternCrate) itemNode() {}
func (*ItemFn) itemNode()          {}
func (*ItemForeignMod) itemNode()  {}
func (*ItemImpl) itemNode()        {}
func (*ItemMacro) itemNode()       {}
func (*ItemMod) itemNode()         {}
func (*ItemStatic) itemNode()      {}
func (*ItemStruct) itemNode()      {}
func (*ItemTrait) itemNode()       {}
func (*ItemTraitAlias) itemNode()  {}
func (*ItemType) itemNode()        {}
func (*ItemUnion) itemNode()       {}
func (*ItemUse) itemNode()         {}

func (*ItemConst) stmtNode()       {}
func (*ItemEnum) stmtNode()        {}
func (*ItemExternCrate) stmtNode() {}
func (*ItemFn) stmtNode()          {}
func (*ItemForeignMod) stmtNode()  {}
func (*ItemImpl) stmtNode()        {}
func (*ItemMacro) stmtNode()       {}
func (*ItemMod) stmtNode()         {}
func (*ItemStatic) stmtNode()      {}
func (*ItemStruct) stmtNode()      {}
func (*ItemTrait) stmtNode()       {}
func (*ItemTraitAlias) stmtNode()  {}
func (*ItemType) stmtNode()        {}
func (*ItemUnion) stmtNode()       {}
func (*ItemUse) stmtNode()         {}

// ImplTrait is the Trait for part of an impl header. Bang marks a negative
// impl: impl !Send for T.
type ImplTrait struct {
	Bang *Not
	Path *Path
}

// StaticMutabilityNone is a static without mut.
type StaticMutabilityNone struct{}

func (StaticMutabilityNone) staticMutability() {}

// StaticMutabilityMut returns the mut variant of [StaticMutability].
func StaticMutabilityMut() StaticMutability { return Mut{} }

func staticMutability(on bool) StaticMutability {
	if on {
		return Mut{}
	}

	return StaticMutabilityNone{}
}

// NewItemConst returns a private const ident: ty = expr;.
func NewItemConst(ident Ident, ty Type, expr Expr) *ItemConst {
	return &ItemConst{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Ty:       ty,
		Expr:     expr,
	}
}

// NewItemEnum returns a public enum without variants.
func NewItemEnum(ident Ident) *ItemEnum {
	return &ItemEnum{Vis: Pub{}, Ident: ident, Generics: &Generics{}}
}

// AddVariant returns a copy of e with v appended to its variants.
func (e *ItemEnum) AddVariant(v *Variant) *ItemEnum {
	c := *e
	c.Variants = append(slices.Clip(e.Variants), v)

	return &c
}

// WithVariants returns a copy of e holding exactly variants.
func (e *ItemEnum) WithVariants(variants ...*Variant) *ItemEnum {
	c := *e
	c.Variants = slices.Clone(variants)

	return &c
}

// NewItemExternCrate returns a private extern crate ident;.
func NewItemExternCrate(ident Ident) *ItemExternCrate {
	return &ItemExternCrate{Vis: VisInherited{}, Ident: ident}
}

// WithRename returns a copy of e imported under the name rename.
func (e *ItemExternCrate) WithRename(rename Ident) *ItemExternCrate {
	c := *e
	c.Rename = rename

	return &c
}

// NewItemFn returns a private function.
func NewItemFn(sig *Signature, block *Block) *ItemFn {
	return &ItemFn{Vis: VisInherited{}, Sig: sig, Block: block}
}

// NewItemForeignMod returns an empty extern block for abi.
func NewItemForeignMod(abi *Abi) *ItemForeignMod {
	return &ItemForeignMod{Abi: abi}
}

// AddItem returns a copy of m with item appended.
func (m *ItemForeignMod) AddItem(item ForeignItem) *ItemForeignMod {
	c := *m
	c.Items = append(slices.Clip(m.Items), item)

	return &c
}

// WithItems returns a copy of m holding exactly items.
func (m *ItemForeignMod) WithItems(items ...ForeignItem) *ItemForeignMod {
	c := *m
	c.Items = slices.Clone(items)

	return &c
}

// NewItemImpl returns an empty inherent impl of selfTy.
func NewItemImpl(selfTy Type) *ItemImpl {
	return &ItemImpl{Generics: &Generics{}, SelfTy: selfTy}
}

// WithTrait returns a copy of i implementing the trait at path. A true bang
// makes it a negative impl.
func (i *ItemImpl) WithTrait(bang bool, path *Path) *ItemImpl {
	c := *i
	c.Trait = &ImplTrait{Bang: marker[Not](bang), Path: path}

	return &c
}

// AddItem returns a copy of i with item appended.
func (i *ItemImpl) AddItem(item ImplItem) *ItemImpl {
	c := *i
	c.Items = append(slices.Clip(i.Items), item)

	return &c
}

// WithItems returns a copy of i holding exactly items.
func (i *ItemImpl) WithItems(items ...ImplItem) *ItemImpl {
	c := *i
	c.Items = slices.Clone(items)

	return &c
}

// NewItemMacro returns the named invocation ident! of mac.
func NewItemMacro(ident Ident, mac *Macro) *ItemMacro {
	return &ItemMacro{Ident: ident, Mac: mac}
}

// WithSemi returns a copy of m terminated by ; when on is true.
func (m *ItemMacro) WithSemi(on bool) *ItemMacro {
	c := *m
	c.Semi = marker[Semi](on)

	return &c
}

// NewItemMod returns a private out of line module: mod ident;.
func NewItemMod(ident Ident) *ItemMod {
	return &ItemMod{Vis: VisInherited{}, Ident: ident}
}

// WithContent returns a copy of m defined inline with items. Passing no
// items yields an empty inline module, which differs from mod m;.
func (m *ItemMod) WithContent(items ...Item) *ItemMod {
	c := *m
	c.Content = append(make([]Item, 0, len(items)), items...)

	return &c
}

// NewItemStatic returns a private immutable static.
func NewItemStatic(ident Ident, ty Type, expr Expr) *ItemStatic {
	return &ItemStatic{
		Vis:        VisInherited{},
		Mutability: StaticMutabilityNone{},
		Ident:      ident,
		Ty:         ty,
		Expr:       expr,
	}
}

// WithMutability returns a copy of s that is static mut when on is true.
func (s *ItemStatic) WithMutability(on bool) *ItemStatic {
	c := *s
	c.Mutability = staticMutability(on)

	return &c
}

// NewItemStruct returns a private struct with fields.
func NewItemStruct(ident Ident, fields Fields) *ItemStruct {
	return &ItemStruct{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Fields:   fields,
	}
}

// NewItemTrait returns a private empty trait.
func NewItemTrait(ident Ident) *ItemTrait {
	return &ItemTrait{Vis: VisInherited{}, Ident: ident, Generics: &Generics{}}
}

// WithAuto returns a copy of t that is an auto trait when on is true.
func (t *ItemTrait) WithAuto(on bool) *ItemTrait {
	c := *t
	c.Auto = marker[Auto](on)

	return &c
}

// WithColon returns a copy of t with the supertrait colon when on is true.
func (t *ItemTrait) WithColon(on bool) *ItemTrait {
	c := *t
	c.Colon = marker[Colon](on)

	return &c
}

// WithSupertraits returns a copy of t bounded by supertraits. The colon is
// set whenever supertraits is not empty.
func (t *ItemTrait) WithSupertraits(supertraits ...TypeParamBound) *ItemTrait {
	c := *t
	c.Supertraits = slices.Clone(supertraits)
	if len(supertraits) > 0 {
		c.Colon = &Colon{}
	}

	return &c
}

// AddItem returns a copy of t with item appended.
func (t *ItemTrait) AddItem(item TraitItem) *ItemTrait {
	c := *t
	c.Items = append(slices.Clip(t.Items), item)

	return &c
}

// WithItems returns a copy of t holding exactly items.
func (t *ItemTrait) WithItems(items ...TraitItem) *ItemTrait {
	c := *t
	c.Items = slices.Clone(items)

	return &c
}

// NewItemTraitAlias returns trait ident = bounds;.
func NewItemTraitAlias(
	ident Ident,
	bounds ...TypeParamBound,
) *ItemTraitAlias {
	return &ItemTraitAlias{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Bounds:   slices.Clone(bounds),
	}
}

// NewItemType returns type ident = ty;.
func NewItemType(ident Ident, ty Type) *ItemType {
	return &ItemType{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Ty:       ty,
	}
}

// NewItemUnion returns a private union with fields.
func NewItemUnion(ident Ident, fields *FieldsNamed) *ItemUnion {
	return &ItemUnion{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Fields:   fields,
	}
}

// NewItemUse returns use tree;.
func NewItemUse(tree UseTree) *ItemUse {
	return &ItemUse{Vis: VisInherited{}, Tree: tree}
}

// WithLeading returns a copy of u anchored at the crate root with :: when on
// is true.
func (u *ItemUse) WithLeading(on bool) *ItemUse {
	c := *u
	c.LeadingColon = marker[PathSep](on)

	return &c
}

type (
	// UsePath is ident::tree.
	UsePath struct {
		Ident Ident
		Tree  UseTree
	}

	UseName struct{ Ident Ident }

	// UseRename is ident as rename.
	UseRename struct {
		Ident  Ident
		Rename Ident
	}

	// UseGlob is *.
	UseGlob struct{}

	// UseGroup is {items...}.
	UseGroup struct{ Items []UseTree }
)

func (*UsePath) useTree()   {}
func (*UseName) useTree()   {}
func (*UseRename) useTree() {}
func (*UseGlob) useTree()   {}
func (*UseGroup) useTree()  {}

// NewUsePath returns ident::tree.
func NewUsePath(ident Ident, tree UseTree) *UsePath {
	return &UsePath{Ident: ident, Tree: tree}
}

// NewUseName returns the use tree naming ident.
func NewUseName(ident Ident) *UseName { return &UseName{Ident: ident} }

// NewUseRename returns ident as rename.
func NewUseRename(ident, rename Ident) *UseRename {
	return &UseRename{Ident: ident, Rename: rename}
}

// NewUseGlob returns the glob import *.
func NewUseGlob() *UseGlob { return &UseGlob{} }

// NewUseGroup returns {items...}.
func NewUseGroup(items ...UseTree) *UseGroup {
	return &UseGroup{Items: slices.Clone(items)}
}

type (
	ForeignItemFn struct {
		Attrs []*Attribute
		Vis   Visibility
		Sig   *Signature
	}

	ForeignItemStatic struct {
		Attrs      []*Attribute
		Vis        Visibility
		Mutability StaticMutability
		Ident      Ident
		Ty         Type
	}

	ForeignItemType struct {
		Attrs    []*Attribute
		Vis      Visibility
		Ident    Ident
		Generics *Generics
	}

	ForeignItemMacro struct {
		Attrs []*Attribute
		Mac   *Macro
		Semi  *Semi
	}
)

func (*ForeignItemFn) foreignItem()     {}
func (*ForeignItemStatic) foreignItem() {}
func (*ForeignItemType) foreignItem()   {}
func (*ForeignItemMacro) foreignItem()  {}

// NewForeignItemFn returns a private foreign function declaration.
func NewForeignItemFn(sig *Signature) *ForeignItemFn {
	return &ForeignItemFn{Vis: VisInherited{}, Sig: sig}
}

// NewForeignItemStatic returns a private immutable foreign static.
func NewForeignItemStatic(ident Ident, ty Type) *ForeignItemStatic {
	return &ForeignItemStatic{
		Vis:        VisInherited{},
		Mutability: StaticMutabilityNone{},
		Ident:      ident,
		Ty:         ty,
	}
}

// WithMutability returns a copy of s that is static mut when on is true.
func (s *ForeignItemStatic) WithMutability(on bool) *ForeignItemStatic {
	c := *s
	c.Mutability = staticMutability(on)

	return &c
}

// NewForeignItemType returns a private foreign type ident;.
func NewForeignItemType(ident Ident) *ForeignItemType {
	return &ForeignItemType{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
	}
}

// NewForeignItemMacro returns mac in an extern block.
func NewForeignItemMacro(mac *Macro) *ForeignItemMacro {
	return &ForeignItemMacro{Mac: mac}
}

// WithSemi returns a copy of m terminated by ; when on is true.
func (m *ForeignItemMacro) WithSemi(on bool) *ForeignItemMacro {
	c := *m
	c.Semi = marker[Semi](on)

	return &c
}

type (
	// TraitItemConst is an associated constant with an optional default.
	TraitItemConst struct {
		Attrs    []*Attribute
		Ident    Ident
		Generics *Generics
		Ty       Type
		Default  Expr
	}

	// TraitItemFn is a method declaration. A nil Default ends it with ;.
	TraitItemFn struct {
		Attrs   []*Attribute
		Sig     *Signature
		Default *Block
	}

	// TraitItemType is an associated type with optional bounds and default.
	TraitItemType struct {
		Attrs    []*Attribute
		Ident    Ident
		Generics *Generics
		Colon    *Colon
		Bounds   []TypeParamBound
		Default  Type
	}

	TraitItemMacro struct {
		Attrs []*Attribute
		Mac   *Macro
		Semi  *Semi
	}
)

func (*TraitItemConst) traitItem() {}
func (*TraitItemFn) traitItem()    {}
func (*TraitItemType) traitItem()  {}
func (*TraitItemMacro) traitItem() {}

// NewTraitItemConst returns const ident: ty; without a default.
func NewTraitItemConst(ident Ident, ty Type) *TraitItemConst {
	return &TraitItemConst{Ident: ident, Generics: &Generics{}, Ty: ty}
}

// WithDefault returns a copy of t with the default value expr.
func (t *TraitItemConst) WithDefault(expr Expr) *TraitItemConst {
	c := *t
	c.Default = expr

	return &c
}

// NewTraitItemFn returns a method declaration without a body.
func NewTraitItemFn(sig *Signature) *TraitItemFn {
	return &TraitItemFn{Sig: sig}
}

// WithDefault returns a copy of t with the provided body block.
func (t *TraitItemFn) WithDefault(block *Block) *TraitItemFn {
	c := *t
	c.Default = block

	return &c
}

// NewTraitItemType returns an unbounded associated type ident;.
func NewTraitItemType(ident Ident) *TraitItemType {
	return &TraitItemType{Ident: ident, Generics: &Generics{}}
}

// WithBounds returns a copy of t bounded by bounds, with the colon.
func (t *TraitItemType) WithBounds(bounds ...TypeParamBound) *TraitItemType {
	c := *t
	c.Colon = &Colon{}
	c.Bounds = slices.Clone(bounds)

	return &c
}

// WithDefault returns a copy of t with the default type ty.
func (t *TraitItemType) WithDefault(ty Type) *TraitItemType {
	c := *t
	c.Default = ty

	return &c
}

// NewTraitItemMacro returns mac in a trait body.
func NewTraitItemMacro(mac *Macro) *TraitItemMacro {
	return &TraitItemMacro{Mac: mac}
}

// WithSemi returns a copy of m terminated by ; when on is true.
func (m *TraitItemMacro) WithSemi(on bool) *TraitItemMacro {
	c := *m
	c.Semi = marker[Semi](on)

	return &c
}

type (
	ImplItemConst struct {
		Attrs       []*Attribute
		Vis         Visibility
		Defaultness *Default
		Ident       Ident
		Generics    *Generics
		Ty          Type
		Expr        Expr
	}

	ImplItemFn struct {
		Attrs       []*Attribute
		Vis         Visibility
		Defaultness *Default
		Sig         *Signature
		Block       *Block
	}

	ImplItemType struct {
		Attrs       []*Attribute
		Vis         Visibility
		Defaultness *Default
		Ident       Ident
		Generics    *Generics
		Ty          Type
	}

	ImplItemMacro struct {
		Attrs []*Attribute
		Mac   *Macro
		Semi  *Semi
	}
)

func (*ImplItemConst) implItem() {}
func (*ImplItemFn) implItem()    {}
func (*ImplItemType) implItem()  {}
func (*ImplItemMacro) implItem() {}

// NewImplItemConst returns a private const ident: ty = expr;.
func NewImplItemConst(ident Ident, ty Type, expr Expr) *ImplItemConst {
	return &ImplItemConst{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Ty:       ty,
		Expr:     expr,
	}
}

// NewImplItemFn returns a private method with a body.
func NewImplItemFn(sig *Signature, block *Block) *ImplItemFn {
	return &ImplItemFn{Vis: VisInherited{}, Sig: sig, Block: block}
}

// NewImplItemType returns a private type ident = ty;.
func NewImplItemType(ident Ident, ty Type) *ImplItemType {
	return &ImplItemType{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Ty:       ty,
	}
}

// NewImplItemMacro returns mac in an impl body.
func NewImplItemMacro(mac *Macro) *ImplItemMacro {
	return &ImplItemMacro{Mac: mac}
}

// WithSemi returns a copy of m terminated by ; when on is true.
func (m *ImplItemMacro) WithSemi(on bool) *ImplItemMacro {
	c := *m
	c.Semi = marker[Semi](on)

	return &c
}

// Signature is the header of a function: const async unsafe extern "C" fn
// ident<generics>(inputs...) -> Output.
type Signature struct {
	Constness *Const
	Asyncness *Async
	Unsafety  *Unsafe
	Abi       *Abi
	Ident     Ident
	Generics  *Generics
	Inputs    []FnArg
	Variadic  *Variadic
	Output    ReturnType
}

// NewSignature returns fn ident(inputs...) with no qualifiers and no return
// type.
func NewSignature(ident Ident, inputs ...FnArg) *Signature {
	return &Signature{
		Ident:    ident,
		Generics: &Generics{},
		Inputs:   slices.Clone(inputs),
		Output:   ReturnTypeDefault{},
	}
}

// WithConstness returns a copy of s marked const when on is true.
func (s *Signature) WithConstness(on bool) *Signature {
	c := *s
	c.Constness = marker[Const](on)

	return &c
}

// WithAsyncness returns a copy of s marked async when on is true.
func (s *Signature) WithAsyncness(on bool) *Signature {
	c := *s
	c.Asyncness = marker[Async](on)

	return &c
}

// WithAbi returns a copy of s with the extern ABI abi.
func (s *Signature) WithAbi(abi *Abi) *Signature {
	c := *s
	c.Abi = abi

	return &c
}

// WithVariadic returns a copy of s ending in the C variadic v.
func (s *Signature) WithVariadic(v *Variadic) *Signature {
	c := *s
	c.Variadic = v

	return &c
}

// Receiver is the self parameter of a method. Reference is nil for a
// by-value receiver.
type Receiver struct {
	Attrs      []*Attribute
	Reference  *ReceiverReference
	Mutability *Mut
	Colon      *Colon
	Ty         Type
}

// ReceiverReference is the & of a by-reference receiver with an optional
// lifetime.
type ReceiverReference struct {
	Lifetime *Lifetime
}

func (*Receiver) fnArg() {}

// NewReceiver returns the immutable by-value receiver self: Self.
func NewReceiver() *Receiver {
	return &Receiver{Colon: &Colon{}, Ty: NewTypePath("Self")}
}

// WithReference returns a copy of r taken by reference without a lifetime
// when on is true, and by value otherwise.
func (r *Receiver) WithReference(on bool) *Receiver {
	c := *r
	c.Reference = marker[ReceiverReference](on)

	return &c
}

// WithLifetime returns a copy of r taken by reference for l. It replaces any
// reference set before.
func (r *Receiver) WithLifetime(l Lifetime) *Receiver {
	c := *r
	c.Reference = &ReceiverReference{Lifetime: &l}

	return &c
}

// WithTy returns a copy of r with the explicit type ty.
func (r *Receiver) WithTy(ty Type) *Receiver {
	c := *r
	c.Colon = &Colon{}
	c.Ty = ty

	return &c
}

// Variadic is the trailing ... of a C variadic function, optionally bound to
// a pattern.
type Variadic struct {
	Attrs []*Attribute
	Pat   Pat
	Comma *Comma
}

// NewVariadic returns an unnamed C variadic parameter.
func NewVariadic() *Variadic { return &Variadic{} }

// WithPat returns a copy of v binding the variadic arguments to pat.
func (v *Variadic) WithPat(pat Pat) *Variadic {
	c := *v
	c.Pat = pat

	return &c
}
