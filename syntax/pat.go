package syntax

import "slices"

// Pattern variants shared with expressions.
type (
	PatConst = ExprConst
	PatLit   = ExprLit
	PatMacro = ExprMacro
	PatPath  = ExprPath
	PatRange = ExprRange
)

type (
	// PatIdent binds a name: ref mut x @ subpat.
	PatIdent struct {
		Attrs      []*Attribute
		ByRef      *Ref
		Mutability *Mut
		Ident      Ident
		Subpat     Pat
	}

	// PatOr matches any of its cases: A | B.
	PatOr struct {
		Attrs       []*Attribute
		LeadingVert *Or
		Cases       []Pat
	}

	PatParen struct {
		Attrs []*Attribute
		Pat   Pat
	}

	// PatReference matches through a reference: &mut pat.
	PatReference struct {
		Attrs      []*Attribute
		Mutability *Mut
		Pat        Pat
	}

	// PatRest is .. inside a slice or tuple pattern.
	PatRest struct {
		Attrs []*Attribute
	}

	PatSlice struct {
		Attrs []*Attribute
		Elems []Pat
	}

	// PatStruct matches a braced struct: Point { x, y: 0, .. }.
	PatStruct struct {
		Attrs  []*Attribute
		QSelf  *QSelf
		Path   *Path
		Fields []*FieldPat
		Rest   *PatRest
	}

	PatTuple struct {
		Attrs []*Attribute
		Elems []Pat
	}

	// PatTupleStruct matches a tuple struct or variant: Some(x).
	PatTupleStruct struct {
		Attrs []*Attribute
		QSelf *QSelf
		Path  *Path
		Elems []Pat
	}

	// PatType is a pattern with a type ascription, as in a function
	// parameter: x: u32.
	PatType struct {
		Attrs []*Attribute
		Pat   Pat
		Ty    Type
	}

	// PatWild is the wildcard _.
	PatWild struct {
		Attrs []*Attribute
	}

	// FieldPat is one field of a struct pattern. Without the colon it is
	// the shorthand form that names and binds the field at once.
	FieldPat struct {
		Attrs  []*Attribute
		Member Member
		Colon  *Colon
		Pat    Pat
	}
)

func (*PatIdent) patNode()       {}
func (*PatOr) patNode()          {}
func (*PatParen) patNode()       {}
func (*PatReference) patNode()   {}
func (*PatRest) patNode()        {}
func (*PatSlice) patNode()       {}
func (*PatStruct) patNode()      {}
func (*PatTuple) patNode()       {}
func (*PatTupleStruct) patNode() {}
func (*PatType) patNode()        {}
func (*PatWild) patNode()        {}

func (*PatType) fnArg() {}

// NewPatIdent returns a by-value immutable binding of ident.
func NewPatIdent(ident Ident) *PatIdent { return &PatIdent{Ident: ident} }

// WithByRef returns a copy of p that binds by reference when on is true.
func (p *PatIdent) WithByRef(on bool) *PatIdent {
	c := *p
	c.ByRef = marker[Ref](on)

	return &c
}

// WithSubpat returns a copy of p that also matches sub: ident @ sub.
func (p *PatIdent) WithSubpat(sub Pat) *PatIdent {
	c := *p
	c.Subpat = sub

	return &c
}

// NewPatOr returns cases joined with |.
func NewPatOr(cases ...Pat) *PatOr {
	return &PatOr{Cases: slices.Clone(cases)}
}

// NewPatParen returns (pat).
func NewPatParen(pat Pat) *PatParen { return &PatParen{Pat: pat} }

// NewPatReference returns the shared reference pattern &pat.
func NewPatReference(pat Pat) *PatReference { return &PatReference{Pat: pat} }

// NewPatRest returns the rest pattern, written as two dots.
func NewPatRest() *PatRest { return &PatRest{} }

// NewPatWild returns the wildcard pattern _.
func NewPatWild() *PatWild { return &PatWild{} }

// NewPatSlice returns [elems...].
func NewPatSlice(elems ...Pat) *PatSlice {
	return &PatSlice{Elems: slices.Clone(elems)}
}

// NewPatStruct returns path { fields... } without a rest pattern.
func NewPatStruct[P PathLike](path P, fields ...*FieldPat) *PatStruct {
	return &PatStruct{Path: IntoPath(path), Fields: slices.Clone(fields)}
}

// WithRest returns a copy of p ending in rest.
func (p *PatStruct) WithRest(rest *PatRest) *PatStruct {
	c := *p
	c.Rest = rest

	return &c
}

// NewPatTuple returns (elems...). One element keeps its trailing comma.
func NewPatTuple(elems ...Pat) *PatTuple {
	return &PatTuple{Elems: slices.Clone(elems)}
}

// NewPatTupleStruct returns path(elems...).
func NewPatTupleStruct[P PathLike](path P, elems ...Pat) *PatTupleStruct {
	return &PatTupleStruct{Path: IntoPath(path), Elems: slices.Clone(elems)}
}

// NewPatType returns pat: ty.
func NewPatType(pat Pat, ty Type) *PatType {
	return &PatType{Pat: pat, Ty: ty}
}

// NewFieldPat returns the shorthand field pattern for member. Use
// [FieldPat.WithColon] for member: pat.
func NewFieldPat(member Member, pat Pat) *FieldPat {
	return &FieldPat{Member: member, Pat: pat}
}

// WithColon returns a copy of f in the member: pat form when on is true.
func (f *FieldPat) WithColon(on bool) *FieldPat {
	c := *f
	c.Colon = marker[Colon](on)

	return &c
}
