package syntax

import "slices"

// VisInherited is the absence of a visibility keyword.
type VisInherited struct{}

// VisRestricted is pub(crate), pub(self), pub(super) or pub(in path).
type VisRestricted struct {
	In   *In
	Path *Path
}

func (VisInherited) visibility()   {}
func (*VisRestricted) visibility() {}

// VisibilityPublic returns the pub visibility.
func VisibilityPublic() Visibility { return Pub{} }

// RestrictedCrateIdents are the path names written without in inside
// pub(...).
var RestrictedCrateIdents = []Ident{"self", "super", "crate"}

// NewVisRestricted returns visibility restricted to path. The in keyword is
// present unless path is exactly one of [RestrictedCrateIdents].
func NewVisRestricted[P PathLike](path P) *VisRestricted {
	p := IntoPath(path)
	ident, single := p.GetIdent()
	reserved := single && slices.Contains(RestrictedCrateIdents, ident)

	return &VisRestricted{In: marker[In](!reserved), Path: p}
}

// FieldMutabilityNone is the only field mutability the language accepts.
type FieldMutabilityNone struct{}

func (FieldMutabilityNone) fieldMutability() {}
