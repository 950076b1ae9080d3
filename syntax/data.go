package syntax

import "slices"

// Variant is one variant of an enum: Ident(fields) = discriminant.
type Variant struct {
	Attrs        []*Attribute
	Ident        Ident
	Fields       Fields
	Discriminant Expr
}

// NewVariant returns a unit variant.
func NewVariant(ident Ident) *Variant {
	return &Variant{Ident: ident, Fields: FieldsUnit{}}
}

// WithFields returns a copy of v holding fields.
func (v *Variant) WithFields(fields Fields) *Variant {
	c := *v
	c.Fields = fields

	return &c
}

// WithDiscriminant returns a copy of v with the explicit discriminant d.
func (v *Variant) WithDiscriminant(d Expr) *Variant {
	c := *v
	c.Discriminant = d

	return &c
}

type (
	// FieldsNamed is a braced field list: { x: u8, y: u8 }.
	FieldsNamed struct{ Named []*Field }

	// FieldsUnnamed is a parenthesized field list: (u8, u8).
	FieldsUnnamed struct{ Unnamed []*Field }

	// FieldsUnit is the absence of fields.
	FieldsUnit struct{}
)

func (*FieldsNamed) fields()   {}
func (*FieldsUnnamed) fields() {}
func (FieldsUnit) fields()     {}

// NewFieldsNamed returns { named... }.
func NewFieldsNamed(named ...*Field) *FieldsNamed {
	return &FieldsNamed{Named: slices.Clone(named)}
}

// NewFieldsUnnamed returns (unnamed...).
func NewFieldsUnnamed(unnamed ...*Field) *FieldsUnnamed {
	return &FieldsUnnamed{Unnamed: slices.Clone(unnamed)}
}

// Field is a field of a struct, union or variant. Ident is empty for a
// positional field.
type Field struct {
	Attrs      []*Attribute
	Vis        Visibility
	Mutability FieldMutability
	Ident      Ident
	Colon      *Colon
	Ty         Type
}

// NewField returns an unnamed private field of type ty.
func NewField(ty Type) *Field {
	return &Field{
		Vis:        VisInherited{},
		Mutability: FieldMutabilityNone{},
		Ty:         ty,
	}
}

// WithIdent returns a copy of f named ident. An empty ident makes the field
// positional again.
func (f *Field) WithIdent(ident Ident) *Field {
	c := *f
	c.Ident = ident
	c.Colon = marker[Colon](ident != "")

	return &c
}
