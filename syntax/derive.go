package syntax

import "slices"

// DeriveInput is the input of a derive macro: a struct, enum or union with
// its attributes, visibility and generics.
type DeriveInput struct {
	Attrs    []*Attribute
	Vis      Visibility
	Ident    Ident
	Generics *Generics
	Data     Data
}

// NewDeriveInput returns a private input named ident without generics.
func NewDeriveInput(ident Ident, data Data) *DeriveInput {
	return &DeriveInput{
		Vis:      VisInherited{},
		Ident:    ident,
		Generics: &Generics{},
		Data:     data,
	}
}

type (
	DataStruct struct{ Fields Fields }
	DataEnum   struct{ Variants []*Variant }

	// DataUnion holds the fields of a union, which are always named.
	DataUnion struct{ Fields *FieldsNamed }
)

func (*DataStruct) data() {}
func (*DataEnum) data()   {}
func (*DataUnion) data()  {}

// NewDataStruct returns the data of a struct with fields.
func NewDataStruct(fields Fields) *DataStruct { return &DataStruct{Fields: fields} }

// NewDataEnum returns the data of an enum with variants.
func NewDataEnum(variants ...*Variant) *DataEnum {
	return &DataEnum{Variants: slices.Clone(variants)}
}

// NewDataUnion returns the data of a union with fields.
func NewDataUnion(fields *FieldsNamed) *DataUnion { return &DataUnion{Fields: fields} }
