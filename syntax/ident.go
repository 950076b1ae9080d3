package syntax

import "strings"

// Ident is an identifier. The empty Ident means "absent" in fields where an
// identifier is optional.
type Ident string

// String returns the identifier text.
func (id Ident) String() string { return string(id) }

func (Ident) member() {}

// Lifetime is a lifetime or loop label such as 'a. Ident holds the name
// without the leading apostrophe.
type Lifetime struct {
	Ident Ident
}

// NewLifetime returns the lifetime named name. A leading apostrophe is
// optional.
func NewLifetime(name string) Lifetime {
	return Lifetime{Ident: Ident(strings.TrimPrefix(name, "'"))}
}

// String returns the lifetime with its apostrophe.
func (l Lifetime) String() string { return "'" + string(l.Ident) }

func (Lifetime) typeParamBound()  {}
func (Lifetime) genericArgument() {}

// Index is the position of an unnamed field, as in `tuple.0`.
type Index uint32

// NewIndex returns the positional member i.
func NewIndex(i uint32) Index { return Index(i) }

func (Index) member() {}
