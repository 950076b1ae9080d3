package syntax

import "slices"

// File is a complete source file: an optional shebang, inner attributes and
// items.
type File struct {
	Shebang string
	Attrs   []*Attribute
	Items   []Item
}

// NewFile returns a file holding items.
func NewFile(items ...Item) *File { return &File{Items: slices.Clone(items)} }

// WithShebang returns a copy of f starting with the line shebang, which
// includes its #! prefix.
func (f *File) WithShebang(shebang string) *File {
	c := *f
	c.Shebang = shebang

	return &c
}

// AddItem returns a copy of f with item appended.
func (f *File) AddItem(item Item) *File {
	c := *f
	c.Items = append(slices.Clip(f.Items), item)

	return &c
}
