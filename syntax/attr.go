package syntax

// Attribute is #[meta] (outer) or #![meta] (inner).
type Attribute struct {
	Style AttrStyle
	Meta  Meta
}

// AttrOuter is the style of an attribute applying to the item after it.
type AttrOuter struct{}

func (AttrOuter) attrStyle() {}

// AttrStyleInner returns the style of an attribute applying to the
// enclosing item.
func AttrStyleInner() AttrStyle { return Not{} }

// NewAttribute returns an outer attribute.
func NewAttribute(meta Meta) *Attribute {
	return &Attribute{Style: AttrOuter{}, Meta: meta}
}

// WithStyle returns a copy of a that is inner when inside is true and outer
// otherwise.
func (a *Attribute) WithStyle(inside bool) *Attribute {
	c := *a
	if inside {
		c.Style = Not{}
	} else {
		c.Style = AttrOuter{}
	}

	return &c
}

// MetaList is a path followed by delimited tokens: derive(Copy, Clone).
type MetaList struct {
	Path      *Path
	Delimiter MacroDelimiter
	Tokens    TokenStream
}

// MetaNameValue is a path bound to a value: path = "value".
type MetaNameValue struct {
	Path  *Path
	Value Expr
}

func (*MetaList) meta()      {}
func (*MetaNameValue) meta() {}

// NewMetaList returns path delimited by delimiter around tokens.
func NewMetaList[P PathLike](
	path P,
	delimiter MacroDelimiter,
	tokens TokenStream,
) *MetaList {
	return &MetaList{
		Path:      IntoPath(path),
		Delimiter: delimiter,
		Tokens:    tokens,
	}
}

// NewMetaNameValue returns path = value.
func NewMetaNameValue[P PathLike](path P, value Expr) *MetaNameValue {
	return &MetaNameValue{Path: IntoPath(path), Value: value}
}
