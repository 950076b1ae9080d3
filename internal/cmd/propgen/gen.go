package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/synbuild/pkg"
)

// Table is the decoded property file.
type Table struct {
	Props []Prop `yaml:"props"`
}

// Prop is one cross-cutting concern: the field it sets and the node types
// that have it.
type Prop struct {
	Name  string   `yaml:"name"`
	Field string   `yaml:"field"`
	Types []string `yaml:"types"`
}

const header = `// Code generated by propgen. DO NOT EDIT.

package %s

import "slices"
`

// methods maps each property name to the modifiers emitted per node type.
// The template data is {Type, Field}.
var methods = map[string]string{
	"attrs": `
// AddAttr returns a copy of n with attr appended to its attributes.
func (n *{{.Type}}) AddAttr(attr *Attribute) *{{.Type}} {
	c := *n
	c.{{.Field}} = append(slices.Clip(n.{{.Field}}), attr)

	return &c
}

// WithAttrs returns a copy of n whose attributes are exactly attrs.
func (n *{{.Type}}) WithAttrs(attrs ...*Attribute) *{{.Type}} {
	c := *n
	c.{{.Field}} = slices.Clone(attrs)

	return &c
}
`,
	"vis": `
// WithVis returns a copy of n with visibility vis.
func (n *{{.Type}}) WithVis(vis Visibility) *{{.Type}} {
	c := *n
	c.{{.Field}} = vis

	return &c
}
`,
	"mutability": `
// WithMutability returns a copy of n that is mut when on is true.
func (n *{{.Type}}) WithMutability(on bool) *{{.Type}} {
	c := *n
	c.{{.Field}} = marker[Mut](on)

	return &c
}
`,
	"qself": `
// WithQSelf returns a copy of n whose path is qualified by q.
func (n *{{.Type}}) WithQSelf(q *QSelf) *{{.Type}} {
	c := *n
	c.{{.Field}} = q

	return &c
}
`,
	"label": `
// WithLabel returns a copy of n labeled l.
func (n *{{.Type}}) WithLabel(l *Label) *{{.Type}} {
	c := *n
	c.{{.Field}} = l

	return &c
}
`,
	"output": `
// WithOutput returns a copy of n with the explicit return type ty.
func (n *{{.Type}}) WithOutput(ty Type) *{{.Type}} {
	c := *n
	c.{{.Field}} = &ReturnTypeExplicit{Ty: ty}

	return &c
}
`,
	"unsafety": `
// WithUnsafety returns a copy of n that is unsafe when on is true.
func (n *{{.Type}}) WithUnsafety(on bool) *{{.Type}} {
	c := *n
	c.{{.Field}} = marker[Unsafe](on)

	return &c
}
`,
	"defaultness": `
// WithDefaultness returns a copy of n marked default when on is true.
func (n *{{.Type}}) WithDefaultness(on bool) *{{.Type}} {
	c := *n
	c.{{.Field}} = marker[Default](on)

	return &c
}
`,
	"generics": `
// WithGenerics returns a copy of n with generic parameters g.
func (n *{{.Type}}) WithGenerics(g *Generics) *{{.Type}} {
	c := *n
	c.{{.Field}} = g

	return &c
}
`,
}

func load(path string) (*Table, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	var t Table

	err = yaml.Unmarshal(buf, &t)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// generate renders table as gofmt'd source for package name.
func generate(name string, table *Table) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, header, name)

	for _, p := range table.Props {
		text, ok := methods[p.Name]
		if !ok {
			return nil, pkg.ErrUnknownProp.Wrap(fmt.Errorf("%q", p.Name))
		}

		tmpl, err := template.New(p.Name).Parse(text)
		if err != nil {
			return nil, err
		}

		for _, typ := range p.Types {
			err = tmpl.Execute(&buf, struct{ Type, Field string }{typ, p.Field})
			if err != nil {
				return nil, err
			}
		}
	}

	return format.Source(buf.Bytes())
}
