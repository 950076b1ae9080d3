package printer

import (
	"reflect"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/synbuild/syntax"
)

// KindKey is the map key under which [Tree] records a node's type name.
const KindKey = "kind"

// Tree returns a structural dump of node suitable for YAML or JSON encoding.
//
// Each node becomes a [yaml.MapSlice] whose first entry maps [KindKey] to the
// node's type name, followed by its non-zero fields in declaration order.
// Identifiers, lifetimes and verbatim token streams become strings, lists
// become slices and absent fields are omitted.
func Tree(node any) any {
	return tree(reflect.ValueOf(node))
}

func tree(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	switch x := v.Interface().(type) {
	case syntax.Ident:
		return string(x)
	case syntax.Lifetime:
		return x.String()
	case syntax.TokenStream:
		return string(x)
	case syntax.LitChar:
		return yaml.MapSlice{
			{Key: KindKey, Value: "LitChar"},
			{Key: "Value", Value: string(x.Value)},
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return tree(v.Elem())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes())
		}

		out := make([]any, v.Len())
		for i := range out {
			out[i] = tree(v.Index(i))
		}

		return out
	case reflect.Struct:
		t := v.Type()
		m := yaml.MapSlice{{Key: KindKey, Value: t.Name()}}

		for i := range t.NumField() {
			f, fv := t.Field(i), v.Field(i)
			if !f.IsExported() || fv.IsZero() {
				continue
			}

			m = append(m, yaml.MapItem{Key: f.Name, Value: tree(fv)})
		}

		return m

	default:
		return v.Interface()
	}
}
