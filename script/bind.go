package script

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/syntax"
)

//nolint:gochecknoglobals
var (
	pathType        = reflect.TypeFor[*syntax.Path]()
	lifetimeType    = reflect.TypeFor[syntax.Lifetime]()
	identType       = reflect.TypeFor[syntax.Ident]()
	indexType       = reflect.TypeFor[syntax.Index]()
	tokenStreamType = reflect.TypeFor[syntax.TokenStream]()
	litType         = reflect.TypeFor[syntax.Lit]()
)

// bind adapts fn so that it accepts the loosely typed values a script
// produces. Arguments are converted to fn's parameter types:
//
//   - a string becomes a path, a lifetime (when it starts with '), an
//     identifier, a verbatim token stream or a string literal, whichever the
//     parameter accepts first;
//   - an integer becomes any integer kind, a field index or an integer
//     literal;
//   - a list becomes a slice, and a list in the variadic position is spread;
//   - nil becomes the zero value of a nillable parameter.
func bind(name string, fn any) func(args ...any) (any, error) {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()

	return func(args ...any) (any, error) {
		in, err := bindArgs(ft, args)
		if err != nil {
			return nil, pkg.ErrBindArguments.Wrap(err).
				With(slog.String("func", name))
		}

		out := fv.Call(in)
		if len(out) == 0 {
			return nil, nil
		}

		return out[0].Interface(), nil
	}
}

func bindArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--

		// A single list in the variadic position supplies all of its elements.
		if len(args) == fixed+1 {
			if list, ok := args[fixed].([]any); ok {
				args = append(args[:fixed:fixed], list...)
			}
		}
	}

	if len(args) < fixed || (!ft.IsVariadic() && len(args) > fixed) {
		return nil, fmt.Errorf("want %s arguments, got %d", arity(ft), len(args))
	}

	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		t := paramType(ft, fixed, i)

		v, err := convert(arg, t)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}

		in[i] = v
	}

	return in, nil
}

func paramType(ft reflect.Type, fixed, i int) reflect.Type {
	if i < fixed {
		return ft.In(i)
	}

	return ft.In(fixed).Elem()
}

func arity(ft reflect.Type) string {
	if ft.IsVariadic() {
		return fmt.Sprintf("at least %d", ft.NumIn()-1)
	}

	return fmt.Sprint(ft.NumIn())
}

func convert(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
			reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not a %s", t)
		}
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	switch v.Kind() {
	case reflect.String:
		return fromString(v.String(), t)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt(v.Int(), t)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		return fromInt(int64(v.Uint()), t) //nolint:gosec
	case reflect.Float32, reflect.Float64:
		return fromFloat(v.Float(), t)
	case reflect.Bool:
		if t.Kind() == reflect.Interface && litType.Implements(t) {
			return reflect.ValueOf(syntax.LitOf(v.Bool())), nil
		}
	case reflect.Slice:
		if t.Kind() == reflect.Slice {
			return fromSlice(v, t)
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), t)
}

func fromString(s string, t reflect.Type) (reflect.Value, error) {
	switch {
	case t == pathType:
		return reflect.ValueOf(syntax.IntoPath(s)), nil

	case t == lifetimeType:
		return reflect.ValueOf(syntax.NewLifetime(s)), nil

	case t.Kind() == reflect.String:
		return reflect.ValueOf(s).Convert(t), nil

	case t.Kind() == reflect.Int32 && utf8.RuneCountInString(s) == 1:
		r, _ := utf8.DecodeRuneInString(s)

		return reflect.ValueOf(r).Convert(t), nil

	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		return reflect.ValueOf([]byte(s)).Convert(t), nil

	case t.Kind() == reflect.Interface:
		if strings.HasPrefix(s, "'") && lifetimeType.Implements(t) {
			return reflect.ValueOf(syntax.NewLifetime(s)), nil
		}

		for _, c := range []reflect.Type{identType, tokenStreamType} {
			if c.Implements(t) {
				return reflect.ValueOf(s).Convert(c), nil
			}
		}

		if litType.Implements(t) || t == litType {
			return reflect.ValueOf(syntax.LitOf(s)), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use string %q as %s", s, t)
}

func fromInt(n int64, t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if reflect.Zero(t).OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, t)
		}

		return reflect.ValueOf(n).Convert(t), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		if n < 0 || reflect.Zero(t).OverflowUint(uint64(n)) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, t)
		}

		return reflect.ValueOf(n).Convert(t), nil

	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(float64(n)).Convert(t), nil

	case reflect.Interface:
		if indexType.Implements(t) && n >= 0 {
			return reflect.ValueOf(syntax.Index(n)), nil //nolint:gosec
		}

		if litType.Implements(t) || t == litType {
			return reflect.ValueOf(syntax.LitOf(n)), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use integer %d as %s", n, t)
}

func fromFloat(f float64, t reflect.Type) (reflect.Value, error) {
	switch {
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		return reflect.ValueOf(f).Convert(t), nil

	case t.Kind() == reflect.Interface && (litType.Implements(t) || t == litType):
		if !finite(f) {
			return reflect.Value{}, fmt.Errorf("float %g has no literal form", f)
		}

		return reflect.ValueOf(syntax.LitOf(f)), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use float %g as %s", f, t)
}

func fromSlice(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	out := reflect.MakeSlice(t, v.Len(), v.Len())

	for i := range v.Len() {
		e, err := convert(v.Index(i).Interface(), t.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}

		out.Index(i).Set(e)
	}

	return out, nil
}

// finite reports whether f can be written as a float literal.
func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
