package repl

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/synbuild/script"
)

// exprLangBuiltins defines signatures for expr-lang's builtin functions.
// Source: https://expr-lang.org/docs/language-definition
//
//nolint:gochecknoglobals
var exprLangBuiltins = map[string]struct {
	signature string
	params    []string
}{
	"len":    {"len(v)", []string{"v"}},
	"all":    {"all(array, predicate)", []string{"array", "predicate"}},
	"any":    {"any(array, predicate)", []string{"array", "predicate"}},
	"one":    {"one(array, predicate)", []string{"array", "predicate"}},
	"none":   {"none(array, predicate)", []string{"array", "predicate"}},
	"map":    {"map(array, mapper)", []string{"array", "mapper"}},
	"filter": {"filter(array, predicate)", []string{"array", "predicate"}},
	"find":   {"find(array, predicate)", []string{"array", "predicate"}},
	"count":  {"count(array, predicate)", []string{"array", "predicate"}},
	"concat": {"concat(array...)", []string{"...array"}},
	"join":   {"join(array, separator)", []string{"array", "separator"}},
	"split": {
		"split(string, separator)",
		[]string{"string", "separator"},
	},
	"replace": {
		"replace(string, old, new)",
		[]string{"string", "old", "new"},
	},
	"trim":   {"trim(string)", []string{"string"}},
	"upper":  {"upper(string)", []string{"string"}},
	"lower":  {"lower(string)", []string{"string"}},
	"int":    {"int(v)", []string{"v"}},
	"string": {"string(v)", []string{"v"}},
	"type":   {"type(v)", []string{"v"}},
}

// signatureHintStyle styles for parameter hints.
//
//nolint:gochecknoglobals
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
	signatureSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// functionCall represents a detected function call in the input.
type functionCall struct {
	name     string // function name; methods keep their leading dot
	argIndex int    // current argument index (0-based)
	inCall   bool   // true if cursor is inside parameter list
}

// detectFunctionCall analyzes the input to determine if the cursor is inside
// a function call's parameter list. It returns the function name, current
// argument index, and whether we're inside a call.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	openParenPos := openParen(input, cursor)
	if openParenPos == -1 {
		return functionCall{}
	}

	nameStart := openParenPos

	for nameStart > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:nameStart])
		if r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') &&
			(r < '0' || r > '9') {
			if r == '.' {
				nameStart -= size
			}

			break
		}

		nameStart -= size
	}

	funcName := input[nameStart:openParenPos]
	if strings.TrimPrefix(funcName, ".") == "" {
		return functionCall{}
	}

	// Count arguments by counting commas at depth 0 in the parameter list,
	// skipping string literals.
	argIndex, depth := 0, 0
	inString := false

	for _, ch := range input[openParenPos+1 : cursor] {
		switch {
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '(' || ch == '[':
			depth++
		case ch == ')' || ch == ']':
			depth--
		case ch == ',' && depth == 0:
			argIndex++
		}
	}

	return functionCall{
		name:     funcName,
		argIndex: argIndex,
		inCall:   true,
	}
}

// openParen returns the byte offset of the unclosed '(' enclosing cursor, or
// -1 if there is none.
func openParen(input string, cursor int) int {
	depth := 0

	for i := cursor - 1; i >= 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				return i
			}

			depth--
		}
	}

	return -1
}

// getSignature retrieves the signature of a script function or, for a name
// with a leading dot, a builder method. Returns an empty string if the name
// is unknown.
func getSignature(funcName string) (signature string, params []string) {
	if name, ok := strings.CutPrefix(funcName, "."); ok {
		if t, ok := methodTypes()[name]; ok {
			return funcSignature(name, t)
		}

		return "", nil
	}

	if builtin, ok := exprLangBuiltins[funcName]; ok {
		return builtin.signature, builtin.params
	}

	if fn, ok := script.Func(funcName); ok {
		return funcSignature(funcName, reflect.TypeOf(fn))
	}

	if v, ok := envValue(funcName); ok {
		if t := reflect.TypeOf(v); t.Kind() == reflect.Func {
			return funcSignature(funcName, t)
		}
	}

	return "", nil
}

// funcSignature formats name with the parameter types of t.
func funcSignature(name string, t reflect.Type) (string, []string) {
	params := make([]string, 0, t.NumIn())

	for i := range t.NumIn() {
		if t.IsVariadic() && i == t.NumIn()-1 {
			params = append(params, "..."+formatTypeName(t.In(i).Elem()))
		} else {
			params = append(params, formatTypeName(t.In(i)))
		}
	}

	return name + "(" + strings.Join(params, ", ") + ")", params
}

// formatTypeName converts a reflect.Type to a readable parameter name.
// Named types keep their name (Ident, Type, Variant); others are described
// by kind.
func formatTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return formatTypeName(t.Elem())
	}

	if t.Name() != "" && t.PkgPath() != "" {
		return t.Name()
	}

	switch t.Kind() {
	case reflect.Func:
		return "func"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64:
		return "uint"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Bool:
		return "bool"
	case reflect.Slice:
		return "[]" + formatTypeName(t.Elem())
	case reflect.Interface:
		return "any"
	default:
		return "arg"
	}
}

// renderSignatureHint renders the function signature with the current
// parameter highlighted.
func renderSignatureHint(
	signature string,
	params []string,
	currentArgIdx int,
) string {
	if signature == "" {
		return ""
	}

	openParen := strings.Index(signature, "(")
	if openParen == -1 {
		return signatureStyle.Render(signature)
	}

	funcName := signature[:openParen]

	if len(params) == 0 {
		return signatureNameStyle.Render(funcName) +
			signatureStyle.Render("()")
	}

	var b strings.Builder
	b.WriteString(signatureNameStyle.Render(funcName))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureSeparatorStyle.Render(", "))
		}

		// For variadic parameters, highlight if we're at or beyond that index
		isVariadic := strings.HasPrefix(param, "...")

		if (isVariadic && currentArgIdx >= i) ||
			(!isVariadic && currentArgIdx == i) {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
