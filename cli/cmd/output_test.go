package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/synbuild/pkg"
	"github.com/ardnew/synbuild/syntax"
)

// TestOutput_Write verifies each output format.
func TestOutput_Write(t *testing.T) {
	t.Parallel()

	variant := syntax.NewVariant("B")

	tests := []struct {
		name   string
		output Output
		node   any
		check  func(t *testing.T, got string)
	}{
		{
			name:   "rust",
			output: Output{Format: FormatRust, Indent: 4},
			node:   ExampleEnum(),
			check: func(t *testing.T, got string) {
				t.Helper()
				assert.Equal(t,
					"pub enum my_enum { A ( A , B ) , B , C { other : A , one : B } }\n", got)
			},
		},
		{
			name:   "rust_pretty",
			output: Output{Format: FormatRust, Pretty: true, Indent: 2},
			node:   ExampleEnum(),
			check: func(t *testing.T, got string) {
				t.Helper()
				assert.Equal(t, "pub enum my_enum {\n  A ( A , B ) ,\n  B ,\n"+
					"  C {\n    other : A ,\n    one : B\n  }\n}\n", got)
			},
		},
		{
			name:   "string",
			output: Output{Format: FormatYAML},
			node:   "struct Unit ;",
			check: func(t *testing.T, got string) {
				t.Helper()
				assert.Equal(t, "struct Unit ;\n", got)
			},
		},
		{
			name:   "yaml",
			output: Output{Format: FormatYAML, Indent: 2},
			node:   variant,
			check: func(t *testing.T, got string) {
				t.Helper()
				assert.YAMLEq(t, "kind: Variant\nIdent: B\nFields:\n  kind: FieldsUnit\n", got)
				assert.True(t, strings.HasPrefix(got, "kind: Variant"))
			},
		},
		{
			name:   "json",
			output: Output{Format: FormatJSON, Indent: 2},
			node:   variant,
			check: func(t *testing.T, got string) {
				t.Helper()
				assert.JSONEq(t, `{"kind":"Variant","Ident":"B","Fields":{"kind":"FieldsUnit"}}`, got)
				assert.True(t, strings.HasPrefix(got, "{\n  \"kind\": \"Variant\""))
				assert.True(t, strings.HasSuffix(got, "}\n"))
			},
		},
		{
			name:   "json_compact",
			output: Output{Format: FormatJSON},
			node:   variant,
			check: func(t *testing.T, got string) {
				t.Helper()
				assert.Equal(t,
					`{"kind":"Variant","Ident":"B","Fields":{"kind":"FieldsUnit"}}`+"\n", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, tt.output.Write(context.Background(), &buf, tt.node))
			tt.check(t, buf.String())
		})
	}
}

// TestOutput_Write_Unsupported verifies printing a non-node fails.
func TestOutput_Write_Unsupported(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := Output{Format: FormatRust}.Write(context.Background(), &buf, 42)
	require.ErrorIs(t, err, pkg.ErrUnsupportedNode)
	assert.Zero(t, buf.Len())
}
