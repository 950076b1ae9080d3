package syntax

// Macro is a macro invocation: path!(tokens).
type Macro struct {
	Path      *Path
	Delimiter MacroDelimiter
	Tokens    TokenStream
}

// NewMacro returns path!(tokens) with parentheses.
func NewMacro[P PathLike](path P, tokens TokenStream) *Macro {
	return &Macro{Path: IntoPath(path), Delimiter: Paren{}, Tokens: tokens}
}

// WithDelimiter returns a copy of m using d around its tokens.
func (m *Macro) WithDelimiter(d MacroDelimiter) *Macro {
	c := *m
	c.Delimiter = d

	return &c
}

// MacroDelimiterParen returns the ( ) delimiter.
func MacroDelimiterParen() MacroDelimiter { return Paren{} }

// MacroDelimiterBrace returns the { } delimiter.
func MacroDelimiterBrace() MacroDelimiter { return Brace{} }

// MacroDelimiterBracket returns the [ ] delimiter.
func MacroDelimiterBracket() MacroDelimiter { return Bracket{} }
