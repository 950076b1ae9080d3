package syntax

import "strings"

// Marker tokens. A marker carries no data: a non-nil pointer field of one of
// these types means the keyword or punctuation is present.
type (
	Pub     struct{} // pub
	Mut     struct{} // mut
	Unsafe  struct{} // unsafe
	Default struct{} // default
	Auto    struct{} // auto
	Const   struct{} // const
	Async   struct{} // async
	Static  struct{} // static
	Move    struct{} // move
	Ref     struct{} // ref
	In      struct{} // in
	As      struct{} // as

	Colon    struct{} // :
	PathSep  struct{} // ::
	Eq       struct{} // =
	Comma    struct{} // ,
	Semi     struct{} // ;
	Question struct{} // ?
	DotDot   struct{} // ..
	DotDotEq struct{} // ..=
	Not      struct{} // !
)

// Operator tokens. Each is also the [BinOp] or [UnOp] variant it spells.
type (
	Plus    struct{} // +
	Minus   struct{} // -
	Star    struct{} // *
	Slash   struct{} // /
	Percent struct{} // %
	Caret   struct{} // ^
	And     struct{} // &
	Or      struct{} // |
	AndAnd  struct{} // &&
	OrOr    struct{} // ||
	Shl     struct{} // <<
	Shr     struct{} // >>
	EqEq    struct{} // ==
	Lt      struct{} // <
	Le      struct{} // <=
	Ne      struct{} // !=
	Ge      struct{} // >=
	Gt      struct{} // >

	PlusEq    struct{} // +=
	MinusEq   struct{} // -=
	StarEq    struct{} // *=
	SlashEq   struct{} // /=
	PercentEq struct{} // %=
	CaretEq   struct{} // ^=
	AndEq     struct{} // &=
	OrEq      struct{} // |=
	ShlEq     struct{} // <<=
	ShrEq     struct{} // >>=
)

// Delimiter tokens. Each is also a [MacroDelimiter] variant.
type (
	Paren   struct{} // ( )
	Brace   struct{} // { }
	Bracket struct{} // [ ]
)

// String returns "pub".
func (Pub) String() string { return "pub" }

// String returns "mut".
func (Mut) String() string { return "mut" }

// String returns "unsafe".
func (Unsafe) String() string { return "unsafe" }

// String returns "default".
func (Default) String() string { return "default" }

// String returns "auto".
func (Auto) String() string { return "auto" }

// String returns "const".
func (Const) String() string { return "const" }

// String returns "async".
func (Async) String() string { return "async" }

// String returns "static".
func (Static) String() string { return "static" }

// String returns "move".
func (Move) String() string { return "move" }

// String returns "ref".
func (Ref) String() string { return "ref" }

// String returns "in".
func (In) String() string { return "in" }

// String returns "as".
func (As) String() string { return "as" }

// String returns ":".
func (Colon) String() string { return ":" }

// String returns "::".
func (PathSep) String() string { return "::" }

// String returns "=".
func (Eq) String() string { return "=" }

// String returns ",".
func (Comma) String() string { return "," }

// String returns ";".
func (Semi) String() string { return ";" }

// String returns "?".
func (Question) String() string { return "?" }

// String returns "..".
func (DotDot) String() string { return ".." }

// String returns "..=".
func (DotDotEq) String() string { return "..=" }

// String returns "!".
func (Not) String() string { return "!" }

// String returns "+".
func (Plus) String() string { return "+" }

// String returns "-".
func (Minus) String() string { return "-" }

// String returns "*".
func (Star) String() string { return "*" }

// String returns "/".
func (Slash) String() string { return "/" }

// String returns "%".
func (Percent) String() string { return "%" }

// String returns "^".
func (Caret) String() string { return "^" }

// String returns "&".
func (And) String() string { return "&" }

// String returns "|".
func (Or) String() string { return "|" }

// String returns "&&".
func (AndAnd) String() string { return "&&" }

// String returns "||".
func (OrOr) String() string { return "||" }

// String returns "<<".
func (Shl) String() string { return "<<" }

// String returns ">>".
func (Shr) String() string { return ">>" }

// String returns "==".
func (EqEq) String() string { return "==" }

// String returns "<".
func (Lt) String() string { return "<" }

// String returns "<=".
func (Le) String() string { return "<=" }

// String returns "!=".
func (Ne) String() string { return "!=" }

// String returns ">=".
func (Ge) String() string { return ">=" }

// String returns ">".
func (Gt) String() string { return ">" }

// String returns "+=".
func (PlusEq) String() string { return "+=" }

// String returns "-=".
func (MinusEq) String() string { return "-=" }

// String returns "*=".
func (StarEq) String() string { return "*=" }

// String returns "/=".
func (SlashEq) String() string { return "/=" }

// String returns "%=".
func (PercentEq) String() string { return "%=" }

// String returns "^=".
func (CaretEq) String() string { return "^=" }

// String returns "&=".
func (AndEq) String() string { return "&=" }

// String returns "|=".
func (OrEq) String() string { return "|=" }

// String returns "<<=".
func (ShlEq) String() string { return "<<=" }

// String returns ">>=".
func (ShrEq) String() string { return ">>=" }

// Open returns the opening delimiter.
func (Paren) Open() string { return "(" }

// Close returns the closing delimiter.
func (Paren) Close() string { return ")" }

// Open returns the opening delimiter.
func (Brace) Open() string { return "{" }

// Close returns the closing delimiter.
func (Brace) Close() string { return "}" }

// Open returns the opening delimiter.
func (Bracket) Open() string { return "[" }

// Close returns the closing delimiter.
func (Bracket) Close() string { return "]" }

// TokenStream is raw source text embedded verbatim. It is the escape hatch for
// content the node model cannot express and is a variant of every category
// that accepts verbatim content.
//
// The text is printed exactly as given, including the whitespace inside it,
// and pretty printing never breaks lines within it.
type TokenStream string

// NewTokenStream joins tokens with single spaces. Each token is kept as
// given, so a string literal token keeps its inner whitespace.
func NewTokenStream(tokens ...string) TokenStream {
	return TokenStream(strings.Join(tokens, " "))
}

// Text returns the stream without surrounding whitespace.
func (ts TokenStream) Text() string { return strings.TrimSpace(string(ts)) }

// marker returns a present marker when on is true and an absent one
// otherwise.
func marker[T any](on bool) *T {
	if on {
		return new(T)
	}

	return nil
}
