package syntax

// Categories. Each interface is sealed by an unexported method so only node
// types declared in this package can belong to it. A value of a category is
// recovered with a type switch on the concrete node type.
type (
	// Stmt is a statement inside a [Block].
	Stmt interface{ stmtNode() }

	// GenericArgument is an argument inside angle brackets: a lifetime, a
	// type, a const expression, or an associated type, const or constraint.
	GenericArgument interface{ genericArgument() }

	// Expr is an expression. Every expression is also a statement (without
	// a trailing semicolon) and a const generic argument.
	Expr interface {
		Stmt
		GenericArgument
		exprNode()
	}

	// Type is a type. Every type is also a generic argument.
	Type interface {
		GenericArgument
		typeNode()
	}

	// Pat is a pattern.
	Pat interface{ patNode() }

	// Item is a top-level or module-level item. Every item is also a
	// statement.
	Item interface {
		Stmt
		itemNode()
	}

	UseTree     interface{ useTree() }
	ForeignItem interface{ foreignItem() }
	TraitItem   interface{ traitItem() }
	ImplItem    interface{ implItem() }

	// FnArg is a function parameter: a [*Receiver] or a [*PatType].
	FnArg interface{ fnArg() }

	// PathArguments follows a path segment: nothing, angle brackets, or
	// parenthesized Fn-style arguments.
	PathArguments interface{ pathArguments() }

	GenericParam   interface{ genericParam() }
	TypeParamBound interface{ typeParamBound() }
	WherePredicate interface{ wherePredicate() }

	// Meta is the content of an attribute: a path, a list, or a name-value
	// pair.
	Meta interface{ meta() }

	// Visibility is [Pub], [*VisRestricted] or [VisInherited].
	Visibility interface{ visibility() }

	// AttrStyle is [AttrOuter] or [Not] (inner).
	AttrStyle interface{ attrStyle() }

	// MacroDelimiter is [Paren], [Brace] or [Bracket].
	MacroDelimiter interface {
		Open() string
		Close() string
		macroDelimiter()
	}

	// RangeLimits is [DotDot] (half-open) or [DotDotEq] (closed).
	RangeLimits interface{ rangeLimits() }

	BinOp interface{ binOp() }
	UnOp  interface{ unOp() }

	// Fields is the field group of a struct or enum variant.
	Fields interface{ fields() }

	// Data is the body of a [DeriveInput].
	Data interface{ data() }

	// Lit is a literal token.
	Lit interface{ lit() }

	// Member names a struct field: an [Ident] or a positional [Index].
	Member interface{ member() }

	// ReturnType is [ReturnTypeDefault] or [*ReturnTypeExplicit].
	ReturnType interface{ returnType() }

	// StaticMutability is [Mut] or [StaticMutabilityNone].
	StaticMutability interface{ staticMutability() }

	// FieldMutability is [FieldMutabilityNone].
	FieldMutability interface{ fieldMutability() }

	// TraitBoundModifier is [TraitBoundModifierNone] or [Question].
	TraitBoundModifier interface{ traitBoundModifier() }
)

// Verbatim content.
func (TokenStream) stmtNode()        {}
func (TokenStream) genericArgument() {}
func (TokenStream) exprNode()        {}
func (TokenStream) typeNode()        {}
func (TokenStream) patNode()         {}
func (TokenStream) itemNode()        {}
func (TokenStream) foreignItem()     {}
func (TokenStream) traitItem()       {}
func (TokenStream) implItem()        {}
func (TokenStream) typeParamBound()  {}

// Tokens that stand for a variant.
func (Pub) visibility()              {}
func (Not) attrStyle()               {}
func (Mut) staticMutability()        {}
func (Question) traitBoundModifier() {}
func (DotDot) rangeLimits()          {}
func (DotDotEq) rangeLimits()        {}
func (Paren) macroDelimiter()        {}
func (Brace) macroDelimiter()        {}
func (Bracket) macroDelimiter()      {}

func (Plus) binOp()      {}
func (Minus) binOp()     {}
func (Star) binOp()      {}
func (Slash) binOp()     {}
func (Percent) binOp()   {}
func (Caret) binOp()     {}
func (And) binOp()       {}
func (Or) binOp()        {}
func (AndAnd) binOp()    {}
func (OrOr) binOp()      {}
func (Shl) binOp()       {}
func (Shr) binOp()       {}
func (EqEq) binOp()      {}
func (Lt) binOp()        {}
func (Le) binOp()        {}
func (Ne) binOp()        {}
func (Ge) binOp()        {}
func (Gt) binOp()        {}
func (PlusEq) binOp()    {}
func (MinusEq) binOp()   {}
func (StarEq) binOp()    {}
func (SlashEq) binOp()   {}
func (PercentEq) binOp() {}
func (CaretEq) binOp()   {}
func (AndEq) binOp()     {}
func (OrEq) binOp()      {}
func (ShlEq) binOp()     {}
func (ShrEq) binOp()     {}

func (Star) unOp()  {}
func (Not) unOp()   {}
func (Minus) unOp() {}
