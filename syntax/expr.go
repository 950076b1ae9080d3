package syntax

import "slices"

type (
	// ExprArray is [a, b, c].
	ExprArray struct {
		Attrs []*Attribute
		Elems []Expr
	}

	// ExprAssign is a = b.
	ExprAssign struct {
		Attrs []*Attribute
		Left  Expr
		Right Expr
	}

	// ExprAsync is async { ... } or async move { ... }.
	ExprAsync struct {
		Attrs   []*Attribute
		Capture *Move
		Block   *Block
	}

	// ExprAwait is base.await.
	ExprAwait struct {
		Attrs []*Attribute
		Base  Expr
	}

	// ExprBinary is left op right, including compound assignment.
	ExprBinary struct {
		Attrs []*Attribute
		Left  Expr
		Op    BinOp
		Right Expr
	}

	// ExprBlock is a block expression, optionally labeled: 'a: { ... }.
	ExprBlock struct {
		Attrs []*Attribute
		Label *Label
		Block *Block
	}

	// ExprBreak is break 'label value. Both parts are optional.
	ExprBreak struct {
		Attrs []*Attribute
		Label *Lifetime
		Expr  Expr
	}

	// ExprCall is func(args...).
	ExprCall struct {
		Attrs []*Attribute
		Func  Expr
		Args  []Expr
	}

	// ExprCast is expr as ty.
	ExprCast struct {
		Attrs []*Attribute
		Expr  Expr
		Ty    Type
	}

	// ExprClosure is a closure: for<'a> const static async move |inputs|
	// -> T body.
	ExprClosure struct {
		Attrs      []*Attribute
		Lifetimes  *BoundLifetimes
		Constness  *Const
		Movability *Static
		Asyncness  *Async
		Capture    *Move
		Inputs     []Pat
		Output     ReturnType
		Body       Expr
	}

	// ExprConst is a const block: const { ... }.
	ExprConst struct {
		Attrs []*Attribute
		Block *Block
	}

	// ExprContinue is continue 'label.
	ExprContinue struct {
		Attrs []*Attribute
		Label *Lifetime
	}

	// ExprField is base.member, for a named or positional member.
	ExprField struct {
		Attrs  []*Attribute
		Base   Expr
		Member Member
	}

	// ExprForLoop is for pat in expr { body }.
	ExprForLoop struct {
		Attrs []*Attribute
		Label *Label
		Pat   Pat
		Expr  Expr
		Body  *Block
	}

	// ExprGroup is an expression in an invisible group.
	ExprGroup struct {
		Attrs []*Attribute
		Expr  Expr
	}

	// ExprIf is if cond { then } else else_. Else is nil, an [*ExprIf] or an
	// [*ExprBlock].
	ExprIf struct {
		Attrs []*Attribute
		Cond  Expr
		Then  *Block
		Else  Expr
	}

	// ExprIndex is expr[index].
	ExprIndex struct {
		Attrs []*Attribute
		Expr  Expr
		Index Expr
	}

	// ExprInfer is _ in expression position.
	ExprInfer struct {
		Attrs []*Attribute
	}

	// ExprLet is let pat = expr, inside if and while conditions.
	ExprLet struct {
		Attrs []*Attribute
		Pat   Pat
		Expr  Expr
	}

	ExprLit struct {
		Attrs []*Attribute
		Lit   Lit
	}

	// ExprLoop is loop { body }.
	ExprLoop struct {
		Attrs []*Attribute
		Label *Label
		Body  *Block
	}

	ExprMacro struct {
		Attrs []*Attribute
		Mac   *Macro
	}

	// ExprMatch is match expr { arms... }.
	ExprMatch struct {
		Attrs []*Attribute
		Expr  Expr
		Arms  []*Arm
	}

	// ExprMethodCall is receiver.method::<turbofish>(args...).
	ExprMethodCall struct {
		Attrs     []*Attribute
		Receiver  Expr
		Method    Ident
		Turbofish *AngleBracketedGenericArguments
		Args      []Expr
	}

	ExprParen struct {
		Attrs []*Attribute
		Expr  Expr
	}

	// ExprPath is a path in expression position, optionally qualified:
	// <Vec<T>>::new.
	ExprPath struct {
		Attrs []*Attribute
		QSelf *QSelf
		Path  *Path
	}

	// ExprRange is start..end or start..=end. Either bound may be nil.
	ExprRange struct {
		Attrs  []*Attribute
		Start  Expr
		Limits RangeLimits
		End    Expr
	}

	// ExprReference is &expr or &mut expr.
	ExprReference struct {
		Attrs      []*Attribute
		Mutability *Mut
		Expr       Expr
	}

	// ExprRepeat is [expr; len].
	ExprRepeat struct {
		Attrs []*Attribute
		Expr  Expr
		Len   Expr
	}

	// ExprReturn is return with an optional value.
	ExprReturn struct {
		Attrs []*Attribute
		Expr  Expr
	}

	// ExprStruct is a struct literal: Point { x, y: 0, ..base }. Dot2 marks
	// the .. and Rest is the base expression after it.
	ExprStruct struct {
		Attrs  []*Attribute
		QSelf  *QSelf
		Path   *Path
		Fields []*FieldValue
		Dot2   *DotDot
		Rest   Expr
	}

	// ExprTry is expr?.
	ExprTry struct {
		Attrs []*Attribute
		Expr  Expr
	}

	// ExprTryBlock is try { ... }.
	ExprTryBlock struct {
		Attrs []*Attribute
		Block *Block
	}

	// ExprTuple is (a, b). No elements is the unit value.
	ExprTuple struct {
		Attrs []*Attribute
		Elems []Expr
	}

	ExprUnary struct {
		Attrs []*Attribute
		Op    UnOp
		Expr  Expr
	}

	// ExprUnsafe is unsafe { ... }.
	ExprUnsafe struct {
		Attrs []*Attribute
		Block *Block
	}

	// ExprWhile is while cond { body }.
	ExprWhile struct {
		Attrs []*Attribute
		Label *Label
		Cond  Expr
		Body  *Block
	}

	// ExprYield is yield with an optional value.
	ExprYield struct {
		Attrs []*Attribute
		Expr  Expr
	}
)

func (*ExprArray) exprNode()      {}
func (*ExprAssign) exprNode()     {}
func (*ExprAsync) exprNode()      {}
func (*ExprAwait) exprNode()      {}
func (*ExprBinary) exprNode()     {}
func (*ExprBlock) exprNode()      {}
func (*ExprBreak) exprNode()      {}
func (*ExprCall) exprNode()       {}
func (*ExprCast) exprNode()       {}
func (*ExprClosure) exprNode()    {}
func (*ExprConst) exprNode()      {}
func (*ExprContinue) exprNode()   {}
func (*ExprField) exprNode()      {}
func (*ExprForLoop) exprNode()    {}
func (*ExprGroup) exprNode()      {}
func (*ExprIf) exprNode()         {}
func (*ExprIndex) exprNode()      {}
func (*ExprInfer) exprNode()      {}
func (*ExprLet) exprNode()        {}
func (*ExprLit) exprNode()        {}
func (*ExprLoop) exprNode()       {}
func (*ExprMacro) exprNode()      {}
func (*ExprMatch) exprNode()      {}
func (*ExprMethodCall) exprNode() {}
func (*ExprParen) exprNode()      {}
func (*ExprPath) exprNode()       {}
func (*ExprRange) exprNode()      {}
func (*ExprReference) exprNode()  {}
func (*ExprRepeat) exprNode()     {}
func (*ExprReturn) exprNode()     {}
func (*ExprStruct) exprNode()     {}
func (*ExprTry) exprNode()        {}
func (*ExprTryBlock) exprNode()   {}
func (*ExprTuple) exprNode()      {}
func (*ExprUnary) exprNode()      {}
func (*ExprUnsafe) exprNode()     {}
func (*ExprWhile) exprNode()      {}
func (*ExprYield) exprNode()      {}

func (*ExprArray) stmtNode()      {}
func (*ExprAssign) stmtNode()     {}
func (*ExprAsync) stmtNode()      {}
func (*ExprAwait) stmtNode()      {}
func (*ExprBinary) stmtNode()     {}
func (*ExprBlock) stmtNode()      {}
func (*ExprBreak) stmtNode()      {}
func (*ExprCall) stmtNode()       {}
func (*ExprCast) stmtNode()       {}
func (*ExprClosure) stmtNode()    {}
func (*ExprConst) stmtNode()      {}
func (*ExprContinue) stmtNode()   {}
func (*ExprField) stmtNode()      {}
func (*ExprForLoop) stmtNode()    {}
func (*ExprGroup) stmtNode()      {}
func (*ExprIf) stmtNode()         {}
func (*ExprIndex) stmtNode()      {}
func (*ExprInfer) stmtNode()      {}
func (*ExprLet) stmtNode()        {}
func (*ExprLit) stmtNode()        {}
func (*ExprLoop) stmtNode()       {}
func (*ExprMacro) stmtNode()      {}
func (*ExprMatch) stmtNode()      {}
func (*ExprMethodCall) stmtNode() {}
func (*ExprParen) stmtNode()      {}
func (*ExprPath) stmtNode()       {}
func (*ExprRange) stmtNode()      {}
func (*ExprReference) stmtNode()  {}
func (*ExprRepeat) stmtNode()     {}
func (*ExprReturn) stmtNode()     {}
func (*ExprStruct) stmtNode()     {}
func (*ExprTry) stmtNode()        {}
func (*ExprTryBlock) stmtNode()   {}
func (*ExprTuple) stmtNode()      {}
func (*ExprUnary) stmtNode()      {}
func (*ExprUnsafe) stmtNode()     {}
func (*ExprWhile) stmtNode()      {}
func (*ExprYield) stmtNode()      {}

func (*ExprArray) genericArgument()      {}
func (*ExprAssign) genericArgument()     {}
func (*ExprAsync) genericArgument()      {}
func (*ExprAwait) genericArgument()      {}
func (*ExprBinary) genericArgument()     {}
func (*ExprBlock) genericArgument()      {}
func (*ExprBreak) genericArgument()      {}
func (*ExprCall) genericArgument()       {}
func (*ExprCast) genericArgument()       {}
func (*ExprClosure) genericArgument()    {}
func (*ExprConst) genericArgument()      {}
func (*ExprContinue) genericArgument()   {}
func (*ExprField) genericArgument()      {}
func (*ExprForLoop) genericArgument()    {}
func (*ExprGroup) genericArgument()      {}
func (*ExprIf) genericArgument()         {}
func (*ExprIndex) genericArgument()      {}
func (*ExprInfer) genericArgument()      {}
func (*ExprLet) genericArgument()        {}
func (*ExprLit) genericArgument()        {}
func (*ExprLoop) genericArgument()       {}
func (*ExprMacro) genericArgument()      {}
func (*ExprMatch) genericArgument()      {}
func (*ExprMethodCall) genericArgument() {}
func (*ExprParen) genericArgument()      {}
func (*ExprPath) genericArgument()       {}
func (*ExprRange) genericArgument()      {}
func (*ExprReference) genericArgument()  {}
func (*ExprRepeat) genericArgument()     {}
func (*ExprReturn) genericArgument()     {}
func (*ExprStruct) genericArgument()     {}
func (*ExprTry) genericArgument()        {}
func (*ExprTryBlock) genericArgument()   {}
func (*ExprTuple) genericArgument()      {}
func (*ExprUnary) genericArgument()      {}
func (*ExprUnsafe) genericArgument()     {}
func (*ExprWhile) genericArgument()      {}
func (*ExprYield) genericArgument()      {}

// Expression variants that are also patterns.
func (*ExprConst) patNode() {}
func (*ExprLit) patNode()   {}
func (*ExprMacro) patNode() {}
func (*ExprPath) patNode()  {}
func (*ExprRange) patNode() {}

// Label names a loop or block: 'outer:.
type Label struct{ Name Lifetime }

// NewLabel returns the label name:.
func NewLabel(name Lifetime) *Label { return &Label{Name: name} }

// Arm is one arm of a match: pat if guard => body,
type Arm struct {
	Attrs []*Attribute
	Pat   Pat
	Guard Expr
	Body  Expr
	Comma *Comma
}

// NewArm returns pat => body followed by a comma.
func NewArm(pat Pat, body Expr) *Arm {
	return &Arm{Pat: pat, Body: body, Comma: &Comma{}}
}

// WithGuard returns a copy of a guarded by guard.
func (a *Arm) WithGuard(guard Expr) *Arm {
	c := *a
	c.Guard = guard

	return &c
}

// FieldValue is one field of a struct literal: member: expr.
type FieldValue struct {
	Attrs  []*Attribute
	Member Member
	Colon  *Colon
	Expr   Expr
}

// NewFieldValue returns member: expr.
func NewFieldValue(member Member, expr Expr) *FieldValue {
	return &FieldValue{Member: member, Colon: &Colon{}, Expr: expr}
}

// RangeLimitsHalfOpen returns the .. limits.
func RangeLimitsHalfOpen() RangeLimits { return DotDot{} }

// RangeLimitsClosed returns the ..= limits.
func RangeLimitsClosed() RangeLimits { return DotDotEq{} }

// NewExprArray returns [elems...].
func NewExprArray(elems ...Expr) *ExprArray {
	return &ExprArray{Elems: slices.Clone(elems)}
}

// NewExprAssign returns left = right.
func NewExprAssign(left, right Expr) *ExprAssign {
	return &ExprAssign{Left: left, Right: right}
}

// NewExprAsync returns an async block that borrows its captures.
func NewExprAsync(block *Block) *ExprAsync { return &ExprAsync{Block: block} }

// WithCapture returns a copy of e that captures by move when on is true.
func (e *ExprAsync) WithCapture(on bool) *ExprAsync {
	c := *e
	c.Capture = marker[Move](on)

	return &c
}

// NewExprAwait returns base.await.
func NewExprAwait(base Expr) *ExprAwait { return &ExprAwait{Base: base} }

// NewExprBinary returns left op right.
func NewExprBinary(left Expr, op BinOp, right Expr) *ExprBinary {
	return &ExprBinary{Left: left, Op: op, Right: right}
}

// NewExprBlock returns block as an unlabeled expression.
func NewExprBlock(block *Block) *ExprBlock { return &ExprBlock{Block: block} }

// NewExprBreak returns a bare break.
func NewExprBreak() *ExprBreak { return &ExprBreak{} }

// WithLabel returns a copy of e breaking out of the loop labeled l.
func (e *ExprBreak) WithLabel(l Lifetime) *ExprBreak {
	c := *e
	c.Label = &l

	return &c
}

// WithExpr returns a copy of e breaking with the value v.
func (e *ExprBreak) WithExpr(v Expr) *ExprBreak {
	c := *e
	c.Expr = v

	return &c
}

// NewExprCall returns fn(args...).
func NewExprCall(fn Expr, args ...Expr) *ExprCall {
	return &ExprCall{Func: fn, Args: slices.Clone(args)}
}

// NewExprCast returns expr as ty.
func NewExprCast(expr Expr, ty Type) *ExprCast {
	return &ExprCast{Expr: expr, Ty: ty}
}

// NewExprClosure returns |inputs...| body with no qualifiers and no return
// type.
//
// The body comes first, ahead of the inputs, because the inputs are
// variadic.
func NewExprClosure(body Expr, inputs ...Pat) *ExprClosure {
	return &ExprClosure{
		Inputs: slices.Clone(inputs),
		Output: ReturnTypeDefault{},
		Body:   body,
	}
}

// WithLifetimes returns a copy of e with an empty for<> binder when on is
// true.
func (e *ExprClosure) WithLifetimes(on bool) *ExprClosure {
	c := *e
	c.Lifetimes = marker[BoundLifetimes](on)

	return &c
}

// WithConstness returns a copy of e marked const when on is true.
func (e *ExprClosure) WithConstness(on bool) *ExprClosure {
	c := *e
	c.Constness = marker[Const](on)

	return &c
}

// WithMovability returns a copy of e marked static when on is true.
func (e *ExprClosure) WithMovability(on bool) *ExprClosure {
	c := *e
	c.Movability = marker[Static](on)

	return &c
}

// WithAsyncness returns a copy of e marked async when on is true.
func (e *ExprClosure) WithAsyncness(on bool) *ExprClosure {
	c := *e
	c.Asyncness = marker[Async](on)

	return &c
}

// WithCapture returns a copy of e that captures by move when on is true.
func (e *ExprClosure) WithCapture(on bool) *ExprClosure {
	c := *e
	c.Capture = marker[Move](on)

	return &c
}

// NewExprConst returns the const block const { ... }.
func NewExprConst(block *Block) *ExprConst { return &ExprConst{Block: block} }

// NewExprContinue returns a bare continue.
func NewExprContinue() *ExprContinue { return &ExprContinue{} }

// WithLabel returns a copy of e continuing the loop labeled l.
func (e *ExprContinue) WithLabel(l Lifetime) *ExprContinue {
	c := *e
	c.Label = &l

	return &c
}

// NewExprField returns base.member.
func NewExprField(base Expr, member Member) *ExprField {
	return &ExprField{Base: base, Member: member}
}

// NewExprForLoop returns for pat in expr { body }.
func NewExprForLoop(pat Pat, expr Expr, body *Block) *ExprForLoop {
	return &ExprForLoop{Pat: pat, Expr: expr, Body: body}
}

// NewExprGroup returns expr inside an invisible group.
func NewExprGroup(expr Expr) *ExprGroup { return &ExprGroup{Expr: expr} }

// NewExprIf returns if cond { then } without an else branch.
func NewExprIf(cond Expr, then *Block) *ExprIf {
	return &ExprIf{Cond: cond, Then: then}
}

// WithElseBranch returns a copy of e with the else branch els.
func (e *ExprIf) WithElseBranch(els Expr) *ExprIf {
	c := *e
	c.Else = els

	return &c
}

// NewExprIndex returns expr[index].
func NewExprIndex(expr, index Expr) *ExprIndex {
	return &ExprIndex{Expr: expr, Index: index}
}

// NewExprInfer returns the placeholder expression _.
func NewExprInfer() *ExprInfer { return &ExprInfer{} }

// NewExprLet returns let pat = expr, as used in if let conditions.
func NewExprLet(pat Pat, expr Expr) *ExprLet {
	return &ExprLet{Pat: pat, Expr: expr}
}

// NewExprLit returns lit as an expression.
func NewExprLit(lit Lit) *ExprLit { return &ExprLit{Lit: lit} }

// NewExprLoop returns an unlabeled loop { body }.
func NewExprLoop(body *Block) *ExprLoop { return &ExprLoop{Body: body} }

// NewExprMacro returns mac as an expression.
func NewExprMacro(mac *Macro) *ExprMacro { return &ExprMacro{Mac: mac} }

// NewExprMatch returns match expr { arms... }.
func NewExprMatch(expr Expr, arms ...*Arm) *ExprMatch {
	return &ExprMatch{Expr: expr, Arms: slices.Clone(arms)}
}

// NewExprMethodCall returns receiver.method(args...).
func NewExprMethodCall(
	receiver Expr,
	method Ident,
	args ...Expr,
) *ExprMethodCall {
	return &ExprMethodCall{
		Receiver: receiver,
		Method:   method,
		Args:     slices.Clone(args),
	}
}

// WithTurbofish returns a copy of e passing the generic arguments t. The ::
// is added to t if it was missing.
func (e *ExprMethodCall) WithTurbofish(
	t *AngleBracketedGenericArguments,
) *ExprMethodCall {
	c := *e
	c.Turbofish = t.WithColon2(true)

	return &c
}

// NewExprParen returns (expr).
func NewExprParen(expr Expr) *ExprParen { return &ExprParen{Expr: expr} }

// NewExprPath returns path as an expression.
func NewExprPath[P PathLike](path P) *ExprPath {
	return &ExprPath{Path: IntoPath(path)}
}

// NewExprRange returns an unbounded range with limits.
func NewExprRange(limits RangeLimits) *ExprRange {
	return &ExprRange{Limits: limits}
}

// WithStart returns a copy of e with the lower bound start.
func (e *ExprRange) WithStart(start Expr) *ExprRange {
	c := *e
	c.Start = start

	return &c
}

// WithEnd returns a copy of e with the upper bound end.
func (e *ExprRange) WithEnd(end Expr) *ExprRange {
	c := *e
	c.End = end

	return &c
}

// NewExprReference returns the shared borrow &expr.
func NewExprReference(expr Expr) *ExprReference {
	return &ExprReference{Expr: expr}
}

// NewExprRepeat returns [expr; length].
func NewExprRepeat(expr, length Expr) *ExprRepeat {
	return &ExprRepeat{Expr: expr, Len: length}
}

// NewExprReturn returns a bare return.
func NewExprReturn() *ExprReturn { return &ExprReturn{} }

// WithExpr returns a copy of e returning the value v.
func (e *ExprReturn) WithExpr(v Expr) *ExprReturn {
	c := *e
	c.Expr = v

	return &c
}

// NewExprStruct returns path { fields... }.
func NewExprStruct[P PathLike](path P, fields ...*FieldValue) *ExprStruct {
	return &ExprStruct{Path: IntoPath(path), Fields: slices.Clone(fields)}
}

// WithDot2 returns a copy of e ending in a bare .. when on is true. When on is
// false both the .. and any rest expression are removed, since a rest
// expression cannot appear without the ...
func (e *ExprStruct) WithDot2(on bool) *ExprStruct {
	c := *e
	c.Dot2 = marker[DotDot](on)

	if !on {
		c.Rest = nil
	}

	return &c
}

// WithRest returns a copy of e ending in ..rest.
func (e *ExprStruct) WithRest(rest Expr) *ExprStruct {
	c := *e
	c.Dot2 = &DotDot{}
	c.Rest = rest

	return &c
}

// NewExprTry returns expr?.
func NewExprTry(expr Expr) *ExprTry { return &ExprTry{Expr: expr} }

// NewExprTryBlock returns try { ... }.
func NewExprTryBlock(block *Block) *ExprTryBlock {
	return &ExprTryBlock{Block: block}
}

// NewExprTuple returns (elems...). One element keeps its trailing comma.
func NewExprTuple(elems ...Expr) *ExprTuple {
	return &ExprTuple{Elems: slices.Clone(elems)}
}

// NewExprUnary returns op expr.
func NewExprUnary(op UnOp, expr Expr) *ExprUnary {
	return &ExprUnary{Op: op, Expr: expr}
}

// NewExprUnsafe returns unsafe { ... }.
func NewExprUnsafe(block *Block) *ExprUnsafe { return &ExprUnsafe{Block: block} }

// NewExprWhile returns while cond { body }.
func NewExprWhile(cond Expr, body *Block) *ExprWhile {
	return &ExprWhile{Cond: cond, Body: body}
}

// NewExprYield returns a bare yield.
func NewExprYield() *ExprYield { return &ExprYield{} }

// WithExpr returns a copy of e yielding the value v.
func (e *ExprYield) WithExpr(v Expr) *ExprYield {
	c := *e
	c.Expr = v

	return &c
}
