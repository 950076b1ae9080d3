package syntax

import "slices"

// Block is a braced sequence of statements. The last statement is the
// block's value when it is an expression without a semicolon.
type Block struct {
	Stmts []Stmt
}

// NewBlock returns { stmts... }.
func NewBlock(stmts ...Stmt) *Block { return &Block{Stmts: slices.Clone(stmts)} }

// AddStmt returns a copy of b with s appended.
func (b *Block) AddStmt(s Stmt) *Block {
	c := *b
	c.Stmts = append(slices.Clip(b.Stmts), s)

	return &c
}

type (
	// Local is a let binding: let pat = init;.
	Local struct {
		Attrs []*Attribute
		Pat   Pat
		Init  *LocalInit
	}

	// LocalInit is the initializer of a let binding with an optional
	// diverging else block: = expr else { ... }.
	LocalInit struct {
		Expr    Expr
		Diverge Expr
	}

	// StmtMacro is a macro invocation in statement position.
	StmtMacro struct {
		Attrs []*Attribute
		Mac   *Macro
		Semi  *Semi
	}

	// StmtExpr is an expression statement. Without the semicolon it is the
	// value of the enclosing block.
	StmtExpr struct {
		Expr Expr
		Semi *Semi
	}
)

func (*Local) stmtNode()     {}
func (*StmtMacro) stmtNode() {}
func (*StmtExpr) stmtNode()  {}

// NewLocal returns let pat; without an initializer.
func NewLocal(pat Pat) *Local { return &Local{Pat: pat} }

// WithInit returns a copy of l initialized by init.
func (l *Local) WithInit(init *LocalInit) *Local {
	c := *l
	c.Init = init

	return &c
}

// NewLocalInit returns = expr without a diverging else.
func NewLocalInit(expr Expr) *LocalInit { return &LocalInit{Expr: expr} }

// WithDiverge returns a copy of i that runs diverge when the pattern is
// refuted.
func (i *LocalInit) WithDiverge(diverge Expr) *LocalInit {
	c := *i
	c.Diverge = diverge

	return &c
}

// NewStmtMacro returns mac in statement position without a semicolon.
func NewStmtMacro(mac *Macro) *StmtMacro { return &StmtMacro{Mac: mac} }

// WithSemi returns a copy of s terminated by ; when on is true.
func (s *StmtMacro) WithSemi(on bool) *StmtMacro {
	c := *s
	c.Semi = marker[Semi](on)

	return &c
}

// NewStmtExpr returns expr as the value of its block, without a semicolon.
func NewStmtExpr(expr Expr) *StmtExpr { return &StmtExpr{Expr: expr} }

// WithSemi returns a copy of s terminated by ; when on is true.
func (s *StmtExpr) WithSemi(on bool) *StmtExpr {
	c := *s
	c.Semi = marker[Semi](on)

	return &c
}
