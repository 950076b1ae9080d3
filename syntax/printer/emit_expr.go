package printer

import "github.com/ardnew/synbuild/syntax"

//nolint:cyclop,funlen,gocyclo,maintidx
func (e *emitter) expr(n any) bool {
	switch n := n.(type) {
	case *syntax.ExprArray:
		e.attrs(n.Attrs)
		e.word("[")
		nodes(e, ",", n.Elems)
		e.word("]")
	case *syntax.ExprAssign:
		e.attrs(n.Attrs)
		e.node(n.Left)
		e.word("=")
		e.node(n.Right)
	case *syntax.ExprAsync:
		e.attrs(n.Attrs)
		e.word("async")
		e.flag(n.Capture != nil, "move")
		e.block(n.Block)
	case *syntax.ExprAwait:
		e.attrs(n.Attrs)
		e.node(n.Base)
		e.word(".", "await")
	case *syntax.ExprBinary:
		e.attrs(n.Attrs)
		e.node(n.Left)
		e.node(n.Op)
		e.node(n.Right)
	case *syntax.ExprBlock:
		e.attrs(n.Attrs)
		e.label(n.Label)
		e.block(n.Block)
	case *syntax.ExprBreak:
		e.attrs(n.Attrs)
		e.word("break")
		e.lifetime(n.Label)
		e.opt(n.Expr)
	case *syntax.ExprCall:
		e.attrs(n.Attrs)
		e.node(n.Func)
		e.word("(")
		nodes(e, ",", n.Args)
		e.word(")")
	case *syntax.ExprCast:
		e.attrs(n.Attrs)
		e.node(n.Expr)
		e.word("as")
		e.node(n.Ty)
	case *syntax.ExprClosure:
		e.attrs(n.Attrs)

		if n.Lifetimes != nil {
			e.node(n.Lifetimes)
		}

		e.flag(n.Constness != nil, "const")
		e.flag(n.Movability != nil, "static")
		e.flag(n.Asyncness != nil, "async")
		e.flag(n.Capture != nil, "move")
		e.word("|")
		nodes(e, ",", n.Inputs)
		e.word("|")
		e.output(n.Output)
		e.node(n.Body)
	case *syntax.ExprConst:
		e.attrs(n.Attrs)
		e.word("const")
		e.block(n.Block)
	case *syntax.ExprContinue:
		e.attrs(n.Attrs)
		e.word("continue")
		e.lifetime(n.Label)
	case *syntax.ExprField:
		e.attrs(n.Attrs)
		e.node(n.Base)
		e.word(".")
		e.node(n.Member)
	case *syntax.ExprForLoop:
		e.attrs(n.Attrs)
		e.label(n.Label)
		e.word("for")
		e.node(n.Pat)
		e.word("in")
		e.node(n.Expr)
		e.block(n.Body)
	case *syntax.ExprGroup:
		e.attrs(n.Attrs)
		e.node(n.Expr)
	case *syntax.ExprIf:
		e.attrs(n.Attrs)
		e.word("if")
		e.node(n.Cond)
		e.block(n.Then)

		if n.Else != nil {
			e.word("else")
			e.node(n.Else)
		}
	case *syntax.ExprIndex:
		e.attrs(n.Attrs)
		e.node(n.Expr)
		e.word("[")
		e.node(n.Index)
		e.word("]")
	case *syntax.ExprInfer:
		e.attrs(n.Attrs)
		e.word("_")
	case *syntax.ExprLet:
		e.attrs(n.Attrs)
		e.word("let")
		e.node(n.Pat)
		e.word("=")
		e.node(n.Expr)
	case *syntax.ExprLit:
		e.attrs(n.Attrs)
		e.lit(n.Lit)
	case *syntax.ExprLoop:
		e.attrs(n.Attrs)
		e.label(n.Label)
		e.word("loop")
		e.block(n.Body)
	case *syntax.ExprMacro:
		e.attrs(n.Attrs)
		e.mac(n.Mac, "")
	case *syntax.ExprMatch:
		e.attrs(n.Attrs)
		e.word("match")
		e.node(n.Expr)
		e.word("{")

		for _, a := range n.Arms {
			e.arm(a)
		}

		e.word("}")
	case *syntax.ExprMethodCall:
		e.attrs(n.Attrs)
		e.node(n.Receiver)
		e.word(".", string(n.Method))
		e.optAngle(n.Turbofish)
		e.word("(")
		nodes(e, ",", n.Args)
		e.word(")")
	case *syntax.ExprParen:
		e.attrs(n.Attrs)
		e.word("(")
		e.node(n.Expr)
		e.word(")")
	case *syntax.ExprPath:
		e.attrs(n.Attrs)
		e.qpath(n.QSelf, n.Path)
	case *syntax.ExprRange:
		e.attrs(n.Attrs)
		e.opt(n.Start)
		e.node(n.Limits)
		e.opt(n.End)
	case *syntax.ExprReference:
		e.attrs(n.Attrs)
		e.word("&")
		e.flag(n.Mutability != nil, "mut")
		e.node(n.Expr)
	case *syntax.ExprRepeat:
		e.attrs(n.Attrs)
		e.word("[")
		e.node(n.Expr)
		e.word(";")
		e.node(n.Len)
		e.word("]")
	case *syntax.ExprReturn:
		e.attrs(n.Attrs)
		e.word("return")
		e.opt(n.Expr)
	case *syntax.ExprStruct:
		e.attrs(n.Attrs)
		e.qpath(n.QSelf, n.Path)
		e.word("{")
		sep(e, ",", n.Fields, e.fieldValue)

		if n.Dot2 != nil {
			if len(n.Fields) > 0 {
				e.word(",")
			}

			e.word("..")
			e.opt(n.Rest)
		}

		e.word("}")
	case *syntax.ExprTry:
		e.attrs(n.Attrs)
		e.node(n.Expr)
		e.word("?")
	case *syntax.ExprTryBlock:
		e.attrs(n.Attrs)
		e.word("try")
		e.block(n.Block)
	case *syntax.ExprTuple:
		e.attrs(n.Attrs)
		tuple(e, n.Elems)
	case *syntax.ExprUnary:
		e.attrs(n.Attrs)
		e.node(n.Op)
		e.node(n.Expr)
	case *syntax.ExprUnsafe:
		e.attrs(n.Attrs)
		e.word("unsafe")
		e.block(n.Block)
	case *syntax.ExprWhile:
		e.attrs(n.Attrs)
		e.label(n.Label)
		e.word("while")
		e.node(n.Cond)
		e.block(n.Body)
	case *syntax.ExprYield:
		e.attrs(n.Attrs)
		e.word("yield")
		e.opt(n.Expr)
	case *syntax.Arm:
		e.arm(n)
	case *syntax.FieldValue:
		e.fieldValue(n)
	case *syntax.Label:
		e.label(n)

	default:
		return false
	}

	return true
}

// opt emits n unless it is nil.
func (e *emitter) opt(n syntax.Expr) {
	if n != nil {
		e.node(n)
	}
}

func (e *emitter) lifetime(l *syntax.Lifetime) {
	if l != nil {
		e.word(l.String())
	}
}

func (e *emitter) label(l *syntax.Label) {
	if l != nil {
		e.word(l.Name.String(), ":")
	}
}

func (e *emitter) arm(a *syntax.Arm) {
	e.attrs(a.Attrs)
	e.node(a.Pat)

	if a.Guard != nil {
		e.word("if")
		e.node(a.Guard)
	}

	e.word("=>")
	e.node(a.Body)

	if a.Comma != nil {
		e.word(",")
	}
}

func (e *emitter) fieldValue(f *syntax.FieldValue) {
	e.attrs(f.Attrs)
	e.node(f.Member)

	if f.Colon != nil {
		e.word(":")
		e.node(f.Expr)
	}
}

func (e *emitter) block(b *syntax.Block) {
	if b == nil {
		e.fail(b)

		return
	}

	e.word("{")
	each(e, b.Stmts)
	e.word("}")
}

func (e *emitter) stmt(n any) bool {
	switch n := n.(type) {
	case *syntax.Block:
		e.block(n)
	case *syntax.Local:
		e.attrs(n.Attrs)
		e.word("let")
		e.node(n.Pat)

		if n.Init != nil {
			e.word("=")
			e.node(n.Init.Expr)

			if n.Init.Diverge != nil {
				e.word("else")
				e.node(n.Init.Diverge)
			}
		}

		e.word(";")
	case *syntax.LocalInit:
		e.word("=")
		e.node(n.Expr)

		if n.Diverge != nil {
			e.word("else")
			e.node(n.Diverge)
		}
	case *syntax.StmtMacro:
		e.attrs(n.Attrs)
		e.mac(n.Mac, "")
		e.semi(n.Semi)
	case *syntax.StmtExpr:
		e.node(n.Expr)
		e.semi(n.Semi)

	default:
		return false
	}

	return true
}
