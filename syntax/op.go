package syntax

// BinOpAdd returns the + operator. The operator tokens themselves are
// [BinOp] values, so BinOpAdd() == Plus{}.
func BinOpAdd() BinOp { return Plus{} }

// BinOpSub returns the - operator.
func BinOpSub() BinOp { return Minus{} }

// BinOpMul returns the * operator.
func BinOpMul() BinOp { return Star{} }

// BinOpDiv returns the / operator.
func BinOpDiv() BinOp { return Slash{} }

// BinOpRem returns the % operator.
func BinOpRem() BinOp { return Percent{} }

// BinOpAnd returns the && operator.
func BinOpAnd() BinOp { return AndAnd{} }

// BinOpOr returns the || operator.
func BinOpOr() BinOp { return OrOr{} }

// BinOpBitXor returns the ^ operator.
func BinOpBitXor() BinOp { return Caret{} }

// BinOpBitAnd returns the & operator.
func BinOpBitAnd() BinOp { return And{} }

// BinOpBitOr returns the | operator.
func BinOpBitOr() BinOp { return Or{} }

// BinOpShl returns the << operator.
func BinOpShl() BinOp { return Shl{} }

// BinOpShr returns the >> operator.
func BinOpShr() BinOp { return Shr{} }

// BinOpEq returns the == operator.
func BinOpEq() BinOp { return EqEq{} }

// BinOpLt returns the < operator.
func BinOpLt() BinOp { return Lt{} }

// BinOpLe returns the <= operator.
func BinOpLe() BinOp { return Le{} }

// BinOpNe returns the != operator.
func BinOpNe() BinOp { return Ne{} }

// BinOpGe returns the >= operator.
func BinOpGe() BinOp { return Ge{} }

// BinOpGt returns the > operator.
func BinOpGt() BinOp { return Gt{} }

// BinOpAddAssign returns the += operator.
func BinOpAddAssign() BinOp { return PlusEq{} }

// BinOpSubAssign returns the -= operator.
func BinOpSubAssign() BinOp { return MinusEq{} }

// BinOpMulAssign returns the *= operator.
func BinOpMulAssign() BinOp { return StarEq{} }

// BinOpDivAssign returns the /= operator.
func BinOpDivAssign() BinOp { return SlashEq{} }

// BinOpRemAssign returns the %= operator.
func BinOpRemAssign() BinOp { return PercentEq{} }

// BinOpBitXorAssign returns the ^= operator.
func BinOpBitXorAssign() BinOp { return CaretEq{} }

// BinOpBitAndAssign returns the &= operator.
func BinOpBitAndAssign() BinOp { return AndEq{} }

// BinOpBitOrAssign returns the |= operator.
func BinOpBitOrAssign() BinOp { return OrEq{} }

// BinOpShlAssign returns the <<= operator.
func BinOpShlAssign() BinOp { return ShlEq{} }

// BinOpShrAssign returns the >>= operator.
func BinOpShrAssign() BinOp { return ShrEq{} }

// UnOpDeref returns the * operator.
func UnOpDeref() UnOp { return Star{} }

// UnOpNot returns the ! operator.
func UnOpNot() UnOp { return Not{} }

// UnOpNeg returns the - operator.
func UnOpNeg() UnOp { return Minus{} }
