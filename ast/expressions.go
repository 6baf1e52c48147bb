package ast

import "github.com/riftlang/rift/value"

// Literal is a literal integer, double, string, boolean, null, or
// undefined value baked directly into the AST at parse time.
type Literal struct {
	Value value.Value
	Tok   Token
}

func (*Literal) exprNode() {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Elements []Expression
}

func (*ArrayLiteral) exprNode() {}

// ObjectLiteral is `{k1: v1, k2: v2, ...}`. Keys and Values are parallel
// slices rather than a map so property insertion order survives parsing.
type ObjectLiteral struct {
	Keys   []string
	Values []Expression
}

func (*ObjectLiteral) exprNode() {}

// VarAccess reads (or, as an l-value, is rewritten through) a named
// binding resolved via the environment chain.
type VarAccess struct {
	NameTok Token
}

func (*VarAccess) exprNode() {}
func (v *VarAccess) Name() string { return v.NameTok.Text }

// MemberAccess is `object.member`.
type MemberAccess struct {
	Object Expression
	Member string
}

func (*MemberAccess) exprNode() {}

// ArrayIndex is `object[index]`. Whether this resolves to ARRAY or
// OBJECT access is a runtime decision based on the index value's type,
// not something the parser can know.
type ArrayIndex struct {
	Object Expression
	Index  Expression
}

func (*ArrayIndex) exprNode() {}

// FunctionCall is `callee(args...)`. ReturnThis is set by the parser only
// when this call is the operand of a `new` expression.
type FunctionCall struct {
	Callee     Expression
	Args       []Expression
	ReturnThis bool
}

func (*FunctionCall) exprNode() {}

// NewExpression is `new Callee(args...)`; its Call field is always a
// FunctionCall with ReturnThis set.
type NewExpression struct {
	Call *FunctionCall
}

func (*NewExpression) exprNode() {}

// BinaryOp is any infix operator from the precedence table, including
// assignment (`=`, `+=`, `-=`) which is parsed as a right-associative
// binary operator whose Left must be an l-value.
type BinaryOp struct {
	OpTok Token
	Left  Expression
	Right Expression
}

func (*BinaryOp) exprNode() {}

// UnaryOp is a prefix operator: `! ~ + - typeof`.
type UnaryOp struct {
	OpTok   Token
	Operand Expression
}

func (*UnaryOp) exprNode() {}

// FunctionLiteral is an anonymous `function(args){...}` expression. It is
// distinct from the FunctionDeclaration statement: the declaration binds
// a name in the enclosing scope, the literal just produces a FUNCTION
// value.
type FunctionLiteral struct {
	ArgNames []string
	Body     *Block
}

func (*FunctionLiteral) exprNode() {}
