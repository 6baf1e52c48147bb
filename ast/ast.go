// Package ast defines the closed set of expression and statement node
// types the parser produces and the evaluator walks, kept separate from
// the parser package so the grammar's shape and the recursive-descent
// code that builds it don't blur together in one file.
package ast

import "github.com/riftlang/rift/token"

// Expression is any node that produces a value when evaluated. The
// evaluator's l-value protocol is a property of how a node is
// *evaluated*, not of the node's shape, so Expression stays a plain
// marker interface — VarAccess, MemberAccess, and ArrayIndex look just
// like any other expression here.
type Expression interface {
	exprNode()
}

// Statement is any node that executes for effect and may produce a
// control-flow signal (break/continue/return) or an exception. Every
// statement carries its source line for the runtime traceback.
type Statement interface {
	stmtNode()
	Line() int
}

// stmtBase supplies the Line() accessor every concrete statement embeds.
type stmtBase struct {
	line int
}

func (b stmtBase) Line() int { return b.line }

// Qualifier is the declaration keyword a VarDeclaration or a ForOf was
// introduced with.
type Qualifier int

const (
	QualVar Qualifier = iota
	QualLet
	QualConst
)

func (q Qualifier) String() string {
	switch q {
	case QualVar:
		return "var"
	case QualLet:
		return "let"
	case QualConst:
		return "const"
	default:
		return "?"
	}
}

// QualifierFromKeyword maps a lexed keyword's text to a Qualifier.
func QualifierFromKeyword(text string) (Qualifier, bool) {
	switch text {
	case "var":
		return QualVar, true
	case "let":
		return QualLet, true
	case "const":
		return QualConst, true
	default:
		return 0, false
	}
}

// Token is re-exported for convenience so callers constructing AST nodes
// by hand (tests, tooling) don't need a second import.
type Token = token.Token
