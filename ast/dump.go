package ast

import (
	"fmt"
	"strings"
)

// Dump renders a parsed program as an indented text tree, one line per
// statement, for `.riftrc.yaml`'s echo_ast toggle. It is a debugging aid,
// not a serialization format: each expression is shown as a one-line
// summary of its outermost node, and its sub-expressions are omitted.
func Dump(stmts []Statement) string {
	var b strings.Builder
	for _, s := range stmts {
		dumpStatement(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStatement(b *strings.Builder, stmt Statement, depth int) {
	if stmt == nil {
		return
	}
	indent(b, depth)
	switch s := stmt.(type) {
	case *Block:
		fmt.Fprintf(b, "Block (line %d)\n", s.Line())
		for _, child := range s.Statements {
			dumpStatement(b, child, depth+1)
		}
	case *VarDeclaration:
		names := make([]string, len(s.Decls))
		for i, d := range s.Decls {
			names[i] = d.Name
		}
		fmt.Fprintf(b, "VarDeclaration %s %s (line %d)\n", s.Qualifier, strings.Join(names, ", "), s.Line())
	case *If:
		fmt.Fprintf(b, "If %s (line %d)\n", dumpExpr(s.Cond), s.Line())
		dumpStatement(b, s.Then, depth+1)
		if s.Else != nil {
			indent(b, depth)
			b.WriteString("Else\n")
			dumpStatement(b, s.Else, depth+1)
		}
	case *While:
		fmt.Fprintf(b, "While %s (line %d)\n", dumpExpr(s.Cond), s.Line())
		dumpStatement(b, s.Body, depth+1)
	case *DoWhile:
		fmt.Fprintf(b, "DoWhile %s (line %d)\n", dumpExpr(s.Cond), s.Line())
		dumpStatement(b, s.Body, depth+1)
	case *For:
		fmt.Fprintf(b, "For %s (line %d)\n", dumpExpr(s.Cond), s.Line())
		dumpStatement(b, s.Body, depth+1)
	case *ForOf:
		fmt.Fprintf(b, "ForOf %s of %s (line %d)\n", strings.Join(s.Names, ", "), dumpExpr(s.Iterable), s.Line())
		dumpStatement(b, s.Body, depth+1)
	case *Break:
		fmt.Fprintf(b, "Break %s (line %d)\n", s.Label, s.Line())
	case *Continue:
		fmt.Fprintf(b, "Continue %s (line %d)\n", s.Label, s.Line())
	case *Return:
		fmt.Fprintf(b, "Return %s (line %d)\n", dumpExpr(s.Value), s.Line())
	case *FunctionDeclaration:
		fmt.Fprintf(b, "FunctionDeclaration %s(%s) (line %d)\n", s.Name, strings.Join(s.ArgNames, ", "), s.Line())
		dumpStatement(b, s.Body, depth+1)
	case *Throw:
		fmt.Fprintf(b, "Throw %s (line %d)\n", dumpExpr(s.Value), s.Line())
	case *TryCatch:
		fmt.Fprintf(b, "TryCatch catch(%s) (line %d)\n", s.ExceptName, s.Line())
		dumpStatement(b, s.TryBlock, depth+1)
		dumpStatement(b, s.CatchBlock, depth+1)
	case *Delete:
		fmt.Fprintf(b, "Delete %s (line %d)\n", dumpExpr(s.Target), s.Line())
	case *ExpressionStatement:
		fmt.Fprintf(b, "ExpressionStatement %s (line %d)\n", dumpExpr(s.Expr), s.Line())
	default:
		fmt.Fprintf(b, "%T (line %d)\n", stmt, stmt.Line())
	}
}

// dumpExpr renders an expression as a short one-line summary; it never
// recurses more than one level since the dump is meant to be skimmed, not
// round-tripped.
func dumpExpr(expr Expression) string {
	if expr == nil {
		return "<nil>"
	}
	switch e := expr.(type) {
	case *Literal:
		return fmt.Sprintf("Literal(%s)", e.Value.TypeOf())
	case *VarAccess:
		return fmt.Sprintf("VarAccess(%s)", e.Name())
	case *MemberAccess:
		return fmt.Sprintf("MemberAccess(.%s)", e.Member)
	case *ArrayIndex:
		return "ArrayIndex"
	case *BinaryOp:
		return fmt.Sprintf("BinaryOp(%s)", e.OpTok.Text)
	case *UnaryOp:
		return fmt.Sprintf("UnaryOp(%s)", e.OpTok.Text)
	case *FunctionCall:
		return fmt.Sprintf("FunctionCall(%d args)", len(e.Args))
	case *NewExpression:
		return "NewExpression"
	case *ArrayLiteral:
		return fmt.Sprintf("ArrayLiteral(%d elems)", len(e.Elements))
	case *ObjectLiteral:
		return fmt.Sprintf("ObjectLiteral(%d keys)", len(e.Keys))
	case *FunctionLiteral:
		return fmt.Sprintf("FunctionLiteral(%s)", strings.Join(e.ArgNames, ", "))
	default:
		return fmt.Sprintf("%T", expr)
	}
}
