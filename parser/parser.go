// Package parser implements a precedence-climbing (Pratt) parser that
// turns a token stream into the ast package's node types. It keeps a
// two-token lookahead (curr/next plus an advance() that slides
// the window) and treats a compile-time error as fatal to the whole
// parse: every parse method returns (node, error) and the first error
// wins, the idiomatic Go way of modeling "stop at the first failure"
// rather than accumulating into an Errors slice.
package parser

import (
	"fmt"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/lexer"
	"github.com/riftlang/rift/token"
)

// Parser holds the token lookahead window and the loop-depth counter used
// to reject stray break/continue at parse time.
type Parser struct {
	lex       *lexer.Lexer
	curr      token.Token
	next      token.Token
	loopDepth int
}

// New creates a parser over src and primes the two-token lookahead.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse consumes the whole token stream and returns the program as a
// single Block covering top-level source.
func Parse(src string) (*ast.Block, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

func (p *Parser) advance() error {
	p.curr = p.next
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.next = tok
	return nil
}

func (p *Parser) at(t token.Type) bool     { return p.curr.Type == t }
func (p *Parser) nextAt(t token.Type) bool { return p.next.Type == t }

// expect checks curr's type, consumes it, and reports a CompileError
// naming the offending token otherwise.
func (p *Parser) expect(t token.Type) error {
	if p.curr.Type != t {
		return p.errorf("expected %s, found %s", t, p.curr.Type)
	}
	return p.advance()
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &errs.CompileError{
		Message:     fmt.Sprintf(format, args...),
		TokenText:   p.curr.Text,
		TokenLine:   p.curr.Position.Line,
		TokenColumn: p.curr.Position.Column,
	}
}

// ParseProgram repeatedly parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	startLine := p.curr.Position.Line
	var stmts []ast.Statement
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return ast.NewBlock(startLine, stmts), nil
}
