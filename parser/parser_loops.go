package parser

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/token"
	"github.com/riftlang/rift/value"
)

// withLoop increments the loop-depth counter around fn, the mechanism
// used to reject a stray break/continue outside any loop.
func (p *Parser) withLoop(fn func() (ast.Statement, error)) (ast.Statement, error) {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return fn()
}

func (p *Parser) parseWhileStatement(label string) (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.withLoop(p.parseStatement)
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(line, cond, body, label), nil
}

func (p *Parser) parseDoWhileStatement(label string) (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.withLoop(p.parseStatement)
	if err != nil {
		return nil, err
	}
	if !(p.curr.Type == token.KEYWORD && p.curr.Text == "while") {
		return nil, p.errorf("expected 'while' after do-block")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewDoWhile(line, body, cond, label), nil
}

// parseForStatement recognizes the `for (decl of expr) body` shape
// (detected when `of` follows the declaration) and otherwise falls back
// to the classical three-clause form. A decl is `let`/`const` followed by
// one or two names, or the bare names on their own with no qualifier at
// all (`for (key of o)`), which binds the same as `let` would.
func (p *Parser) parseForStatement(label string) (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	lexSnap := p.lex.Snapshot()
	currSnap, nextSnap := p.curr, p.next

	qual := ast.QualLet
	hasQualifier := p.curr.Type == token.KEYWORD && (p.curr.Text == "let" || p.curr.Text == "const")
	if hasQualifier {
		qual, _ = ast.QualifierFromKeyword(p.curr.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if hasQualifier || p.curr.Type == token.IDENTIFIER {
		names, ok, err := p.tryParseForOfNames()
		if err != nil {
			return nil, err
		}
		if ok {
			iterable, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			body, err := p.withLoop(p.parseStatement)
			if err != nil {
				return nil, err
			}
			return ast.NewForOf(line, qual, names, iterable, body, label), nil
		}
	}
	p.lex.Restore(lexSnap)
	p.curr, p.next = currSnap, nextSnap

	return p.parseClassicForStatement(line, label)
}

// tryParseForOfNames speculatively parses the declarator list of a
// for-of header (one or two plain names) and reports whether the `of`
// keyword follows. On a false result the caller must restore parser
// state from its own snapshot; this helper does not roll back the
// lexer's output for curr/next since plain names consume cleanly.
func (p *Parser) tryParseForOfNames() (names []string, ok bool, err error) {
	if p.curr.Type != token.IDENTIFIER {
		return nil, false, nil
	}
	first := p.curr.Text
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	names = []string{first}
	if p.curr.Type == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		if p.curr.Type != token.IDENTIFIER {
			return nil, false, nil
		}
		names = append(names, p.curr.Text)
		if err := p.advance(); err != nil {
			return nil, false, err
		}
	}
	if p.curr.Type == token.KEYWORD && p.curr.Text == "of" {
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		return names, true, nil
	}
	return nil, false, nil
}

func (p *Parser) parseClassicForStatement(line int, label string) (ast.Statement, error) {
	var initStmt ast.Statement
	if p.curr.Type != token.SEMICOLON {
		if p.curr.Type == token.KEYWORD && (p.curr.Text == "var" || p.curr.Text == "let" || p.curr.Text == "const") {
			decl, err := p.parseVarDeclaration()
			if err != nil {
				return nil, err
			}
			initStmt = decl
		} else {
			stmt, err := p.parseExpressionStatement()
			if err != nil {
				return nil, err
			}
			initStmt = stmt
		}
	} else {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	var cond ast.Expression
	if p.curr.Type != token.SEMICOLON {
		c, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		cond = c
	} else {
		cond = &ast.Literal{Value: value.Bool(true), Tok: p.curr}
	}
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	var incr ast.Statement
	if p.curr.Type != token.RPAREN {
		incrLine := p.curr.Position.Line
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		incr = ast.NewExpressionStatement(incrLine, expr)
	} else {
		incr = ast.NewExpressionStatement(p.curr.Position.Line, nil)
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.withLoop(p.parseStatement)
	if err != nil {
		return nil, err
	}
	return ast.NewFor(line, initStmt, cond, incr, body, label), nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	if p.loopDepth == 0 {
		return nil, p.errorf("'break' outside any loop")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var label string
	if p.curr.Type == token.IDENTIFIER {
		label = p.curr.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewBreak(line, label), nil
}

func (p *Parser) parseContinueStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	if p.loopDepth == 0 {
		return nil, p.errorf("'continue' outside any loop")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var label string
	if p.curr.Type == token.IDENTIFIER {
		label = p.curr.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewContinue(line, label), nil
}
