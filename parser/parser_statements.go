package parser

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/token"
)

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.curr.Type == token.SEMICOLON:
		line := p.curr.Position.Line
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(line, nil), nil

	case p.curr.Type == token.LBRACE:
		return p.parseBlock()

	case p.curr.Type == token.LABEL:
		return p.parseLabeledStatement()

	case p.curr.Type == token.KEYWORD:
		switch p.curr.Text {
		case "var", "let", "const":
			return p.parseVarDeclaration()
		case "if":
			return p.parseIfStatement()
		case "while":
			return p.parseWhileStatement("")
		case "do":
			return p.parseDoWhileStatement("")
		case "for":
			return p.parseForStatement("")
		case "break":
			return p.parseBreakStatement()
		case "continue":
			return p.parseContinueStatement()
		case "return":
			return p.parseReturnStatement()
		case "function":
			return p.parseFunctionDeclaration()
		case "throw":
			return p.parseThrowStatement()
		case "try":
			return p.parseTryCatchStatement()
		case "delete":
			return p.parseDeleteStatement()
		}
	}
	return p.parseExpressionStatement()
}

// parseLabeledStatement handles `name: while|do|for ...`, attaching the
// label to the loop it prefixes. Any other use of a LABEL token in
// statement position is a compile-time error.
func (p *Parser) parseLabeledStatement() (ast.Statement, error) {
	label := p.curr.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curr.Type != token.KEYWORD {
		return nil, p.errorf("label %q must prefix a loop statement", label)
	}
	switch p.curr.Text {
	case "while":
		return p.parseWhileStatement(label)
	case "do":
		return p.parseDoWhileStatement(label)
	case "for":
		return p.parseForStatement(label)
	default:
		return nil, p.errorf("label %q must prefix a loop statement", label)
	}
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	line := p.curr.Position.Line
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for p.curr.Type != token.RBRACE {
		if p.curr.Type == token.EOF {
			return nil, p.errorf("unterminated block: expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewBlock(line, stmts), nil
}

// consumeSemicolon consumes an optional trailing ';'. The grammar treats
// a statement terminator loosely: a following '}' or EOF also ends a
// statement.
func (p *Parser) consumeSemicolon() error {
	if p.curr.Type == token.SEMICOLON {
		return p.advance()
	}
	return nil
}

// parseVarDeclaration parses `var|let|const d1, d2, ...;`. Each
// declarator must be a plain name or `name = expr`; any other shape is a
// compile-time error.
func (p *Parser) parseVarDeclaration() (*ast.VarDeclaration, error) {
	line := p.curr.Position.Line
	qual, ok := ast.QualifierFromKeyword(p.curr.Text)
	if !ok {
		return nil, p.errorf("expected var, let, or const")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var decls []ast.Declarator
	for {
		if p.curr.Type != token.IDENTIFIER {
			return nil, p.errorf("expected identifier in declaration, found %s", p.curr.Type)
		}
		name := p.curr.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		var init ast.Expression
		if p.curr.Type == token.ASSIGN {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression(4) // above assignment's own precedence
			if err != nil {
				return nil, err
			}
			init = expr
		}
		decls = append(decls, ast.Declarator{Name: name, Init: init})
		if p.curr.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(line, qual, decls), nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
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
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Statement
	if p.curr.Type == token.KEYWORD && p.curr.Text == "else" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseStmt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(line, cond, then, elseStmt), nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	var val ast.Expression
	if p.curr.Type != token.SEMICOLON && p.curr.Type != token.RBRACE && p.curr.Type != token.EOF {
		v, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		val = v
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewReturn(line, val), nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	val, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewThrow(line, val), nil
}

func (p *Parser) parseTryCatchStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if !(p.curr.Type == token.KEYWORD && p.curr.Text == "catch") {
		return nil, p.errorf("expected 'catch' after try block")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if p.curr.Type != token.IDENTIFIER {
		return nil, p.errorf("expected exception name in catch clause")
	}
	name := p.curr.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewTryCatch(line, tryBlock, name, catchBlock), nil
}

func (p *Parser) parseDeleteStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	target, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewDelete(line, target), nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	line := p.curr.Position.Line
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curr.Type != token.IDENTIFIER {
		return nil, p.errorf("expected function name, found %s", p.curr.Type)
	}
	name := p.curr.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	argNames, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(line, name, argNames, body), nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	line := p.curr.Position.Line
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(line, expr), nil
}
