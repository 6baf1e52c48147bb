package parser

import (
	"strconv"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/token"
	"github.com/riftlang/rift/value"
)

// precedence returns the infix binding power of tok, or 0 if tok is
// never an infix operator.
func precedence(tok token.Token) int {
	switch tok.Type {
	case token.POW:
		return 16
	case token.STAR, token.FSLASH, token.PERCENT:
		return 15
	case token.PLUS, token.DASH:
		return 14
	case token.BIT_LSHIFT, token.BIT_RSHIFT, token.BIT_URSHIFT:
		return 13
	case token.GT, token.GE, token.LT, token.LE:
		return 12
	case token.EQUALS, token.NEQUALS, token.STRICT_EQUALS, token.STRICT_NEQUALS:
		return 11
	case token.BIT_AND:
		return 10
	case token.BIT_XOR:
		return 9
	case token.BIT_OR:
		return 8
	case token.AND:
		return 7
	case token.OR:
		return 6
	case token.ASSIGN, token.PLUS_ASSIGN, token.DASH_ASSIGN:
		return 3
	default:
		return 0
	}
}

// rightAssociative reports whether tok's operator binds right-to-left:
// `**` and the assignment family.
func rightAssociative(tok token.Token) bool {
	switch tok.Type {
	case token.POW, token.ASSIGN, token.PLUS_ASSIGN, token.DASH_ASSIGN:
		return true
	default:
		return false
	}
}

const unaryPrec = 17

// parseExpression implements precedence climbing: it parses a unary/
// primary operand, then repeatedly folds in infix operators whose
// precedence is at least minPrec, recursing with prec+1 (left-assoc) or
// prec (right-assoc) for the right-hand operand.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary(minPrec)
	if err != nil {
		return nil, err
	}
	for {
		prec := precedence(p.curr)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		opTok := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		nextMin := prec + 1
		if rightAssociative(opTok) {
			nextMin = prec
		}
		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{OpTok: opTok, Left: left, Right: right}
	}
}

// parseUnary applies a prefix operator, but only when unaryPrec exceeds
// minPrec, otherwise falls through to a postfix-chained primary.
// The operand of a prefix operator is itself parsed through parseUnary so
// that a following member/index/call postfix binds to the inner operand
// (`!obj.prop` parses as `!(obj.prop)`), not to the unary expression.
func (p *Parser) parseUnary(minPrec int) (ast.Expression, error) {
	if unaryPrec > minPrec && p.isUnaryOperator() {
		opTok := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary(minPrec)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{OpTok: opTok, Operand: operand}, nil
	}
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(primary)
}

func (p *Parser) isUnaryOperator() bool {
	switch p.curr.Type {
	case token.NOT, token.BIT_NOT, token.PLUS, token.DASH:
		return true
	case token.KEYWORD:
		return p.curr.Text == "typeof"
	default:
		return false
	}
}

// parsePostfix chains member access, indexing, and calls onto expr,
// left-associatively — precedence level 20, tighter than anything the
// climbing loop handles, so it is applied directly rather than through
// parseExpression.
func (p *Parser) parsePostfix(expr ast.Expression) (ast.Expression, error) {
	for {
		switch p.curr.Type {
		case token.DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.curr.Type != token.IDENTIFIER && p.curr.Type != token.KEYWORD {
				return nil, p.errorf("expected member name after '.', found %s", p.curr.Type)
			}
			member := p.curr.Text
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr = &ast.MemberAccess{Object: expr, Member: member}
		case token.LBRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.ArrayIndex{Object: expr, Index: idx}
		case token.LPAREN:
			call, err := p.parseCallArgs(expr)
			if err != nil {
				return nil, err
			}
			expr = call
		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses `(arg1, arg2, ...)` onto callee.
func (p *Parser) parseCallArgs(callee ast.Expression) (*ast.FunctionCall, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.curr.Type != token.RPAREN {
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curr.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Callee: callee, Args: args}, nil
}

// parsePrimary handles parenthesized expressions, array/object literals,
// literals, `function(...)`, `new CALL`, and bare identifiers.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.curr
	switch tok.Type {
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACKET:
		return p.parseArrayLiteral()

	case token.LBRACE:
		return p.parseObjectLiteral()

	case token.INTEGER:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", tok.Text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: value.Int(n), Tok: tok}, nil

	case token.DOUBLE:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.errorf("invalid double literal %q", tok.Text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: value.Double(f), Tok: tok}, nil

	case token.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: value.Str(tok.Text), Tok: tok}, nil

	case token.IDENTIFIER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.VarAccess{NameTok: tok}, nil

	case token.KEYWORD:
		switch tok.Text {
		case "true":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.Literal{Value: value.Bool(true), Tok: tok}, nil
		case "false":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.Literal{Value: value.Bool(false), Tok: tok}, nil
		case "null":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.Literal{Value: value.Null(), Tok: tok}, nil
		case "undefined":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.Literal{Value: value.Undefined(), Tok: tok}, nil
		case "function":
			return p.parseFunctionLiteral()
		case "new":
			return p.parseNewExpression()
		}
	}
	return nil, p.errorf("unexpected token %s in expression", tok.Type)
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	if err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var elems []ast.Expression
	for p.curr.Type != token.RBRACKET {
		el, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.curr.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Elements: elems}, nil
}

// parseObjectLiteral parses `{ k1: v1, k2: v2 }`. A key may be an
// identifier, a string literal, or a LABEL token (whose trailing colon
// the lexer already consumed).
func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var keys []string
	var vals []ast.Expression
	for p.curr.Type != token.RBRACE {
		key, consumedColon, err := p.parseObjectKey()
		if err != nil {
			return nil, err
		}
		if !consumedColon {
			if err := p.expect(token.COLON); err != nil {
				return nil, err
			}
		}
		val, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		vals = append(vals, val)
		if p.curr.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Keys: keys, Values: vals}, nil
}

func (p *Parser) parseObjectKey() (key string, consumedColon bool, err error) {
	switch p.curr.Type {
	case token.LABEL:
		key = p.curr.Text
		if err = p.advance(); err != nil {
			return "", false, err
		}
		return key, true, nil
	case token.STRING, token.IDENTIFIER:
		key = p.curr.Text
		if err = p.advance(); err != nil {
			return "", false, err
		}
		return key, false, nil
	case token.KEYWORD:
		key = p.curr.Text
		if err = p.advance(); err != nil {
			return "", false, err
		}
		return key, false, nil
	default:
		return "", false, p.errorf("expected object key, found %s", p.curr.Type)
	}
}

// parseNewExpression parses `new Callee(args...)`. Its operand must be a
// function-call expression; the parser marks that call ReturnThis so the
// evaluator knows to yield the constructed `this` instead of the
// callee's own return value.
func (p *Parser) parseNewExpression() (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume 'new'
		return nil, err
	}
	operand, err := p.parseUnary(unaryPrec)
	if err != nil {
		return nil, err
	}
	call, ok := operand.(*ast.FunctionCall)
	if !ok {
		return nil, p.errorf("'new' requires a function-call expression")
	}
	call.ReturnThis = true
	return &ast.NewExpression{Call: call}, nil
}
