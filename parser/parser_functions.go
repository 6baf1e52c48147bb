package parser

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/token"
)

// parseParamList parses `(name1, name2, ...)`.
func (p *Parser) parseParamList() ([]string, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var names []string
	for p.curr.Type != token.RPAREN {
		if p.curr.Type != token.IDENTIFIER {
			return nil, p.errorf("expected parameter name, found %s", p.curr.Type)
		}
		names = append(names, p.curr.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
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
	return names, nil
}

// parseFunctionLiteral parses the anonymous `function(args){...}` primary
// expression form (distinct from the named FunctionDeclaration statement).
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume 'function'
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
	return &ast.FunctionLiteral{ArgNames: argNames, Body: body}, nil
}
