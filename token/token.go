// Package token defines the lexical token kinds produced by the lexer and
// consumed by the parser. The tag set is closed: every token the lexer can
// emit is named here, and nothing outside this set reaches the parser.
package token

import "fmt"

// Type is the closed tag set for a lexical token.
type Type int

const (
	EOF Type = iota
	INVALID

	KEYWORD
	INTEGER
	DOUBLE
	STRING
	IDENTIFIER
	LABEL

	NOT
	AND
	OR

	GT
	GE
	LT
	LE
	EQUALS
	NEQUALS
	STRICT_EQUALS
	STRICT_NEQUALS

	ASSIGN
	PLUS_ASSIGN
	DASH_ASSIGN

	PLUS
	DASH
	STAR
	FSLASH
	PERCENT
	POW

	DOT
	INC
	DEC

	BIT_AND
	BIT_XOR
	BIT_OR
	BIT_NOT
	BIT_LSHIFT
	BIT_RSHIFT
	BIT_URSHIFT

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	SEMICOLON
	COMMA
	COLON
)

var names = map[Type]string{
	EOF: "EOF", INVALID: "INVALID",
	KEYWORD: "KEYWORD", INTEGER: "INTEGER", DOUBLE: "DOUBLE", STRING: "STRING",
	IDENTIFIER: "IDENTIFIER", LABEL: "LABEL",
	NOT: "NOT", AND: "AND", OR: "OR",
	GT: "GT", GE: "GE", LT: "LT", LE: "LE",
	EQUALS: "EQUALS", NEQUALS: "NEQUALS",
	STRICT_EQUALS: "STRICT_EQUALS", STRICT_NEQUALS: "STRICT_NEQUALS",
	ASSIGN: "ASSIGN", PLUS_ASSIGN: "PLUS_ASSIGN", DASH_ASSIGN: "DASH_ASSIGN",
	PLUS: "PLUS", DASH: "DASH", STAR: "STAR", FSLASH: "FSLASH", PERCENT: "PERCENT", POW: "POW",
	DOT: "DOT", INC: "INC", DEC: "DEC",
	BIT_AND: "BIT_AND", BIT_XOR: "BIT_XOR", BIT_OR: "BIT_OR", BIT_NOT: "BIT_NOT",
	BIT_LSHIFT: "BIT_LSHIFT", BIT_RSHIFT: "BIT_RSHIFT", BIT_URSHIFT: "BIT_URSHIFT",
	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACE: "LBRACE", RBRACE: "RBRACE",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET",
	SEMICOLON: "SEMICOLON", COMMA: "COMMA", COLON: "COLON",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords is the closed keyword set. During identifier scanning the lexer
// checks this table before classifying a lexeme as a plain IDENTIFIER.
//
// "instanceof" is reserved here even though no operator or expression
// form uses it yet: reserving the word now means a future constructor
// check can be added without a lexer change quietly turning a script's
// existing identifier named `instanceof` into a keyword out from under it.
var Keywords = map[string]bool{
	"true": true, "false": true, "undefined": true, "null": true,
	"var": true, "let": true, "const": true,
	"if": true, "else": true,
	"while": true, "do": true, "for": true, "of": true, "in": true, "instanceof": true,
	"switch": true, "case": true, "default": true,
	"break": true, "continue": true, "return": true,
	"function": true, "class": true, "super": true, "extends": true,
	"new": true, "delete": true, "typeof": true,
	"throw": true, "try": true, "catch": true,
}

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme: a tag, its source text (where applicable), and
// the position of its first character.
//
// Invariant: Text is non-empty iff Type is one of KEYWORD, INTEGER, DOUBLE,
// STRING, IDENTIFIER, or LABEL.
type Token struct {
	Type     Type
	Position Position
	Text     string
	// NumFlag is reserved for a future non-decimal integer base marker; the
	// lexer always sets it to 0 today.
	NumFlag int
}

func New(typ Type, pos Position) Token {
	return Token{Type: typ, Position: pos}
}

func NewWithText(typ Type, pos Position, text string) Token {
	return Token{Type: typ, Position: pos, Text: text}
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Position)
	}
	return fmt.Sprintf("%s@%s", t.Type, t.Position)
}
