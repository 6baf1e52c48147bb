// Package lexer scans script source text into a flat token stream.
//
// The lexer is a simple left-to-right scanner over a byte index and a
// token.Position. Each call to Next skips leading whitespace and comments,
// then dispatches on the current byte to produce exactly one token,
// advancing past that token's last character. The scanner never looks
// beyond a single byte of lookahead beyond what Next's dispatch
// itself consumes for maximal-munch punctuation.
package lexer

import (
	"fmt"
	"strings"

	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/token"
)

// Lexer holds the scanning state for one source string.
type Lexer struct {
	src string
	pos int
	len int

	line int
	col  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, len: len(src), line: 1, col: 1}
}

func (l *Lexer) current() byte {
	if l.pos >= l.len {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= l.len {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes the current byte and moves to the next, tracking
// line/column. Each per-token maker calls it past the last byte of its
// own token, so each call to Next consumes exactly one token.
func (l *Lexer) advance() {
	if l.current() == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) pos0() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

// Snapshot and Restore let a caller speculatively scan ahead (the parser
// uses this to try the for-of header shape before falling back to the
// classical three-clause form) and rewind on a failed guess.
func (l *Lexer) Snapshot() Lexer  { return *l }
func (l *Lexer) Restore(s Lexer) { *l = s }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.current() == ' ' || l.current() == '\t' || l.current() == '\r' || l.current() == '\n':
			l.advance()
		case l.current() == '/' && l.peek() == '/':
			for l.current() != '\n' && l.current() != 0 {
				l.advance()
			}
		case l.current() == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for !(l.current() == '*' && l.peek() == '/') && l.current() != 0 {
				l.advance()
			}
			if l.current() != 0 {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

// Next scans and returns the next token in the stream. Once EOF has been
// returned, further calls keep returning EOF.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespaceAndComments()
	start := l.pos0()
	c := l.current()

	if c == 0 {
		return token.New(token.EOF, start), nil
	}

	switch {
	case isAlpha(c):
		return l.readIdentifier(start)
	case isDigit(c):
		return l.readNumber(start)
	case c == '\'' || c == '"':
		return l.readString(start, c)
	}

	// Multi-char punctuation by maximal munch with one-char peek.
	switch c {
	case '>':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return token.New(token.GE, start), nil
		}
		if l.current() == '>' {
			l.advance()
			if l.current() == '>' {
				l.advance()
				return token.New(token.BIT_URSHIFT, start), nil
			}
			return token.New(token.BIT_RSHIFT, start), nil
		}
		return token.New(token.GT, start), nil
	case '<':
		l.advance()
		if l.current() == '=' {
			l.advance()
			return token.New(token.LE, start), nil
		}
		if l.current() == '<' {
			l.advance()
			return token.New(token.BIT_LSHIFT, start), nil
		}
		return token.New(token.LT, start), nil
	case '=':
		l.advance()
		if l.current() == '=' {
			l.advance()
			if l.current() == '=' {
				l.advance()
				return token.New(token.STRICT_EQUALS, start), nil
			}
			return token.New(token.EQUALS, start), nil
		}
		return token.New(token.ASSIGN, start), nil
	case '!':
		l.advance()
		if l.current() == '=' {
			l.advance()
			if l.current() == '=' {
				l.advance()
				return token.New(token.STRICT_NEQUALS, start), nil
			}
			return token.New(token.NEQUALS, start), nil
		}
		return token.New(token.NOT, start), nil
	case '&':
		l.advance()
		if l.current() == '&' {
			l.advance()
			return token.New(token.AND, start), nil
		}
		return token.New(token.BIT_AND, start), nil
	case '|':
		l.advance()
		if l.current() == '|' {
			l.advance()
			return token.New(token.OR, start), nil
		}
		return token.New(token.BIT_OR, start), nil
	case '+':
		l.advance()
		if l.current() == '+' {
			l.advance()
			return token.New(token.INC, start), nil
		}
		if l.current() == '=' {
			l.advance()
			return token.New(token.PLUS_ASSIGN, start), nil
		}
		return token.New(token.PLUS, start), nil
	case '-':
		l.advance()
		if l.current() == '-' {
			l.advance()
			return token.New(token.DEC, start), nil
		}
		if l.current() == '=' {
			l.advance()
			return token.New(token.DASH_ASSIGN, start), nil
		}
		return token.New(token.DASH, start), nil
	case '*':
		l.advance()
		if l.current() == '*' {
			l.advance()
			return token.New(token.POW, start), nil
		}
		return token.New(token.STAR, start), nil
	case '/':
		l.advance()
		return token.New(token.FSLASH, start), nil
	case '%':
		l.advance()
		return token.New(token.PERCENT, start), nil
	case '^':
		l.advance()
		return token.New(token.BIT_XOR, start), nil
	case '~':
		l.advance()
		return token.New(token.BIT_NOT, start), nil
	case '.':
		l.advance()
		return token.New(token.DOT, start), nil
	case '(':
		l.advance()
		return token.New(token.LPAREN, start), nil
	case ')':
		l.advance()
		return token.New(token.RPAREN, start), nil
	case '{':
		l.advance()
		return token.New(token.LBRACE, start), nil
	case '}':
		l.advance()
		return token.New(token.RBRACE, start), nil
	case '[':
		l.advance()
		return token.New(token.LBRACKET, start), nil
	case ']':
		l.advance()
		return token.New(token.RBRACKET, start), nil
	case ';':
		l.advance()
		return token.New(token.SEMICOLON, start), nil
	case ',':
		l.advance()
		return token.New(token.COMMA, start), nil
	case ':':
		l.advance()
		return token.New(token.COLON, start), nil
	}

	bad := string(c)
	l.advance()
	return token.New(token.INVALID, start), &errs.CompileError{
		Message: fmt.Sprintf("unexpected character %q", bad), TokenText: bad,
		TokenLine: start.Line, TokenColumn: start.Column,
	}
}

func (l *Lexer) readIdentifier(start token.Position) (token.Token, error) {
	var b strings.Builder
	for isAlnum(l.current()) {
		b.WriteByte(l.current())
		l.advance()
	}
	text := b.String()

	if token.Keywords[text] {
		return token.NewWithText(token.KEYWORD, start, text), nil
	}
	if l.current() == ':' {
		l.advance()
		return token.NewWithText(token.LABEL, start, text), nil
	}
	return token.NewWithText(token.IDENTIFIER, start, text), nil
}

func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	var b strings.Builder
	isDouble := false

	for isDigit(l.current()) {
		b.WriteByte(l.current())
		l.advance()
	}

	if l.current() == '.' {
		isDouble = true
		b.WriteByte(l.current())
		l.advance()
		for isDigit(l.current()) {
			b.WriteByte(l.current())
			l.advance()
		}
		if l.current() == '.' {
			return token.Token{}, &errs.CompileError{Message: "Too many decimals",
				TokenLine: start.Line, TokenColumn: start.Column}
		}
	}

	if l.current() == 'e' || l.current() == 'E' {
		isDouble = true
		b.WriteByte(l.current())
		l.advance()
		if l.current() == '+' || l.current() == '-' {
			b.WriteByte(l.current())
			l.advance()
		}
		if !isDigit(l.current()) {
			return token.Token{}, &errs.CompileError{Message: "Exponent specifier must be followed by number",
				TokenLine: start.Line, TokenColumn: start.Column}
		}
		for isDigit(l.current()) {
			b.WriteByte(l.current())
			l.advance()
		}
		if l.current() == 'e' || l.current() == 'E' {
			return token.Token{}, &errs.CompileError{Message: "Too many exponent specifiers",
				TokenLine: start.Line, TokenColumn: start.Column}
		}
	}

	if isDouble {
		return token.NewWithText(token.DOUBLE, start, b.String()), nil
	}
	return token.NewWithText(token.INTEGER, start, b.String()), nil
}

func (l *Lexer) readString(start token.Position, quote byte) (token.Token, error) {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		c := l.current()
		if c == 0 {
			return token.Token{}, &errs.CompileError{Message: "unterminated string literal: missing closing quote",
				TokenLine: start.Line, TokenColumn: start.Column}
		}
		if c == '\n' {
			return token.Token{}, &errs.CompileError{Message: "unterminated string literal: newline in string",
				TokenLine: start.Line, TokenColumn: start.Column}
		}
		if c == quote {
			l.advance()
			break
		}
		if c == '\\' {
			l.advance()
			esc := l.current()
			var r byte
			switch esc {
			case 'b':
				r = '\b'
			case 'f':
				r = '\f'
			case 'n':
				r = '\n'
			case 'r':
				r = '\r'
			case 't':
				r = '\t'
			case 'v':
				r = '\v'
			case '0':
				r = 0
			case '\'':
				r = '\''
			case '"':
				r = '"'
			case '\\':
				r = '\\'
			default:
				return token.Token{}, &errs.CompileError{Message: fmt.Sprintf("unknown escape sequence \\%c", esc),
					TokenLine: start.Line, TokenColumn: start.Column}
			}
			b.WriteByte(r)
			l.advance()
			continue
		}
		b.WriteByte(c)
		l.advance()
	}
	return token.NewWithText(token.STRING, start, b.String()), nil
}

// Tokenize scans the entire source and returns every token up to and
// including EOF, or the first error encountered.
func Tokenize(src string) ([]token.Token, error) {
	lx := New(src)
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out, nil
		}
	}
}
