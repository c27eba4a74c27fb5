package compiler

import (
	"fmt"
	"io"
)

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line

	syms   *SymbolTable
	opts   Options
	tokens []Token
}

func newLexer(src string, syms *SymbolTable, opts Options) *Lexer {
	return &Lexer{src: []rune(src), line: 1, syms: syms, opts: opts.withDefaults()}
}

func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isLetter(r rune) bool     { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isIdentStart(r rune) bool { return isLetter(r) || r == '_' || r == '@' }
func isIdentPart(r rune) bool  { return isLetter(r) || isDigit(r) || r == '_' }
func isNumberPart(r rune) bool { return isDigit(r) || r == '.' || r == 'E' }

// isSpace matches the C locale's isspace minus '\n', which is significant.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) emit(tt TokenType, lexeme string, line int) *Token {
	tok := Token{Type: tt, Line: line}
	if tt.Interned() {
		tok.Symbol = l.syms.Intern(lexeme, tt)
	} else {
		tok.Variant = variantOf(tt, lexeme)
	}
	l.tokens = append(l.tokens, tok)
	return &l.tokens[len(l.tokens)-1]
}

func (l *Lexer) checkLength(start, line int) error {
	if n := l.pos - start; n > l.opts.MaxLexemeLength {
		prefix := string(l.src[start : start+l.opts.MaxLexemeLength])
		return newError(LexicalError, ErrLexemeTooLong, line, "%d characters (%s...)", n, prefix)
	}
	return nil
}

// scanNewline emits a NEWLINE token whose Variant counts the tabs and
// spaces that open the following line. The '\n' must still be at l.peek().
func (l *Lexer) scanNewline() {
	line := l.line
	l.advance()
	indent := 0
	for r := l.peek(); r == ' ' || r == '\t'; r = l.peek() {
		l.advance()
		indent++
	}
	tok := l.emit(NEWLINE, "\n", line)
	tok.Variant = indent
}

// scanString collects a string literal up to and including the closing
// quote. An unterminated literal runs to the end of input.
func (l *Lexer) scanString() error {
	line := l.line
	start := l.pos
	l.advance() // opening "
	for !l.atEnd() {
		if l.advance() == '"' {
			break
		}
	}
	if err := l.checkLength(start, line); err != nil {
		return err
	}
	lexeme := string(l.src[start:l.pos])
	if l.opts.StripStringQuotes {
		lexeme = lexeme[1:]
		if n := len(lexeme); n > 0 && lexeme[n-1] == '"' {
			lexeme = lexeme[:n-1]
		}
	}
	l.emit(STRING, lexeme, line)
	return nil
}

// scanIdent collects an identifier or keyword.
// The first character (letter, '_' or '@') must still be at l.peek().
func (l *Lexer) scanIdent() error {
	line := l.line
	start := l.pos
	l.advance()
	for isIdentPart(l.peek()) {
		l.advance()
	}
	if err := l.checkLength(start, line); err != nil {
		return err
	}
	lexeme := string(l.src[start:l.pos])
	if kw, ok := keywords[lexeme]; ok {
		l.emit(kw, lexeme, line)
		return nil
	}
	l.emit(IDENTIFIER, lexeme, line)
	return nil
}

// scanNumber collects the maximal run of digits, '.' and 'E' and lets
// ClassifyNumber decide between INTEGER and REAL. Signs are never part of
// the run; they are lexed as ADDSUB tokens.
func (l *Lexer) scanNumber() error {
	line := l.line
	start := l.pos
	for isNumberPart(l.peek()) {
		l.advance()
	}
	if err := l.checkLength(start, line); err != nil {
		return err
	}
	lexeme := string(l.src[start:l.pos])
	switch ClassifyNumber(lexeme) {
	case NumberInteger:
		l.emit(INTEGER, lexeme, line)
	case NumberFloat:
		l.emit(REAL, lexeme, line)
	default:
		return newError(LexicalError, ErrInvalidNumber, line, "%s", lexeme)
	}
	return nil
}

// scanOperator handles '=', '<' and '>', which need one rune of lookahead.
func (l *Lexer) scanOperator(ch rune, line int) {
	l.advance()
	next := l.peek()
	switch {
	case ch == '=' && next == '=':
		l.advance()
		l.emit(LOGICAL, "==", line)
	case ch == '=':
		l.emit(ASSIGNMENT, "=", line)
	case next == ch: // << >>
		l.advance()
		l.emit(SHIFT, string([]rune{ch, ch}), line)
	case next == '=' || (ch == '<' && next == '>'): // <= >= <>
		l.advance()
		l.emit(LOGICAL, string([]rune{ch, next}), line)
	default:
		l.emit(LOGICAL, string(ch), line)
	}
}

// single maps one-character tokens to their category.
var single = map[rune]TokenType{
	'+': ADDSUB, '-': ADDSUB,
	'*': MULDIV, '/': MULDIV, '%': MULDIV,
	'!': UNARY, '~': UNARY,
	'&': BITMATH, '|': BITMATH, '^': BITMATH,
	'(': LPAREN, ')': RPAREN,
	'{': LCURLY, '}': RCURLY,
	'[': LSQUARE, ']': RSQUARE,
	',': COMMA, ':': COLON,
}

// next scans one lexical element; it may emit nothing (spaces, comments).
func (l *Lexer) next() error {
	ch := l.peek()
	line := l.line

	switch {
	case isSpace(ch):
		l.advance()
	case ch == '\n':
		l.scanNewline()
	case ch == '#':
		for !l.atEnd() && l.peek() != '\n' {
			l.advance()
		}
	case ch == '=' || ch == '<' || ch == '>':
		l.scanOperator(ch, line)
	case ch == '"':
		return l.scanString()
	case isIdentStart(ch):
		return l.scanIdent()
	case isDigit(ch):
		return l.scanNumber()
	default:
		tt, ok := single[ch]
		if !ok {
			return newError(LexicalError, ErrUnexpectedChar, line, "%q", ch)
		}
		l.advance()
		l.emit(tt, string(ch), line)
	}
	return nil
}

// Lex tokenises src, interning identifiers and literals into syms.
// No end-of-input token is appended: the sequence simply ends.
// It returns a non-nil *Error on the first lexical error and no tokens.
func Lex(src string, syms *SymbolTable, opts Options) ([]Token, error) {
	l := newLexer(src, syms, opts)
	for !l.atEnd() {
		if err := l.next(); err != nil {
			return nil, withSource(err, src)
		}
	}
	return l.tokens, nil
}

// LexReader reads r to the end and tokenises its contents. The reader is not
// retained once the token sequence has been produced.
func LexReader(r io.Reader, syms *SymbolTable, opts Options) ([]Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Lex(string(data), syms, opts)
}
