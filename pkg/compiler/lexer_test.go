package compiler

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// render turns a token sequence into its dump strings.
func render(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []string{},
		},
		{
			name:  "Assignment",
			input: "x = 1 + 2\n",
			expected: []string{
				"(x, identifier)", "(=, assignment)", "(1, integer)",
				"(+, add/sub)", "(2, integer)", `{\n 0}`,
			},
		},
		{
			name:     "Equality is one token",
			input:    "a == b",
			expected: []string{"(a, identifier)", "(==, logical)", "(b, identifier)"},
		},
		{
			name:  "Comparison and shift operators",
			input: "< > <= >= <> << >> == =",
			expected: []string{
				"(<, logical)", "(>, logical)", "(<=, logical)", "(>=, logical)", "(<>, logical)",
				"(<<, shift)", "(>>, shift)", "(==, logical)", "(=, assignment)",
			},
		},
		{
			name:  "Single character operators",
			input: "+-*/%!~&|^()[]{},:",
			expected: []string{
				"(+, add/sub)", "(-, add/sub)",
				"(*, mul/div)", "(/, mul/div)", "(%, mul/div)",
				"(!, unary)", "(~, unary)",
				"(&, bitmath)", "(|, bitmath)", "(^, bitmath)",
				"((, lparen)", "(), rparen)", "([, lsquare)", "(], rsquare)",
				"({, lcurly)", "(}, rcurly)", "(,, comma)", "(:, colon)",
			},
		},
		{
			name:  "Keywords and identifiers",
			input: "if elif else while until for in to step def var return none true false break continue iffy _x @name x1",
			expected: []string{
				"(if)", "(elif)", "(else)", "(while)", "(until)", "(for)", "(in)", "(to)", "(step)",
				"(def)", "(var)", "(return)", "(none)", "(true)", "(false)", "(break)", "(continue)",
				"(iffy, identifier)", "(_x, identifier)", "(@name, identifier)", "(x1, identifier)",
			},
		},
		{
			name:  "Numbers",
			input: "12 1.5 1E5 007",
			expected: []string{
				"(12, integer)", "(1.5, real)", "(1E5, real)", "(007, integer)",
			},
		},
		{
			name:     "Signs are separate tokens",
			input:    "-3",
			expected: []string{"(-, add/sub)", "(3, integer)"},
		},
		{
			name:     "Indentation is counted after newline",
			input:    "a\n\t  b\n",
			expected: []string{"(a, identifier)", `{\n 3}`, "(b, identifier)", `{\n 0}`},
		},
		{
			name:     "Comment runs to end of line",
			input:    "a # comment = 1\nb",
			expected: []string{"(a, identifier)", `{\n 0}`, "(b, identifier)"},
		},
		{
			name:     "Strings keep their quotes",
			input:    `s = "hi there"`,
			expected: []string{"(s, identifier)", "(=, assignment)", `("hi there", string)`},
		},
		{
			name:     "Unterminated string runs to end",
			input:    `"abc`,
			expected: []string{`("abc, string)`},
		},
		{
			name:     "Carriage returns are whitespace",
			input:    "a\r\nb",
			expected: []string{"(a, identifier)", `{\n 0}`, "(b, identifier)"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Lex(tc.input, NewSymbolTable(), DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := render(tokens)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("\n got: %q\nwant: %q", got, tc.expected)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"Unexpected character", "x = $", ErrUnexpectedChar, 1},
		{"Invalid number", "a\nb = 1.2.3", ErrInvalidNumber, 2},
		{"Trailing point", "12.", ErrInvalidNumber, 1},
		{"Exponent sign is not scanned", "1E+5", ErrInvalidNumber, 1},
		{"Identifier too long", strings.Repeat("a", DefaultMaxLexemeLength+1), ErrLexemeTooLong, 1},
		{"String too long", `"` + strings.Repeat("s", DefaultMaxLexemeLength) + `"`, ErrLexemeTooLong, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Lex(tc.input, NewSymbolTable(), DefaultOptions())
			if err == nil {
				t.Fatalf("expected error, got tokens %v", render(tokens))
			}
			if tokens != nil {
				t.Errorf("expected no tokens with an error, got %d", len(tokens))
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if cerr.Kind != LexicalError {
				t.Errorf("expected lexical error, got %v", cerr.Kind)
			}
			if cerr.Line != tc.line {
				t.Errorf("expected line %d, got %d", tc.line, cerr.Line)
			}
		})
	}
}

func TestLexLexemeLimit(t *testing.T) {
	ident := strings.Repeat("a", DefaultMaxLexemeLength)
	if _, err := Lex(ident, NewSymbolTable(), DefaultOptions()); err != nil {
		t.Errorf("identifier of exactly the limit rejected: %v", err)
	}

	opts := DefaultOptions()
	opts.MaxLexemeLength = 3
	if _, err := Lex("abcd", NewSymbolTable(), opts); !errors.Is(err, ErrLexemeTooLong) {
		t.Errorf("custom limit not applied: %v", err)
	}
}

func TestLexInterning(t *testing.T) {
	syms := NewSymbolTable()
	tokens, err := Lex(`x x "x" 1 01 1`, syms, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Symbol != tokens[1].Symbol {
		t.Errorf("repeated identifiers must share a symbol")
	}
	if tokens[0].Symbol == tokens[2].Symbol {
		t.Errorf("identifier x and string \"x\" must not share a symbol")
	}
	if tokens[3].Symbol == tokens[4].Symbol {
		t.Errorf("1 and 01 must not share a symbol")
	}
	if tokens[3].Symbol != tokens[5].Symbol {
		t.Errorf("repeated 1 must share a symbol")
	}
	if syms.Len() != 4 {
		t.Errorf("expected 4 symbols, got %d:\n%s", syms.Len(), syms)
	}
	if _, ok := syms.Lookup("if", IDENTIFIER); ok {
		t.Errorf("keywords must not be interned")
	}
}

func TestLexStripStringQuotes(t *testing.T) {
	opts := DefaultOptions()
	opts.StripStringQuotes = true
	syms := NewSymbolTable()
	tokens, err := Lex(`"hello" "open`, syms, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tokens[0].Lexeme(); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if got := tokens[1].Lexeme(); got != "open" {
		t.Errorf("expected open, got %q", got)
	}
}

func TestLexVariantsAndLines(t *testing.T) {
	tokens, err := Lex("a % b\n\n  c >= d", NewSymbolTable(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[1].Type != MULDIV || tokens[1].Variant != 2 {
		t.Errorf("%% should be MULDIV variant 2, got %v variant %d", tokens[1].Type, tokens[1].Variant)
	}
	if tokens[3].Indent() != 0 || tokens[4].Indent() != 2 {
		t.Errorf("unexpected indents %d, %d", tokens[3].Indent(), tokens[4].Indent())
	}
	if tokens[6].Type != LOGICAL || tokens[6].Lexeme() != ">=" || tokens[6].Variant != 3 {
		t.Errorf("unexpected >= token %+v", tokens[6])
	}
	wantLines := []int{1, 1, 1, 1, 2, 3, 3, 3}
	for i, tok := range tokens {
		if tok.Line != wantLines[i] {
			t.Errorf("token %d %v: expected line %d, got %d", i, tok, wantLines[i], tok.Line)
		}
	}
}

func TestLexReader(t *testing.T) {
	tokens, err := LexReader(strings.NewReader("var x = 1\n"), NewSymbolTable(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 5 {
		t.Errorf("expected 5 tokens, got %v", render(tokens))
	}
}
