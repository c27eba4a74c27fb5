package compiler

import (
	"errors"
	"reflect"
	"testing"
)

func ident(syms *SymbolTable, name string) Token {
	return Token{Type: IDENTIFIER, Symbol: syms.Intern(name, IDENTIFIER)}
}

func newline(indent int) Token {
	return Token{Type: NEWLINE, Variant: indent}
}

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestConvertIndents(t *testing.T) {
	syms := NewSymbolTable()
	a, b, c, d := ident(syms, "a"), ident(syms, "b"), ident(syms, "c"), ident(syms, "d")

	tests := []struct {
		name     string
		input    []Token
		expected []TokenType
	}{
		{
			name:     "Empty",
			input:    nil,
			expected: []TokenType{},
		},
		{
			name:     "Flat lines",
			input:    []Token{a, newline(0), b, newline(0)},
			expected: []TokenType{IDENTIFIER, NEWLINE, IDENTIFIER, NEWLINE},
		},
		{
			name:  "Indent then dedent (0, 2, 2, 0)",
			input: []Token{a, newline(2), b, newline(2), c, newline(0), d, newline(0)},
			expected: []TokenType{
				IDENTIFIER, NEWLINE, INDENT,
				IDENTIFIER, NEWLINE,
				IDENTIFIER, NEWLINE, DEDENT,
				IDENTIFIER, NEWLINE,
			},
		},
		{
			name:  "Blank lines collapse into the last one",
			input: []Token{a, newline(0), newline(7), newline(4), b, newline(0)},
			expected: []TokenType{
				IDENTIFIER, NEWLINE, INDENT,
				IDENTIFIER, NEWLINE, DEDENT,
			},
		},
		{
			name:  "Dedent closes several blocks at once",
			input: []Token{a, newline(2), b, newline(4), c, newline(0), d},
			expected: []TokenType{
				IDENTIFIER, NEWLINE, INDENT,
				IDENTIFIER, NEWLINE, INDENT,
				IDENTIFIER, NEWLINE, DEDENT, DEDENT,
				IDENTIFIER, NEWLINE,
			},
		},
		{
			name:  "Missing final newline closes open blocks",
			input: []Token{a, newline(4), b},
			expected: []TokenType{
				IDENTIFIER, NEWLINE, INDENT,
				IDENTIFIER, NEWLINE, DEDENT,
			},
		},
		{
			name:  "Indented final newline closes open blocks",
			input: []Token{a, newline(2), b, newline(2)},
			expected: []TokenType{
				IDENTIFIER, NEWLINE, INDENT,
				IDENTIFIER, NEWLINE, DEDENT,
			},
		},
		{
			name:     "Indented final newline opens no block",
			input:    []Token{a, newline(2)},
			expected: []TokenType{IDENTIFIER, NEWLINE},
		},
		{
			name:     "Trailing blank lines at top level",
			input:    []Token{a, newline(0), newline(4)},
			expected: []TokenType{IDENTIFIER, NEWLINE},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := ConvertIndents(tc.input, DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := types(out); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("\n got: %v\nwant: %v", got, tc.expected)
			}
		})
	}
}

func TestConvertIndentsKeepsLastNewline(t *testing.T) {
	syms := NewSymbolTable()
	in := []Token{ident(syms, "a"), newline(0), newline(3), ident(syms, "b"), newline(3)}
	out, err := ConvertIndents(in, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[1].Type != NEWLINE || out[1].Indent() != 3 {
		t.Errorf("expected the collapsed newline to carry indent 3, got %v", out[1])
	}
}

func TestConvertIndentsLeavesInputAlone(t *testing.T) {
	syms := NewSymbolTable()
	in := []Token{ident(syms, "a"), newline(0), newline(2), ident(syms, "b")}
	before := make([]Token, len(in))
	copy(before, in)

	if _, err := ConvertIndents(in, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(in, before) {
		t.Errorf("input sequence was modified")
	}
}

func TestConvertIndentsErrors(t *testing.T) {
	syms := NewSymbolTable()
	x := ident(syms, "x")

	t.Run("InconsistentDedent", func(t *testing.T) {
		in := []Token{x, newline(4), x, newline(2), x}
		_, err := ConvertIndents(in, DefaultOptions())
		if !errors.Is(err, ErrInconsistentIndent) {
			t.Fatalf("expected ErrInconsistentIndent, got %v", err)
		}
		var cerr *Error
		if errors.As(err, &cerr) && cerr.Kind != StructuralError {
			t.Errorf("expected structural error, got %v", cerr.Kind)
		}
	})

	t.Run("StackOverflow", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxIndentDepth = 3
		ok := []Token{x, newline(1), x, newline(2), x}
		if _, err := ConvertIndents(ok, opts); err != nil {
			t.Fatalf("two nested blocks should fit in depth 3: %v", err)
		}
		deep := []Token{x, newline(1), x, newline(2), x, newline(3), x}
		if _, err := ConvertIndents(deep, opts); !errors.Is(err, ErrIndentOverflow) {
			t.Errorf("expected ErrIndentOverflow, got %v", err)
		}
	})

	t.Run("DefaultDepth", func(t *testing.T) {
		var in []Token
		for i := 1; i < DefaultMaxIndentDepth; i++ {
			in = append(in, x, newline(i))
		}
		in = append(in, x)
		if _, err := ConvertIndents(in, DefaultOptions()); err != nil {
			t.Fatalf("%d nested blocks should fit: %v", DefaultMaxIndentDepth-1, err)
		}
		in = append(in, newline(DefaultMaxIndentDepth), x)
		if _, err := ConvertIndents(in, DefaultOptions()); !errors.Is(err, ErrIndentOverflow) {
			t.Errorf("expected ErrIndentOverflow, got %v", err)
		}
	})
}
