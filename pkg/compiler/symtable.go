package compiler

import (
	"fmt"
	"strings"
)

// Symbol is one interned (lexeme, category) pair.
type Symbol struct {
	Lexeme string
	Type   TokenType
}

func (s *Symbol) String() string {
	return fmt.Sprintf("(%s, %s)", s.Lexeme, s.Type)
}

type symbolKey struct {
	lexeme string
	tt     TokenType
}

// SymbolTable interns identifiers and literals met while lexing so that
// repeated text shares one *Symbol. Entries are only ever appended; a table
// lives for one compilation.
//
// Equality is textual: "1" and "01" are different INTEGER entries, and
// ("x", IDENTIFIER) is distinct from ("x", STRING).
type SymbolTable struct {
	symbols []*Symbol // insertion order
	index   map[symbolKey]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[symbolKey]*Symbol)}
}

// Intern returns the entry for (lexeme, tt), creating it if necessary.
func (s *SymbolTable) Intern(lexeme string, tt TokenType) *Symbol {
	key := symbolKey{lexeme, tt}
	if sym, ok := s.index[key]; ok {
		return sym
	}
	sym := &Symbol{Lexeme: lexeme, Type: tt}
	s.index[key] = sym
	s.symbols = append(s.symbols, sym)
	return sym
}

// Lookup returns the entry for (lexeme, tt) and whether it was found.
func (s *SymbolTable) Lookup(lexeme string, tt TokenType) (*Symbol, bool) {
	sym, ok := s.index[symbolKey{lexeme, tt}]
	return sym, ok
}

// Symbols returns the entries in the order they were first interned.
func (s *SymbolTable) Symbols() []*Symbol {
	out := make([]*Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// String returns the table in insertion order, one (lexeme, category) per line.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	for _, sym := range s.symbols {
		sb.WriteString(sym.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
