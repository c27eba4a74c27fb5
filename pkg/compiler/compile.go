package compiler

import (
	"fmt"
	"io"
	"os"
)

// Result holds everything a successful compilation produced.
type Result struct {
	Tokens  []Token // block-annotated sequence the tree points into
	Symbols *SymbolTable
	Tree    *Tree
}

// Compile runs the whole front end over src. The first error stops it and
// no partial result is returned.
func Compile(src string, opts Options) (*Result, error) {
	syms := NewSymbolTable()
	tokens, err := Lex(src, syms, opts)
	if err != nil {
		return nil, err
	}

	tokens, err = ConvertIndents(tokens, opts)
	if err != nil {
		return nil, withSource(err, src)
	}

	tree, err := Parse(tokens)
	if err != nil {
		return nil, withSource(err, src)
	}

	return &Result{Tokens: tokens, Symbols: syms, Tree: tree}, nil
}

// CompileReader reads r to the end and compiles its contents.
func CompileReader(r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Compile(string(data), opts)
}

// CompileFile compiles the file at path. The file is closed before parsing
// starts.
func CompileFile(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(string(data), opts)
}
