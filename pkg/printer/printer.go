// Package printer renders compiler results as the text dumps the tools print:
// token list, symbol table and syntax tree, plain or styled, and as YAML.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ttc/pkg/compiler"
)

// Printer writes dumps to an output stream. A Printer without styles emits
// exactly the plain dump format.
type Printer struct {
	w      *bufio.Writer
	styles *Styles
}

// New returns a Printer writing to w. With color set, output is styled when
// w is a terminal that supports it.
func New(w io.Writer, color bool) *Printer {
	p := &Printer{w: bufio.NewWriter(w)}
	if color {
		p.styles = NewStyles(w)
	}
	return p
}

func (p *Printer) header(title string) {
	if p.styles != nil {
		title = p.styles.Header.Render(title)
	}
	fmt.Fprintln(p.w, title)
}

func (p *Printer) token(tok *compiler.Token) string {
	if p.styles == nil {
		return tok.String()
	}
	return p.styles.Token(tok.Type).Render(tok.String())
}

func (p *Printer) tokens(tokens []compiler.Token) {
	for i := range tokens {
		fmt.Fprintln(p.w, p.token(&tokens[i]))
	}
}

func (p *Printer) symbols(syms *compiler.SymbolTable) {
	for _, s := range syms.Symbols() {
		line := s.String()
		if p.styles != nil {
			line = p.styles.Token(s.Type).Render(line)
		}
		fmt.Fprintln(p.w, line)
	}
}

func (p *Printer) tree(tree *compiler.Tree) {
	tree.Walk(func(id compiler.NodeID, depth int) bool {
		indent := strings.Repeat("   ", depth)
		label := tree.Label(id)
		if p.styles != nil {
			indent = p.styles.Guide.Render(indent)
			if tok := tree.Token(id); tok != nil {
				label = p.token(tok)
			}
		}
		fmt.Fprintln(p.w, indent+label)
		return true
	})
}

// Tokens prints one token per line.
func (p *Printer) Tokens(tokens []compiler.Token) error {
	p.tokens(tokens)
	return p.w.Flush()
}

// Symbols prints the symbol table in insertion order, one "(lexeme, category)"
// per line.
func (p *Printer) Symbols(syms *compiler.SymbolTable) error {
	p.symbols(syms)
	return p.w.Flush()
}

// Tree prints the forest with three spaces of indentation per level.
func (p *Printer) Tree(tree *compiler.Tree) error {
	p.tree(tree)
	return p.w.Flush()
}

// Report prints all three dumps under their headings, separated the way the
// stage dumper always has.
func (p *Printer) Report(res *compiler.Result) error {
	p.header("Token list:")
	p.tokens(res.Tokens)
	fmt.Fprint(p.w, "\n\n\n")
	p.header("Symbol table:")
	p.symbols(res.Symbols)
	fmt.Fprint(p.w, "\n\n\n")
	p.header("Syntax tree:")
	p.tree(res.Tree)
	return p.w.Flush()
}

// Error prints a compilation failure as "Error: <message>", keeping the
// source snippet line of a *compiler.Error.
func (p *Printer) Error(err error) error {
	msg, snippet, _ := strings.Cut(err.Error(), "\n")
	msg = "Error: " + msg
	if p.styles != nil {
		msg = p.styles.Error.Render(msg)
		if snippet != "" {
			snippet = p.styles.Snippet.Render(snippet)
		}
	}
	fmt.Fprintln(p.w, msg)
	if snippet != "" {
		fmt.Fprintln(p.w, snippet)
	}
	return p.w.Flush()
}
