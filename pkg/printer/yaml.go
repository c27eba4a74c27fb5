package printer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ttc/pkg/compiler"
)

// Node is the YAML form of a syntax-tree node.
type Node struct {
	Lexeme   string `yaml:"lexeme"`
	Type     string `yaml:"type"`
	Line     int    `yaml:"line,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// SymbolEntry is the YAML form of a symbol-table entry.
type SymbolEntry struct {
	Lexeme string `yaml:"lexeme"`
	Type   string `yaml:"type"`
}

// Document is the YAML export of one compilation.
type Document struct {
	Source  string        `yaml:"source,omitempty"`
	Symbols []SymbolEntry `yaml:"symbols"`
	Tree    []Node        `yaml:"tree"`
}

// NewDocument converts a compilation result into its exportable form.
func NewDocument(source string, res *compiler.Result) *Document {
	doc := &Document{
		Source:  source,
		Symbols: make([]SymbolEntry, 0, res.Symbols.Len()),
		Tree:    make([]Node, 0, len(res.Tree.Roots)),
	}
	for _, s := range res.Symbols.Symbols() {
		doc.Symbols = append(doc.Symbols, SymbolEntry{Lexeme: s.Lexeme, Type: s.Type.String()})
	}
	for _, r := range res.Tree.Roots {
		doc.Tree = append(doc.Tree, exportNode(res.Tree, r))
	}
	return doc
}

func exportNode(tree *compiler.Tree, id compiler.NodeID) Node {
	n := Node{Type: tree.Type(id).String()}
	if tok := tree.Token(id); tok != nil {
		n.Lexeme = tok.Lexeme()
		n.Line = tok.Line
	}
	for _, c := range tree.Children(id) {
		n.Children = append(n.Children, exportNode(tree, c))
	}
	return n
}

// WriteYAML encodes the compilation result as YAML to w.
func WriteYAML(w io.Writer, source string, res *compiler.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(source, res)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes a document written by WriteYAML.
func ReadYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &doc, nil
}
