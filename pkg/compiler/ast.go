package compiler

import "strings"

// NodeID addresses a Node inside its Tree.
type NodeID int

// NoNode is the NodeID of "no node".
const NoNode NodeID = -1

// Node is one syntax-tree vertex. The tree keeps the token that produced the
// node rather than a typed AST: operators parent their operands, keywords
// parent their clauses.
//
//	return a + b
//
//	(return)
//	   (+, add/sub)
//	      (a, identifier)
//	      (b, identifier)
type Node struct {
	Token    *Token // nil only for synthetic nodes
	Children []NodeID
}

// Tree is an arena of nodes plus the ordered forest of top-level
// declarations. Every node but a root has exactly one parent.
type Tree struct {
	Nodes []Node
	Roots []NodeID
}

func (t *Tree) newNode(tok *Token) NodeID {
	t.Nodes = append(t.Nodes, Node{Token: tok})
	return NodeID(len(t.Nodes) - 1)
}

func (t *Tree) adopt(parent NodeID, children ...NodeID) {
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, children...)
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) *Node {
	return &t.Nodes[id]
}

// Token returns the token of node id, nil for synthetic nodes.
func (t *Tree) Token(id NodeID) *Token {
	return t.Nodes[id].Token
}

// Children returns the ordered children of node id.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.Nodes[id].Children
}

// Child returns the i-th child of id, or NoNode.
func (t *Tree) Child(id NodeID, i int) NodeID {
	c := t.Nodes[id].Children
	if i < 0 || i >= len(c) {
		return NoNode
	}
	return c[i]
}

// Type returns the token type of node id, EOF for synthetic nodes.
func (t *Tree) Type(id NodeID) TokenType {
	if tok := t.Nodes[id].Token; tok != nil {
		return tok.Type
	}
	return EOF
}

// Walk visits every node depth-first in source order. Returning false from
// fn skips the node's children.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	for _, r := range t.Roots {
		t.walk(r, 0, fn)
	}
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, c := range t.Nodes[id].Children {
		t.walk(c, depth+1, fn)
	}
}

// Label is the text a printer shows for node id.
func (t *Tree) Label(id NodeID) string {
	if tok := t.Nodes[id].Token; tok != nil {
		return tok.String()
	}
	return "?"
}

// String renders the forest with three spaces of indentation per level.
func (t *Tree) String() string {
	var sb strings.Builder
	t.Walk(func(id NodeID, depth int) bool {
		sb.WriteString(strings.Repeat("   ", depth))
		sb.WriteString(t.Label(id))
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// Sexpr renders the subtree at id on one line, e.g. "(+ a (* b c))".
// Leaves print as their lexeme; tests and error messages use it.
func (t *Tree) Sexpr(id NodeID) string {
	var sb strings.Builder
	t.sexpr(&sb, id)
	return sb.String()
}

func (t *Tree) sexpr(sb *strings.Builder, id NodeID) {
	label := "?"
	if tok := t.Nodes[id].Token; tok != nil {
		label = tok.Lexeme()
		switch tok.Type {
		case NEWLINE:
			label = "\\n"
		case INDENT:
			label = "block"
		}
	}
	children := t.Nodes[id].Children
	if len(children) == 0 {
		sb.WriteString(label)
		return
	}
	sb.WriteByte('(')
	sb.WriteString(label)
	for _, c := range children {
		sb.WriteByte(' ')
		t.sexpr(sb, c)
	}
	sb.WriteByte(')')
}
