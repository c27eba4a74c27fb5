package compiler

import "strings"

// cursor is the tree insertion point: either a node whose children receive
// new nodes, or a detached list (the forest roots, or a scratch list holding
// a left operand until its operator is known).
type cursor struct {
	node NodeID
	list *[]NodeID
}

// builder owns the insertion point and the stack the grammar rules save it on.
type builder struct {
	tree  *Tree
	cur   cursor
	saved []cursor
}

func (b *builder) push() { b.saved = append(b.saved, b.cur) }

func (b *builder) pop() {
	b.cur = b.saved[len(b.saved)-1]
	b.saved = b.saved[:len(b.saved)-1]
}

// restore returns to the most recently saved insertion point and keeps it saved.
func (b *builder) restore() { b.cur = b.saved[len(b.saved)-1] }

func (b *builder) enter(id NodeID) { b.cur = cursor{node: id, list: nil} }

// collect redirects new nodes into a scratch list.
func (b *builder) collect(into *[]NodeID) { b.cur = cursor{node: NoNode, list: into} }

func (b *builder) attach(ids ...NodeID) {
	if b.cur.list != nil {
		*b.cur.list = append(*b.cur.list, ids...)
		return
	}
	b.tree.adopt(b.cur.node, ids...)
}

// add attaches a node for tok at the insertion point and descends into it.
func (b *builder) add(tok *Token) NodeID {
	id := b.tree.newNode(tok)
	b.attach(id)
	b.enter(id)
	return id
}

type acceptMode int

const (
	optional acceptMode = 0
	needed   acceptMode = 1 << iota // missing token is a syntax error
	omit                            // consume without adding a node
	test                            // report a match without consuming
)

// Parser consumes the block-annotated token sequence produced by
// ConvertIndents and builds a Tree.
//
// Grammar (binary levels are right-recursive, so chains associate to the right):
//
//	program    = { NEWLINE | varDecl | funcDef }
//	statement  = varDecl | funcDef | identStmt | block | NEWLINE
//	           | ("if"|"elif"|"while"|"until") expression ":" NEWLINE statement
//	           | "for" IDENTIFIER ( "=" expression "to" expression ["step" expression]
//	                              | "in" expression ) ":" NEWLINE statement
//	           | "else" [":" NEWLINE | NEWLINE] statement
//	           | "return" expression NEWLINE
//	           | ("break"|"continue") NEWLINE
//	varDecl    = "var" IDENTIFIER ["=" expression] {"," IDENTIFIER ["=" expression]} [NEWLINE]
//	funcDef    = "def" IDENTIFIER "(" [IDENTIFIER {"," IDENTIFIER}] ")" ":" [NEWLINE] statement
//	identStmt  = IDENTIFIER [index] ( "=" expression | "(" [args] ")" ) NEWLINE
//	block      = INDENT { statement } DEDENT
//	expression = addition [LOGICAL expression]
//	addition   = [ADDSUB] term [ADDSUB addition]
//	term       = factor [MULDIV term]
//	factor     = [UNARY] ( IDENTIFIER [index] ["(" [args] ")"] | "[" [args] "]"
//	           | INTEGER | REAL | STRING | "true" | "false" | "none" | "(" expression ")" )
//	index      = "[" expression "]"
type Parser struct {
	tokens []Token
	pos    int
	eof    Token
	b      builder
}

func NewParser(tokens []Token) *Parser {
	p := &Parser{tokens: tokens, eof: Token{Type: EOF}}
	if n := len(tokens); n > 0 {
		p.eof.Line = tokens[n-1].Line
	}
	p.b.tree = &Tree{}
	return p
}

// peek returns the current token without consuming it.
func (p *Parser) peek() *Token {
	if p.pos >= len(p.tokens) {
		return &p.eof
	}
	return &p.tokens[p.pos]
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

// take consumes the current token without adding it to the tree.
func (p *Parser) take() *Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// acceptMode is the one primitive the grammar is written in: it tests the
// current token against types and, depending on mode, consumes it, adds it
// to the tree as the new insertion point, or fails.
func (p *Parser) acceptMode(mode acceptMode, types ...TokenType) (bool, error) {
	tok := p.peek()
	match := false
	for _, tt := range types {
		if tok.Type == tt {
			match = true
			break
		}
	}
	if mode&test != 0 {
		return match, nil
	}
	if !match {
		if mode&needed != 0 {
			return false, p.unexpected(tok, types...)
		}
		return false, nil
	}
	if mode&omit == 0 {
		p.b.add(tok)
	}
	p.pos++
	return true, nil
}

// accept adds the current token to the tree if it is one of types.
func (p *Parser) accept(types ...TokenType) bool {
	ok, _ := p.acceptMode(optional, types...)
	return ok
}

// skip consumes the current token if it is one of types.
func (p *Parser) skip(types ...TokenType) bool {
	ok, _ := p.acceptMode(omit, types...)
	return ok
}

// check reports whether the current token is one of types.
func (p *Parser) check(types ...TokenType) bool {
	ok, _ := p.acceptMode(test, types...)
	return ok
}

// expect is accept for a mandatory token.
func (p *Parser) expect(types ...TokenType) error {
	_, err := p.acceptMode(needed, types...)
	return err
}

// expectSkip is skip for a mandatory token.
func (p *Parser) expectSkip(types ...TokenType) error {
	_, err := p.acceptMode(needed|omit, types...)
	return err
}

func (p *Parser) unexpected(tok *Token, want ...TokenType) error {
	names := make([]string, len(want))
	for i, tt := range want {
		names[i] = tt.String()
	}
	expected := strings.Join(names, " or ")
	if tok.Type == EOF {
		return &Error{Kind: SyntaxError, Err: ErrUnexpectedEOF, Token: tok, Line: tok.Line, Msg: "expected " + expected}
	}
	return &Error{Kind: SyntaxError, Err: ErrUnexpectedToken, Token: tok, Line: tok.Line,
		Msg: tok.String() + ", expected " + expected}
}

// arrayIndex parses an optional "[" expression "]" under the insertion point.
func (p *Parser) arrayIndex() error {
	p.b.push()
	defer p.b.pop()
	if p.accept(LSQUARE) {
		if err := p.expression(); err != nil {
			return err
		}
		return p.expectSkip(RSQUARE)
	}
	return nil
}

// list parses comma-separated expressions up to closer; the opening token
// has been accepted and is the insertion point.
func (p *Parser) list(closer TokenType) error {
	if p.skip(closer) {
		return nil
	}
	for {
		if err := p.expression(); err != nil {
			return err
		}
		if !p.skip(COMMA) {
			break
		}
	}
	return p.expectSkip(closer)
}

// factor parses one operand with an optional unary prefix, which becomes the
// operand's parent.
func (p *Parser) factor() error {
	p.b.push()
	defer p.b.pop()
	p.accept(UNARY)

	switch {
	case p.accept(IDENTIFIER):
		if err := p.arrayIndex(); err != nil {
			return err
		}
		if p.accept(LPAREN) {
			return p.list(RPAREN)
		}
		return nil
	case p.accept(LSQUARE):
		return p.list(RSQUARE)
	case p.accept(INTEGER, REAL, STRING, NONE, TRUE, FALSE):
		return nil
	case p.accept(LPAREN):
		if err := p.expression(); err != nil {
			return err
		}
		return p.expectSkip(RPAREN)
	default:
		return p.unexpected(p.peek(), IDENTIFIER, INTEGER, REAL, STRING, LPAREN, LSQUARE)
	}
}

// binary parses operand [op next]. The left operand is built in a scratch
// list and moved under the operator node if one follows, so the operator
// ends up parenting [left, right].
func (p *Parser) binary(operand func() error, op TokenType, next func() error) error {
	p.b.push()
	defer p.b.pop()

	var left []NodeID
	p.b.collect(&left)
	if err := operand(); err != nil {
		return err
	}
	p.b.restore()

	if p.accept(op) {
		p.b.attach(left...)
		return next()
	}
	p.b.attach(left...)
	return nil
}

func (p *Parser) term() error {
	return p.binary(p.factor, MULDIV, p.term)
}

// signedTerm is a term with an optional leading sign; the sign parents it.
func (p *Parser) signedTerm() error {
	p.b.push()
	defer p.b.pop()
	p.accept(ADDSUB)
	return p.term()
}

func (p *Parser) addition() error {
	return p.binary(p.signedTerm, ADDSUB, p.addition)
}

func (p *Parser) expression() error {
	return p.binary(p.addition, LOGICAL, p.expression)
}

// statement parses one statement under the insertion point.
func (p *Parser) statement() error {
	p.b.push()
	defer p.b.pop()

	tok := p.peek()
	switch tok.Type {
	case VAR:
		p.accept(VAR)
		return p.variableDeclaration()

	case DEF:
		p.accept(DEF)
		return p.functionDefinition()

	case IDENTIFIER:
		return p.identifierStatement()

	case INDENT:
		p.accept(INDENT)
		for !p.skip(DEDENT) {
			if err := p.statement(); err != nil {
				return err
			}
		}
		return nil

	case NEWLINE:
		p.skip(NEWLINE)
		return nil

	case IF, ELIF, WHILE, UNTIL:
		p.accept(tok.Type)
		if err := p.expression(); err != nil {
			return err
		}
		if err := p.expectSkip(COLON); err != nil {
			return err
		}
		if err := p.expectSkip(NEWLINE); err != nil {
			return err
		}
		return p.statement()

	case FOR:
		p.accept(FOR)
		return p.forStatement()

	case ELSE:
		p.accept(ELSE)
		if p.skip(COLON) {
			if err := p.expectSkip(NEWLINE); err != nil {
				return err
			}
		} else {
			p.skip(NEWLINE)
		}
		return p.statement()

	case RETURN:
		p.accept(RETURN)
		if err := p.expression(); err != nil {
			return err
		}
		return p.expectSkip(NEWLINE)

	case BREAK, CONTINUE:
		p.accept(tok.Type)
		return p.expectSkip(NEWLINE)

	case EOF:
		return &Error{Kind: SyntaxError, Err: ErrUnexpectedEOF, Token: tok, Line: tok.Line, Msg: "expected statement"}

	default:
		return &Error{Kind: SyntaxError, Err: ErrBadStatement, Token: tok, Line: tok.Line, Msg: tok.String()}
	}
}

// identifierStatement parses an assignment or a call. For an assignment the
// "=" node becomes the parent of the target and the value:
//
//	x[i] = y + 1   →   (= (x (i)) (+ y 1))
func (p *Parser) identifierStatement() error {
	target := p.b.tree.newNode(p.take())
	if p.check(LSQUARE) {
		p.b.push()
		p.b.enter(target)
		err := p.arrayIndex()
		p.b.pop()
		if err != nil {
			return err
		}
	}

	switch {
	case p.check(ASSIGNMENT):
		assign := p.b.add(p.take())
		p.b.tree.adopt(assign, target)
		if err := p.expression(); err != nil {
			return err
		}
	case p.check(LPAREN):
		p.b.attach(target)
		p.b.enter(target)
		p.accept(LPAREN)
		if err := p.list(RPAREN); err != nil {
			return err
		}
	default:
		return p.unexpected(p.peek(), ASSIGNMENT, LPAREN)
	}
	return p.expectSkip(NEWLINE)
}

// variableDeclaration parses the names after "var"; each IDENTIFIER node
// parents its optional initializer.
func (p *Parser) variableDeclaration() error {
	p.b.push()
	defer p.b.pop()
	for {
		p.b.restore()
		if err := p.expect(IDENTIFIER); err != nil {
			return err
		}
		if p.skip(ASSIGNMENT) {
			if err := p.expression(); err != nil {
				return err
			}
		}
		if !p.skip(COMMA) {
			break
		}
	}
	p.skip(NEWLINE)
	return nil
}

// functionDefinition parses the rest of "def": the name node parents the
// "(" parameter node and the body.
func (p *Parser) functionDefinition() error {
	p.b.push()
	defer p.b.pop()

	if err := p.expect(IDENTIFIER); err != nil {
		return err
	}
	p.b.push() // the name
	if err := p.expect(LPAREN); err != nil {
		return err
	}
	if !p.skip(RPAREN) {
		p.b.push() // the "(" node
		for {
			p.b.restore()
			if err := p.expect(IDENTIFIER); err != nil {
				return err
			}
			if !p.skip(COMMA) {
				break
			}
		}
		p.b.pop()
		if err := p.expectSkip(RPAREN); err != nil {
			return err
		}
	}
	if err := p.expectSkip(COLON); err != nil {
		return err
	}
	p.skip(NEWLINE)
	p.b.pop()
	return p.statement()
}

// forStatement parses the rest of "for":
//
//	for i = a to b step c:   →   (for i (= a (to b) (step c)) body)
//	for x in xs:             →   (for x (in xs) body)
//
// "to" parents the end expression instead of sitting as a flat sibling of it
// under "=" as in (= a to b (step c)).
func (p *Parser) forStatement() error {
	p.b.push()
	defer p.b.pop()

	if err := p.expect(IDENTIFIER); err != nil {
		return err
	}
	p.b.restore()

	if p.accept(ASSIGNMENT) {
		p.b.push()
		if err := p.expression(); err != nil {
			return err
		}
		if err := p.expect(TO); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		p.b.restore()
		if p.accept(STEP) {
			if err := p.expression(); err != nil {
				return err
			}
		}
		p.b.pop()
	} else {
		if err := p.expect(IN); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
	}
	if err := p.expectSkip(COLON); err != nil {
		return err
	}
	if err := p.expectSkip(NEWLINE); err != nil {
		return err
	}
	p.b.restore()
	return p.statement()
}

// parseTopLevel parses one declaration into the forest.
func (p *Parser) parseTopLevel() error {
	p.b.cur = cursor{node: NoNode, list: &p.b.tree.Roots}
	switch {
	case p.skip(NEWLINE):
		return nil
	case p.accept(VAR):
		return p.variableDeclaration()
	case p.accept(DEF):
		return p.functionDefinition()
	default:
		tok := p.peek()
		return &Error{Kind: SyntaxError, Err: ErrBadStatement, Token: tok, Line: tok.Line,
			Msg: tok.String() + ", only var and def are allowed at top level"}
	}
}

// Parse builds the syntax tree for a sequence produced by ConvertIndents.
// Nodes point into tokens, which must not be modified afterwards.
// On error no tree is returned.
func Parse(tokens []Token) (*Tree, error) {
	p := NewParser(tokens)
	for !p.atEnd() {
		if err := p.parseTopLevel(); err != nil {
			return nil, err
		}
	}
	return p.b.tree, nil
}
