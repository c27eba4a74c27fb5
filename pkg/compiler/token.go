package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota - 1 // sentinel: returned by the parser once the sequence is exhausted

	// Interned literals
	IDENTIFIER // variable / function name
	INTEGER    // integer literal
	REAL       // floating-point literal
	STRING     // string literal "..."

	// Operator families
	ADDSUB  // + -
	MULDIV  // * / %
	LOGICAL // < > <= >= == <>
	SHIFT   // << >>
	BITMATH // & | ^
	UNARY   // ! ~

	// Punctuation
	LPAREN     // (
	RPAREN     // )
	LCURLY     // {
	RCURLY     // }
	LSQUARE    // [
	RSQUARE    // ]
	ASSIGNMENT // =
	COMMA      // ,
	COLON      // :

	// Keywords (keep IF first and RETURN last, see isKeyword)
	IF
	ELSE
	ELIF
	UNTIL
	WHILE
	FOR
	IN
	STEP
	TO
	CONTINUE
	BREAK
	NONE
	DEF
	VAR
	TRUE
	FALSE
	RETURN

	// Structural, synthesized by the lexer and ConvertIndents
	NEWLINE // line break; Variant holds the indentation of the next line
	INDENT  // block enter
	DEDENT  // block exit

	numTokenTypes
)

// category describes one TokenType: its display name and the concrete
// spellings a token of that type may have. Interned categories have no
// spellings; their text lives in the SymbolTable.
type category struct {
	name      string
	spellings []string
}

// categories is indexed by TokenType.
var categories = [numTokenTypes]category{
	IDENTIFIER: {"identifier", nil},
	INTEGER:    {"integer", nil},
	REAL:       {"real", nil},
	STRING:     {"string", nil},

	ADDSUB:  {"add/sub", []string{"+", "-"}},
	MULDIV:  {"mul/div", []string{"*", "/", "%"}},
	LOGICAL: {"logical", []string{"<", ">", "<=", ">=", "==", "<>"}},
	SHIFT:   {"shift", []string{"<<", ">>"}},
	BITMATH: {"bitmath", []string{"&", "|", "^"}},
	UNARY:   {"unary", []string{"!", "~"}},

	LPAREN:     {"lparen", []string{"("}},
	RPAREN:     {"rparen", []string{")"}},
	LCURLY:     {"lcurly", []string{"{"}},
	RCURLY:     {"rcurly", []string{"}"}},
	LSQUARE:    {"lsquare", []string{"["}},
	RSQUARE:    {"rsquare", []string{"]"}},
	ASSIGNMENT: {"assignment", []string{"="}},
	COMMA:      {"comma", []string{","}},
	COLON:      {"colon", []string{":"}},

	IF:       {"if", []string{"if"}},
	ELSE:     {"else", []string{"else"}},
	ELIF:     {"elif", []string{"elif"}},
	UNTIL:    {"until", []string{"until"}},
	WHILE:    {"while", []string{"while"}},
	FOR:      {"for", []string{"for"}},
	IN:       {"in", []string{"in"}},
	STEP:     {"step", []string{"step"}},
	TO:       {"to", []string{"to"}},
	CONTINUE: {"continue", []string{"continue"}},
	BREAK:    {"break", []string{"break"}},
	NONE:     {"none", []string{"none"}},
	DEF:      {"def", []string{"def"}},
	VAR:      {"var", []string{"var"}},
	TRUE:     {"true", []string{"true"}},
	FALSE:    {"false", []string{"false"}},
	RETURN:   {"return", []string{"return"}},

	NEWLINE: {"newline", []string{"\n"}},
	INDENT:  {"indent", []string{"{{"}},
	DEDENT:  {"dedent", []string{"}}"}},
}

// keywords maps source text to its keyword TokenType.
var keywords = func() map[string]TokenType {
	m := make(map[string]TokenType, RETURN-IF+1)
	for tt := IF; tt <= RETURN; tt++ {
		m[categories[tt].name] = tt
	}
	return m
}()

func (tt TokenType) String() string {
	if tt == EOF {
		return "end of input"
	}
	if tt >= 0 && tt < numTokenTypes {
		return categories[tt].name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Interned reports whether tokens of this type carry a SymbolTable entry
// instead of a fixed spelling.
func (tt TokenType) Interned() bool {
	return tt >= IDENTIFIER && tt <= STRING
}

func (tt TokenType) isKeyword() bool {
	return tt >= IF && tt <= RETURN
}

// Spellings returns the concrete spellings of the category, in variant order.
func (tt TokenType) Spellings() []string {
	if tt < 0 || tt >= numTokenTypes {
		return nil
	}
	return categories[tt].spellings
}

// variantOf returns the index of lexeme among the spellings of tt, or 0.
func variantOf(tt TokenType, lexeme string) int {
	for i, s := range tt.Spellings() {
		if s == lexeme {
			return i
		}
	}
	return 0
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type TokenType
	// Variant is the index of the matched spelling in Type.Spellings().
	// For NEWLINE it is the count of tabs/spaces opening the next line.
	Variant int
	Symbol  *Symbol // set for interned types only
	Line    int     // 1-based source line
}

// Lexeme returns the source text the token stands for.
func (t Token) Lexeme() string {
	if t.Symbol != nil {
		return t.Symbol.Lexeme
	}
	if t.Type == EOF {
		return ""
	}
	if sp := t.Type.Spellings(); t.Variant >= 0 && t.Variant < len(sp) {
		return sp[t.Variant]
	}
	return ""
}

// Indent returns the indentation carried by a NEWLINE token.
func (t Token) Indent() int {
	if t.Type != NEWLINE {
		return 0
	}
	return t.Variant
}

// String renders the token the way the diagnostic dumps show it:
//
//	{\n 4}            line break followed by 4 indentation characters
//	(count, identifier)
//	(if)              keyword
//	(<=, logical)     one spelling of an operator family
func (t Token) String() string {
	switch {
	case t.Type == NEWLINE:
		return fmt.Sprintf("{\\n %d}", t.Variant)
	case t.Symbol != nil:
		return fmt.Sprintf("(%s, %s)", t.Symbol.Lexeme, t.Type)
	case t.Type == EOF:
		return "(" + t.Type.String() + ")"
	case t.Type == INDENT || t.Type == DEDENT || t.Type.isKeyword():
		return "(" + t.Lexeme() + ")"
	default:
		return fmt.Sprintf("(%s, %s)", t.Lexeme(), t.Type)
	}
}
