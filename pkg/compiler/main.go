// Package compiler implements the front end of the Tilemap Town scripting
// language: a lexer that interns identifiers and literals into a SymbolTable,
// an indentation transform that turns leading whitespace into explicit block
// tokens, and a recursive-descent parser that builds a syntax-tree forest.
//
// Pipeline: source text → Lex → ConvertIndents → Parse → *Tree
package compiler
