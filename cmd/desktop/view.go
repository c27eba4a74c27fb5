package main

import (
	"image/color"
	"strings"

	"ttc/pkg/compiler"
)

type viewMode int

const (
	viewTree viewMode = iota
	viewTokens
	viewSymbols
	numViews
)

func (m viewMode) String() string {
	switch m {
	case viewTree:
		return "syntax tree"
	case viewTokens:
		return "token list"
	case viewSymbols:
		return "symbol table"
	}
	return "?"
}

// line is one row of the viewer.
type line struct {
	text string
	clr  color.RGBA
}

var (
	colorKeyword    = color.RGBA{0x8B, 0x5C, 0xF6, 0xFF}
	colorIdentifier = color.RGBA{0x06, 0xB6, 0xD4, 0xFF}
	colorLiteral    = color.RGBA{0xF5, 0x9E, 0x0B, 0xFF}
	colorOperator   = color.RGBA{0xCB, 0xD5, 0xE1, 0xFF}
	colorStructure  = color.RGBA{0x64, 0x74, 0x8B, 0xFF}
	colorError      = color.RGBA{0xEF, 0x44, 0x44, 0xFF}
	colorHeader     = color.RGBA{0xF8, 0xFA, 0xFC, 0xFF}
	colorBackground = color.RGBA{0x0F, 0x17, 0x2A, 0xFF}
)

func tokenColor(tt compiler.TokenType) color.RGBA {
	switch {
	case tt == compiler.IDENTIFIER:
		return colorIdentifier
	case tt.Interned():
		return colorLiteral
	case tt >= compiler.IF && tt <= compiler.RETURN:
		return colorKeyword
	case tt == compiler.NEWLINE || tt == compiler.INDENT || tt == compiler.DEDENT:
		return colorStructure
	}
	return colorOperator
}

// buildLines lays out one dump of res as viewer rows.
func buildLines(res *compiler.Result, mode viewMode) []line {
	var out []line
	switch mode {
	case viewTree:
		res.Tree.Walk(func(id compiler.NodeID, depth int) bool {
			out = append(out, line{
				text: strings.Repeat("   ", depth) + res.Tree.Label(id),
				clr:  tokenColor(res.Tree.Type(id)),
			})
			return true
		})
	case viewTokens:
		for _, tok := range res.Tokens {
			out = append(out, line{text: tok.String(), clr: tokenColor(tok.Type)})
		}
	case viewSymbols:
		for _, s := range res.Symbols.Symbols() {
			out = append(out, line{text: s.String(), clr: tokenColor(s.Type)})
		}
	}
	return out
}

// errorLines shows a failed compilation, one row per message line.
func errorLines(err error) []line {
	var out []line
	for _, l := range strings.Split(err.Error(), "\n") {
		out = append(out, line{text: l, clr: colorError})
	}
	return out
}

// viewport is the window of rows currently on screen.
type viewport struct {
	offset int
	rows   int
	total  int
}

func (v *viewport) maxOffset() int {
	if m := v.total - v.rows; m > 0 {
		return m
	}
	return 0
}

// scroll moves the window by delta rows, clamped to the content.
func (v *viewport) scroll(delta int) {
	v.offset += delta
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *viewport) page(n int) { v.scroll(n * v.rows) }

func (v *viewport) home() { v.offset = 0 }

func (v *viewport) end() { v.offset = v.maxOffset() }

// resize keeps the window valid after the content or screen size changed.
func (v *viewport) resize(rows, total int) {
	v.rows, v.total = rows, total
	v.scroll(0)
}

// visible returns the bounds of the rows on screen.
func (v *viewport) visible() (from, to int) {
	to = v.offset + v.rows
	if to > v.total {
		to = v.total
	}
	return v.offset, to
}
