package compiler

// ConvertIndents rewrites significant whitespace into explicit block
// structure. It returns a new sequence and leaves tokens untouched:
//
//   - runs of NEWLINE tokens collapse into the last one, since blank lines
//     only matter for the indentation of the line that follows them;
//   - a NEWLINE deeper than the enclosing block is followed by one INDENT;
//   - a NEWLINE shallower than it is followed by one DEDENT per closed block,
//     and must land exactly on an enclosing level.
//
// End of input sits at indentation 0 and closes every block still open: a
// trailing NEWLINE is reconciled against 0 whatever indentation follows it,
// and a non-empty sequence that does not end in a NEWLINE gets one.
func ConvertIndents(tokens []Token, opts Options) ([]Token, error) {
	opts = opts.withDefaults()
	out := make([]Token, 0, len(tokens)+8)
	levels := make([]int, 1, opts.MaxIndentDepth)

	n := len(tokens)
	for i := 0; i < n; i++ {
		tok := tokens[i]
		if tok.Type != NEWLINE {
			out = append(out, tok)
			continue
		}
		for i+1 < n && tokens[i+1].Type == NEWLINE {
			i++
			tok = tokens[i]
		}
		out = append(out, tok)

		level := tok
		if i == n-1 {
			level.Variant = 0
		}
		var err error
		if out, levels, err = reindent(out, levels, level, opts.MaxIndentDepth); err != nil {
			return nil, err
		}
	}

	if n > 0 && tokens[n-1].Type != NEWLINE {
		tok := Token{Type: NEWLINE, Line: tokens[n-1].Line}
		out = append(out, tok)
		var err error
		if out, _, err = reindent(out, levels, tok, opts.MaxIndentDepth); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// reindent compares the indentation carried by nl with the top of levels and
// appends the INDENT or DEDENT tokens that reconcile them.
func reindent(out []Token, levels []int, nl Token, maxDepth int) ([]Token, []int, error) {
	target := nl.Indent()
	top := levels[len(levels)-1]

	switch {
	case target > top:
		if len(levels) >= maxDepth {
			e := newError(StructuralError, ErrIndentOverflow, nl.Line+1, "more than %d nested blocks", maxDepth-1)
			e.Token = &nl
			return nil, nil, e
		}
		levels = append(levels, target)
		out = append(out, Token{Type: INDENT, Line: nl.Line + 1})

	case target < top:
		for len(levels) > 1 && levels[len(levels)-1] > target {
			levels = levels[:len(levels)-1]
			out = append(out, Token{Type: DEDENT, Line: nl.Line + 1})
		}
		if levels[len(levels)-1] != target {
			e := newError(StructuralError, ErrInconsistentIndent, nl.Line+1, "dedent to column %d matches no enclosing block", target)
			e.Token = &nl
			return nil, nil, e
		}
	}
	return out, levels, nil
}
