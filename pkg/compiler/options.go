package compiler

const (
	DefaultMaxLexemeLength = 99
	DefaultMaxIndentDepth  = 20
)

// Options tunes the limits and lexical choices of a compilation.
// Zero limits fall back to the defaults.
type Options struct {
	// MaxLexemeLength is the longest identifier, number or string accepted.
	MaxLexemeLength int
	// MaxIndentDepth bounds the indentation stack, base level included.
	MaxIndentDepth int
	// StripStringQuotes interns string literals without their quotes.
	StripStringQuotes bool
}

func DefaultOptions() Options {
	return Options{
		MaxLexemeLength: DefaultMaxLexemeLength,
		MaxIndentDepth:  DefaultMaxIndentDepth,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxLexemeLength <= 0 {
		o.MaxLexemeLength = DefaultMaxLexemeLength
	}
	if o.MaxIndentDepth <= 0 {
		o.MaxIndentDepth = DefaultMaxIndentDepth
	}
	return o
}
