package main

import (
	"flag"
	"fmt"
	"os"

	"ttc/pkg/compiler"
	"ttc/pkg/printer"
	"ttc/pkg/utils"
)

func main() {
	inPath := flag.String("in", utils.DefaultSource, "input script path")
	stage := flag.String("stage", "all", "what to print: all, tokens, symbols or tree")
	color := flag.Bool("color", false, "style the output when writing to a terminal")
	stripQuotes := flag.Bool("strip-quotes", false, "intern string literals without their quotes")
	maxDepth := flag.Int("max-depth", compiler.DefaultMaxIndentDepth, "maximum indentation stack depth")
	flag.Parse()

	if flag.NArg() > 0 {
		*inPath = flag.Arg(0)
	}

	opts := compiler.DefaultOptions()
	opts.StripStringQuotes = *stripQuotes
	opts.MaxIndentDepth = *maxDepth

	p := printer.New(os.Stdout, *color)
	if err := run(p, *inPath, *stage, opts); err != nil {
		printer.New(os.Stderr, *color).Error(err)
		os.Exit(1)
	}
}

// run compiles the script at path and prints the requested stage.
func run(p *printer.Printer, path, stage string, opts compiler.Options) error {
	_, src, err := utils.ReadSource(path)
	if err != nil {
		return err
	}
	res, err := compiler.Compile(src, opts)
	if err != nil {
		return err
	}

	switch stage {
	case "all":
		return p.Report(res)
	case "tokens":
		return p.Tokens(res.Tokens)
	case "symbols":
		return p.Symbols(res.Symbols)
	case "tree":
		return p.Tree(res.Tree)
	default:
		return fmt.Errorf("unknown stage %q", stage)
	}
}
