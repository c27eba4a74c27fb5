package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ttc/pkg/config"
	"ttc/pkg/printer"
)

var treeFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the block-annotated token list",
	Long: `Prints one token per line: {\n N} for a line break followed by N
indentation characters, ({{) and (}}) for block enter and exit, (keyword)
for keywords and (lexeme, category) for everything else.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, res, err := compileSource(args)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Tokens(res.Tokens)
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols [file]",
	Short: "Print the symbol table in insertion order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, res, err := compileSource(args)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Symbols(res.Symbols)
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the syntax tree",
	Long: `Prints the syntax tree of every top-level declaration, indented three
spaces per level, or exports it together with the symbol table as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print token list, symbol table and syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, res, err := compileSource(args)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Report(res)
	},
}

func init() {
	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", "", "output format: text or yaml (default from config)")
	rootCmd.AddCommand(tokensCmd, symbolsCmd, treeCmd, reportCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	format := cfg.Output.Format
	if treeFormat != "" {
		format = treeFormat
	}

	switch format {
	case config.FormatText:
		_, res, err := compileSource(args)
		if err != nil {
			return err
		}
		return newPrinter(cmd).Tree(res.Tree)
	case config.FormatYAML:
		path, res, err := compileSource(args)
		if err != nil {
			return err
		}
		return printer.WriteYAML(cmd.OutOrStdout(), path, res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
