package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ttc/pkg/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Compile scripts and report only success or the first error",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{""}
	}
	var failed int
	for _, arg := range args {
		path, res, err := compileSource([]string{arg})
		if err != nil {
			newPrinter(cmd).Error(err)
			failed++
			continue
		}
		printSummary(cmd.OutOrStdout(), path, res)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(args))
	}
	return nil
}

func printSummary(w io.Writer, path string, res *compiler.Result) {
	fmt.Fprintf(w, "ok %s: %d tokens, %d symbols, %d declarations\n",
		path, len(res.Tokens), res.Symbols.Len(), len(res.Tree.Roots))
}
