package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"ttc/pkg/compiler"
	"ttc/pkg/config"
	"ttc/pkg/printer"
	"ttc/pkg/utils"
)

var (
	cfgFile string
	verbose bool
	color   bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "ttc",
	Short: "Tilemap Town script front end",
	Long: `ttc lexes and parses Tilemap Town scripts and prints what each
stage produced.

Stages:
  tokens   - block-annotated token list
  symbols  - interned identifiers and literals
  tree     - syntax tree of the top-level declarations

Without a file argument every command reads ` + utils.DefaultSource + `.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the command tree and prints a failure the way the dumps do.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printer.New(rootCmd.ErrOrStderr(), cfg.Output.Color).Error(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TTC_CONFIG or ./ttc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log stage timings to stderr")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "style the output when writing to a terminal")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		cfg = config.Default()
		return err
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = color
	}
	return nil
}

func newPrinter(cmd *cobra.Command) *printer.Printer {
	return printer.New(cmd.OutOrStdout(), cfg.Output.Color)
}

// compileSource reads the script named by args and runs the front end on it.
func compileSource(args []string) (string, *compiler.Result, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	fullPath, src, err := utils.ReadSource(path)
	if err != nil {
		return fullPath, nil, err
	}

	start := time.Now()
	res, err := compiler.Compile(src, cfg.CompilerOptions())
	if verbose {
		log.Printf("compiled %s in %s", fullPath, time.Since(start))
	}
	if err != nil {
		return fullPath, nil, fmt.Errorf("%s: %w", fullPath, err)
	}
	return fullPath, res, nil
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
