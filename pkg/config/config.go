// Package config loads ttc settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"ttc/pkg/compiler"
)

// Output formats understood by the printers.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the complete tool configuration
type Config struct {
	Lexer  LexerConfig  `toml:"lexer"`
	Indent IndentConfig `toml:"indent"`
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`
}

// LexerConfig holds lexical analysis limits
type LexerConfig struct {
	MaxLexemeLength   int  `toml:"max_lexeme_length"`
	StripStringQuotes bool `toml:"strip_string_quotes"`
}

// IndentConfig holds indentation stack settings
type IndentConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig holds printer settings
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// WatchConfig holds settings for the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(toml.MetaData{})
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults(meta)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by TTC_CONFIG, then ./ttc.toml, then
// ~/.config/ttc/config.toml. Without any of them it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("TTC_CONFIG"); path != "" {
		return Load(path)
	}
	candidates := []string{"./ttc.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "ttc", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration. A debounce
// written in the file is kept even when it is zero.
func (c *Config) applyDefaults(meta toml.MetaData) {
	if c.Lexer.MaxLexemeLength == 0 {
		c.Lexer.MaxLexemeLength = compiler.DefaultMaxLexemeLength
	}
	if c.Indent.MaxDepth == 0 {
		c.Indent.MaxDepth = compiler.DefaultMaxIndentDepth
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if !meta.IsDefined("watch", "debounce") {
		c.Watch.Debounce.Duration = DefaultDebounce
	}
}

// Validate rejects settings the compiler or printers cannot honour.
func (c *Config) Validate() error {
	if c.Lexer.MaxLexemeLength < 1 {
		return fmt.Errorf("lexer.max_lexeme_length must be positive, got %d", c.Lexer.MaxLexemeLength)
	}
	// The base level occupies one slot.
	if c.Indent.MaxDepth < 2 {
		return fmt.Errorf("indent.max_depth must be at least 2, got %d", c.Indent.MaxDepth)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format)
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// CompilerOptions converts the lexer and indent sections into compiler options.
func (c *Config) CompilerOptions() compiler.Options {
	return compiler.Options{
		MaxLexemeLength:   c.Lexer.MaxLexemeLength,
		MaxIndentDepth:    c.Indent.MaxDepth,
		StripStringQuotes: c.Lexer.StripStringQuotes,
	}
}
