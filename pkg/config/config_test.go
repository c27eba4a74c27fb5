package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ttc/pkg/compiler"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ttc.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Lexer.MaxLexemeLength != 99 {
		t.Errorf("Lexer.MaxLexemeLength = %d, want 99", cfg.Lexer.MaxLexemeLength)
	}
	if cfg.Indent.MaxDepth != 20 {
		t.Errorf("Indent.MaxDepth = %d, want 20", cfg.Indent.MaxDepth)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, FormatText)
	}
	if cfg.Watch.Debounce.Duration != DefaultDebounce {
		t.Errorf("Watch.Debounce = %v, want %v", cfg.Watch.Debounce, DefaultDebounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
	if got := cfg.CompilerOptions(); got != compiler.DefaultOptions() {
		t.Errorf("CompilerOptions() = %+v, want %+v", got, compiler.DefaultOptions())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[lexer]
max_lexeme_length = 32
strip_string_quotes = true

[indent]
max_depth = 8

[output]
format = "yaml"
color = true

[watch]
debounce = "250ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := compiler.Options{MaxLexemeLength: 32, MaxIndentDepth: 8, StripStringQuotes: true}
	if got := cfg.CompilerOptions(); got != want {
		t.Errorf("CompilerOptions() = %+v, want %+v", got, want)
	}
	if cfg.Output.Format != FormatYAML || !cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Watch.Debounce.Duration != 250*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 250ms", cfg.Watch.Debounce)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[output]\ncolor = true\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Indent.MaxDepth != compiler.DefaultMaxIndentDepth {
		t.Errorf("Indent.MaxDepth = %d, want default", cfg.Indent.MaxDepth)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %q, want default", cfg.Output.Format)
	}
}

func TestLoad_ZeroDebounce(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[watch]\ndebounce = \"0s\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Watch.Debounce.Duration != 0 {
		t.Errorf("Watch.Debounce = %v, want 0s", cfg.Watch.Debounce)
	}

	cfg, err = Load(writeConfig(t, "[watch]\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Watch.Debounce.Duration != DefaultDebounce {
		t.Errorf("Watch.Debounce = %v, want default", cfg.Watch.Debounce)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[lexer\n", "failed to parse config"},
		{"unknown key", "[lexer]\nmax_length = 3\n", "unknown config key"},
		{"bad format", "[output]\nformat = \"json\"\n", "output.format"},
		{"negative lexeme length", "[lexer]\nmax_lexeme_length = -1\n", "max_lexeme_length"},
		{"depth too small", "[indent]\nmax_depth = 1\n", "max_depth"},
		{"bad duration", "[watch]\ndebounce = \"soon\"\n", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("Load() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil ||
		!strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Load() of a missing file: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "[indent]\nmax_depth = 5\n")
	t.Setenv("TTC_CONFIG", path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Indent.MaxDepth != 5 {
		t.Errorf("Indent.MaxDepth = %d, want 5", cfg.Indent.MaxDepth)
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"seconds", "2s", 2 * time.Second, false},
		{"invalid", "later", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}

	text, err := Duration{250 * time.Millisecond}.MarshalText()
	if err != nil || string(text) != "250ms" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}
