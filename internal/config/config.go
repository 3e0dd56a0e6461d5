// Package config loads the optional lvmatch TOML configuration file.
//
//	input        = "prefs.txt"   # "" or "-" reads stdin
//	format       = "text"        # text | yaml
//	debug        = false         # emit one trace line per proposal
//	trace_format = "text"        # text | log | both
//	verify       = false         # re-check stability before reporting
//	log_level    = "info"
//	log_json     = false         # JSON log lines instead of console output
//
// Command-line flags override file values.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmatch/internal/logging"
	"github.com/katalvlaran/lvmatch/prefio"
)

// Trace renderings.
const (
	TraceText = "text"
	TraceLog  = "log"
	TraceBoth = "both" // text lines on stdout and log events on stderr
)

// Config is the resolved CLI configuration.
type Config struct {
	Input       string
	Format      prefio.Format
	Debug       bool
	TraceFormat string
	Verify      bool
	LogLevel    string
	LogJSON     bool
}

type fileConfig struct {
	Input       string `toml:"input"`
	Format      string `toml:"format"`
	Debug       bool   `toml:"debug"`
	TraceFormat string `toml:"trace_format"`
	Verify      bool   `toml:"verify"`
	LogLevel    string `toml:"log_level"`
	LogJSON     bool   `toml:"log_json"`
}

// Default returns stdin, text input, no trace, info logging.
func Default() Config {
	return Config{
		Input:       "-",
		Format:      prefio.FormatText,
		TraceFormat: TraceText,
		LogLevel:    "info",
	}
}

// Load reads path on top of Default. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("format") {
		if cfg.Format, err = prefio.ParseFormat(raw.Format); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("trace_format") {
		cfg.TraceFormat = strings.ToLower(strings.TrimSpace(raw.TraceFormat))
	}
	if meta.IsDefined("verify") {
		cfg.Verify = raw.Verify
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_json") {
		cfg.LogJSON = raw.LogJSON
	}

	if err = Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that have no type-level guarantee.
func Validate(cfg Config) error {
	switch cfg.TraceFormat {
	case TraceText, TraceLog, TraceBoth:
	default:
		return fmt.Errorf("trace_format must be %q, %q or %q, got %q",
			TraceText, TraceLog, TraceBoth, cfg.TraceFormat)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}

// ReadsStdin reports whether Input selects standard input.
func (c Config) ReadsStdin() bool {
	return c.Input == "" || c.Input == "-"
}
