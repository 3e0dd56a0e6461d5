package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/galeshapley"
	"github.com/katalvlaran/lvmatch/internal/config"
	"github.com/katalvlaran/lvmatch/internal/logging"
	"github.com/katalvlaran/lvmatch/prefio"
	"github.com/katalvlaran/lvmatch/report"
)

// errUnstable is returned by --verify when the result has a blocking pair.
var errUnstable = errors.New("matching failed stability verification")

// runFlags mirrors config.Config for flag binding.
type runFlags struct {
	configPath  string
	input       string
	format      string
	debug       bool
	traceFormat string
	verify      bool
	logLevel    string
	logJSON     bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags runFlags

	root := &cobra.Command{
		Use:   "lvmatch",
		Short: "Compute a stable matching with the Gale–Shapley algorithm",
		Long: `lvmatch reads n, an n×n proposer preference table and an n×n receiver
preference table, then prints the proposer-optimal stable matching.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runMatch(cfg, stdin, stdout, stderr)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	f.StringVarP(&flags.input, "input", "i", "-", `input file ("-" for stdin)`)
	f.StringVarP(&flags.format, "format", "f", "text", "input format: text or yaml")
	f.BoolVarP(&flags.debug, "debug", "d", false, "print each proposal decision")
	f.StringVar(&flags.traceFormat, "trace-format", config.TraceText, "trace rendering: text, log or both")
	f.BoolVar(&flags.verify, "verify", false, "check the result for blocking pairs before reporting")
	f.StringVar(&flags.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error, off")
	f.BoolVar(&flags.logJSON, "log-json", false, "write log lines as JSON")

	root.AddCommand(newGenCmd(stdout))

	return root
}

// resolveConfig layers defaults, the optional config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags runFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = flags.input
	}
	if changed("format") {
		format, err := prefio.ParseFormat(flags.format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = format
	}
	if changed("debug") {
		cfg.Debug = flags.debug
	}
	if changed("trace-format") {
		cfg.TraceFormat = flags.traceFormat
	}
	if changed("verify") {
		cfg.Verify = flags.verify
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("log-json") {
		cfg.LogJSON = flags.logJSON
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, stderr io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig(stderr)
	lc.Level, _ = logging.ParseLevel(cfg.LogLevel)
	lc.JSON = cfg.LogJSON
	logging.ApplyEnv(&lc)
	if cfg.Debug && cfg.TraceFormat != config.TraceText && lc.Level > zerolog.DebugLevel {
		lc.Level = zerolog.DebugLevel
	}
	return logging.New(stderr, lc)
}

func runMatch(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	log := newLogger(cfg, stderr)

	in, err := readInstance(cfg, stdin)
	if err != nil {
		return err
	}
	log.Debug().Int("n", in.N).Str("format", cfg.Format.String()).Msg("instance loaded")

	engine, err := in.Engine()
	if err != nil {
		return err
	}

	if err = report.WriteRunHeader(stdout); err != nil {
		return err
	}

	var (
		sink  *report.TextSink
		trace galeshapley.Tracer
	)
	if cfg.Debug {
		switch cfg.TraceFormat {
		case config.TraceLog:
			trace = report.LogTracer(log)
		case config.TraceBoth:
			sink = report.NewTextSink(stdout)
			trace = report.Tee(sink.Tracer(), report.LogTracer(log))
		default:
			sink = report.NewTextSink(stdout)
			trace = sink.Tracer()
		}
	}

	res := engine.Run(galeshapley.WithTrace(trace))
	if sink != nil && sink.Err() != nil {
		return fmt.Errorf("write trace: %w", sink.Err())
	}

	if cfg.Verify {
		if err = verify(engine, res); err != nil {
			return err
		}
		log.Debug().Msg("stability verified")
	}

	if err = report.WriteMatching(stdout, res.Matching); err != nil {
		return err
	}

	log.Info().
		Int("n", engine.Size()).
		Int("proposals", res.Proposals).
		Int("rejections", res.Rejections).
		Int("displacements", res.Displacements).
		Msg("matching complete")
	return nil
}

func readInstance(cfg config.Config, stdin io.Reader) (*prefio.Instance, error) {
	if cfg.ReadsStdin() {
		return prefio.Read(stdin, cfg.Format)
	}
	fh, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer fh.Close()
	return prefio.Read(fh, cfg.Format)
}

func verify(e *galeshapley.Engine, res *galeshapley.Result) error {
	if err := galeshapley.ValidateMatching(res.Matching, e.Size()); err != nil {
		return err
	}
	pairs, err := e.BlockingPairs(res.Matching)
	if err != nil {
		return err
	}
	if len(pairs) > 0 {
		return fmt.Errorf("%w: %d blocking pairs, first P%d/R%d",
			errUnstable, len(pairs), pairs[0].Proposer, pairs[0].Receiver)
	}
	return nil
}
