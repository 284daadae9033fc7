package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vito/hml/pkg/hml"
	"github.com/vito/hml/pkg/ioctx"
)

// Flags holds the command line settings.
type Flags struct {
	Debug      bool
	ConfigPath string
	Strategy   string
	Printer    string
	NoPrelude  bool
	MaxDepth   int
	Timeout    time.Duration
}

func main() {
	var flags Flags

	rootCmd := &cobra.Command{
		Use:   "hml [flags] [file]",
		Short: "hml language interpreter",
		Long: `hml is a small functional language with Hindley-Milner type inference.
Every input is type checked before it is evaluated, under call-by-value,
call-by-name or call-by-need.`,
		Example: `  # Start interactive REPL
  hml

  # Evaluate each line of a file
  hml script.hml

  # Evaluate lazily
  hml -s need script.hml

  # Type check a file without running it
  hml check script.hml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(ioctx.StderrFromContext(cmd.Context()), flags.Debug)

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			interp, err := hml.New(cfg)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				ctx, cancel := withTimeout(cmd.Context(), flags.Timeout)
				defer cancel()
				return runFile(ctx, interp, args[0])
			}

			r := newREPL(interp, cmd.InOrStdin(), ioctx.StdoutFromContext(cmd.Context()))
			r.debug = flags.Debug
			r.prompt = cfg.Prompt
			r.timeout = flags.Timeout
			r.color = isTerminal(os.Stdout)
			return r.Run(cmd.Context())
		},
	}

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")
	pflags.StringVar(&flags.ConfigPath, "config", "", "Path to hml.toml (searched upward from the working directory if not specified)")
	pflags.StringVarP(&flags.Strategy, "strategy", "s", "", "Evaluation strategy: value, name or need")
	pflags.StringVar(&flags.Printer, "printer", "", "Type printer: canonical or legacy")
	pflags.BoolVar(&flags.NoPrelude, "no-prelude", false, "Start without builtins and the pair selectors")
	pflags.IntVar(&flags.MaxDepth, "max-depth", 0, "Maximum evaluation depth (0 for no limit)")
	pflags.DurationVar(&flags.Timeout, "timeout", 0, "Abort evaluation after this long (0 for no limit)")

	rootCmd.AddCommand(checkCmd(&flags))

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			if flags.Debug {
				_, _ = fmt.Fprintf(w, "%+v\n", err)
				return
			}
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    !isTerminal(w),
		TimeFormat: time.Kitchen,
	})))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig layers hml.toml, the environment and any flags that were set.
func loadConfig(cmd *cobra.Command, flags Flags) (hml.Config, error) {
	var cfg hml.Config
	if flags.ConfigPath != "" {
		loaded, err := hml.LoadConfig(flags.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return cfg, errors.WithStack(err)
		}
		_, found, err := hml.FindConfig(cwd)
		if err != nil {
			return cfg, err
		}
		cfg = found
	}

	cfg.ApplyEnv()

	changed := cmd.Flags().Changed
	if changed("strategy") {
		cfg.Strategy = flags.Strategy
	}
	if changed("printer") {
		cfg.Printer = flags.Printer
	}
	if changed("no-prelude") {
		cfg.Prelude = !flags.NoPrelude
	}
	if changed("max-depth") {
		cfg.MaxDepth = flags.MaxDepth
	}
	return cfg, cfg.Validate()
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
