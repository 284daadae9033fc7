package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vito/hml/pkg/hml"
	"github.com/vito/hml/pkg/ioctx"
	"github.com/vito/hml/pkg/syntax"
)

// sourceLine is one input of a script along with its 1-based line number.
type sourceLine struct {
	num  int
	text string
}

// readLines returns the inputs of a script. Blank lines and lines starting
// with # are skipped.
func readLines(r io.Reader) ([]sourceLine, error) {
	var lines []sourceLine
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, sourceLine{num: num, text: text})
	}
	return lines, errors.WithStack(scanner.Err())
}

func readFile(path string) ([]sourceLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close() //nolint:errcheck
	return readLines(f)
}

// runFile evaluates every input of path in one session, printing each
// result, and stops at the first failure.
func runFile(ctx context.Context, interp *hml.Interpreter, path string) error {
	lines, err := readFile(path)
	if err != nil {
		return err
	}
	stdout := ioctx.StdoutFromContext(ctx)
	for _, line := range lines {
		res, err := interp.Evaluate(ctx, line.text)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", path, line.num)
		}
		_, _ = fmt.Fprintln(stdout, res.Output)
	}
	return nil
}

func checkCmd(flags *Flags) *cobra.Command {
	var dumpAST bool

	cmd := &cobra.Command{
		Use:   "check [flags] file",
		Short: "Type check a file without evaluating it",
		Long: `Type check every line of a file in one session and print the type of
each. Declarations are visible to later lines.`,
		Example: `  # Print the type of each line
  hml check script.hml

  # Also dump the syntax tree of each line
  hml check --ast script.hml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(ioctx.StderrFromContext(cmd.Context()), flags.Debug)

			cfg, err := loadConfig(cmd, *flags)
			if err != nil {
				return err
			}
			interp, err := hml.New(cfg)
			if err != nil {
				return err
			}
			return checkFile(cmd.Context(), interp, args[0], dumpAST)
		},
	}

	cmd.Flags().BoolVar(&dumpAST, "ast", false, "Dump the syntax tree of each line")

	return cmd
}

func checkFile(ctx context.Context, interp *hml.Interpreter, path string, dumpAST bool) error {
	lines, err := readFile(path)
	if err != nil {
		return err
	}
	stdout := ioctx.StdoutFromContext(ctx)
	for _, line := range lines {
		if dumpAST {
			expr, err := syntax.Parse(line.text)
			if err != nil {
				return errors.Wrapf(err, "%s:%d", path, line.num)
			}
			_, _ = pretty.Fprintf(stdout, "%# v\n", expr)
		}
		typ, err := interp.Check(line.text)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", path, line.num)
		}
		_, _ = fmt.Fprintln(stdout, typ)
	}
	return nil
}
