package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/kr/pretty"
	"github.com/vito/hml/pkg/hml"
	"github.com/vito/hml/pkg/ioctx"
	"github.com/vito/hml/pkg/syntax"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type replCommand struct {
	name string
	args string
	desc string
}

var replCommandDefs = []replCommand{
	{"help", "", "Show this help"},
	{"type", "[name]", "Show the type of a binding, or of every binding"},
	{"mode", "[value|name|need]", "Show or change the evaluation strategy"},
	{"ast", "<expr>", "Show the syntax tree of an expression"},
	{"reset", "", "Forget every declaration"},
	{"clear", "", "Clear the screen"},
	{"exit", "", "Leave the REPL"},
}

// repl reads one input per line and either runs a command or evaluates it.
type repl struct {
	interp *hml.Interpreter
	in     *bufio.Scanner
	out    io.Writer

	prompt  string
	color   bool
	debug   bool
	timeout time.Duration
}

func newREPL(interp *hml.Interpreter, in io.Reader, out io.Writer) *repl {
	return &repl{
		interp: interp,
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: hml.DefaultConfig().Prompt,
	}
}

// Run reads inputs until exit or end of input.
func (r *repl) Run(ctx context.Context) error {
	ctx = ioctx.StdoutToContext(ctx, r.out)

	r.println(welcomeStyle.Render("hml v0.1.0 (mini-ML with Hindley-Milner type inference)"))
	r.println(dimStyle.Render(`Type "help" for commands.`))

	for {
		prompt := strings.TrimRight(r.prompt, " ")
		r.print(promptStyle.Render(prompt) + r.prompt[len(prompt):])
		if !r.in.Scan() {
			r.println("")
			return r.in.Err()
		}
		if quit := r.handle(ctx, r.in.Text()); quit {
			return nil
		}
	}
}

// handle runs one input line and reports whether the REPL should stop.
func (r *repl) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		r.help()
	case "exit":
		r.println(dimStyle.Render("Goodbye!"))
		return true
	case "clear":
		if r.color {
			_, _ = io.WriteString(r.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
		}
	case "reset":
		if err := r.interp.Reset(); err != nil {
			r.error(err)
			return false
		}
		r.println(resultStyle.Render("Environment reset."))
	case "mode":
		r.mode(args)
	case "type":
		r.typeOf(args)
	case "ast":
		r.ast(strings.TrimSpace(strings.TrimPrefix(line, cmd)))
	default:
		r.evaluate(ctx, line)
	}
	return false
}

func (r *repl) help() {
	r.println("Available commands:")
	width := 0
	for _, c := range replCommandDefs {
		width = max(width, len(c.name)+len(c.args)+1)
	}
	for _, c := range replCommandDefs {
		usage := strings.TrimSpace(c.name + " " + c.args)
		r.println(dimStyle.Render(fmt.Sprintf("  %-*s - %s", width, usage, c.desc)))
	}
	r.println("")
	r.println(dimStyle.Render("Anything else is type checked and evaluated."))
}

func (r *repl) mode(args []string) {
	if len(args) == 0 {
		r.println(resultStyle.Render(fmt.Sprintf("Evaluation mode: %s", r.interp.Strategy())))
		return
	}
	if err := r.interp.SetStrategy(args[0]); err != nil {
		r.error(err)
		return
	}
	r.println(resultStyle.Render(fmt.Sprintf("Evaluation mode set to %s.", r.interp.Strategy())))
}

func (r *repl) typeOf(args []string) {
	if len(args) == 0 {
		for _, b := range r.interp.Bindings() {
			r.println(b.String())
		}
		return
	}
	typ, err := r.interp.TypeOf(args[0])
	if err != nil {
		r.error(err)
		return
	}
	r.println(typ)
}

func (r *repl) ast(src string) {
	expr, err := syntax.Parse(src)
	if err != nil {
		r.error(err)
		return
	}
	r.println(pretty.Sprint(expr))
}

func (r *repl) evaluate(ctx context.Context, src string) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.interp.Evaluate(ctx, src)
	if err != nil {
		r.error(err)
		return
	}
	r.println(resultStyle.Render(res.Output))
}

func (r *repl) error(err error) {
	msg := err.Error()
	if r.debug {
		msg = fmt.Sprintf("%+v", err)
	}
	r.println(errorStyle.Render("Error -> "+msg))
}

// println writes one line, dropping escape sequences when the output is
// not a terminal.
func (r *repl) println(s string) {
	r.print(s + "\n")
}

func (r *repl) print(s string) {
	if !r.color {
		s = ansi.Strip(s)
	}
	_, _ = io.WriteString(r.out, s)
}
