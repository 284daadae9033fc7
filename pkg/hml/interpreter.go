// Package hml ties parsing, type inference and evaluation into a session
// whose declarations accumulate across inputs.
package hml

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/eval"
	"github.com/vito/hml/pkg/hm"
	"github.com/vito/hml/pkg/infer"
	"github.com/vito/hml/pkg/syntax"
)

// Prelude is evaluated into every new session when Config.Prelude is set.
var Prelude = []string{
	`let fst = \p. p (\a b. a)`,
	`let snd = \p. p (\a b. b)`,
}

// Result is the outcome of one successful Evaluate.
type Result struct {
	Type  string
	Value eval.Value
	// Output is the REPL rendering "<type>: <value>".
	Output string
}

// Binding is one global name and its printed type scheme.
type Binding struct {
	Name string
	Type string
}

func (b Binding) String() string {
	return b.Name + " :: " + b.Type
}

// Interpreter holds the global type and value environments of a session.
type Interpreter struct {
	config    Config
	style     hm.PrintStyle
	inferer   *infer.Inferer
	evaluator *eval.Evaluator

	types  *infer.TypeEnv
	values *eval.Frame
}

func New(config Config) (*Interpreter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	style, err := hm.ParsePrintStyle(config.Printer)
	if err != nil {
		return nil, err
	}
	interp := &Interpreter{
		config:  config,
		style:   style,
		inferer: infer.New(),
	}
	interp.inferer.Style = style
	if err := interp.SetStrategy(config.Strategy); err != nil {
		return nil, err
	}
	if err := interp.Reset(); err != nil {
		return nil, err
	}
	return interp, nil
}

// Config returns the settings the session was created with, with the
// current strategy.
func (interp *Interpreter) Config() Config {
	cfg := interp.config
	cfg.Strategy = interp.evaluator.Strategy().String()
	return cfg
}

// Strategy returns the current evaluation strategy.
func (interp *Interpreter) Strategy() eval.Strategy {
	return interp.evaluator.Strategy()
}

// SetStrategy switches evaluation to "value", "name" or "need". Existing
// bindings are kept.
func (interp *Interpreter) SetStrategy(name string) error {
	strategy, err := eval.ParseStrategy(name)
	if err != nil {
		return err
	}
	interp.evaluator = eval.New(strategy, eval.WithMaxDepth(interp.config.MaxDepth))
	return nil
}

// Reset discards every declaration and reinstalls the prelude.
func (interp *Interpreter) Reset() error {
	interp.types = infer.NewTypeEnv()
	interp.values = eval.NewFrame()
	if !interp.config.Prelude {
		return nil
	}
	for _, b := range eval.Builtins() {
		interp.types.Set(b.Name, b.Scheme)
		interp.values.Set(b.Name, b)
	}
	for _, src := range Prelude {
		if _, err := interp.Evaluate(context.Background(), src); err != nil {
			return errors.Wrapf(err, "prelude %q", src)
		}
	}
	return nil
}

// Evaluate parses, type checks and evaluates src. If any stage fails the
// session is left as it was before the call.
func (interp *Interpreter) Evaluate(ctx context.Context, src string) (Result, error) {
	expr, err := syntax.Parse(src)
	if err != nil {
		return Result{}, err
	}
	return interp.EvaluateExpr(ctx, expr)
}

// EvaluateExpr is Evaluate for an already parsed expression.
func (interp *Interpreter) EvaluateExpr(ctx context.Context, expr ast.Expr) (res Result, err error) {
	types := interp.types.Snapshot()
	values := interp.values.Snapshot()
	defer func() {
		if err != nil {
			interp.types.Restore(types)
			interp.values.Restore(values)
		}
	}()

	scheme, err := interp.inferer.Infer(interp.types, expr)
	if err != nil {
		return Result{}, err
	}
	val, err := interp.evaluator.Evaluate(ctx, interp.values, expr)
	if err != nil {
		return Result{}, err
	}

	res = Result{
		Type:  interp.style.Scheme(scheme.Normalize()),
		Value: val,
	}
	res.Output = fmt.Sprintf("%s: %s", res.Type, val)
	if ast.IsDecl(expr) {
		slog.Debug("committed declaration", "expr", expr, "type", res.Type)
	}
	return res, nil
}

// Check parses and type checks src without evaluating it. Declarations
// are installed into the type environment only. If checking fails the type
// environment is left as it was before the call.
func (interp *Interpreter) Check(src string) (string, error) {
	expr, err := syntax.Parse(src)
	if err != nil {
		return "", err
	}
	types := interp.types.Snapshot()
	scheme, err := interp.inferer.Infer(interp.types, expr)
	if err != nil {
		interp.types.Restore(types)
		return "", err
	}
	return interp.style.Scheme(scheme.Normalize()), nil
}

// TypeOf returns the printed scheme bound to name.
func (interp *Interpreter) TypeOf(name string) (string, error) {
	scheme, err := interp.types.Lookup(name)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return interp.style.Scheme(scheme.Normalize()), nil
}

// Bindings lists every global name with its type, sorted by name.
func (interp *Interpreter) Bindings() []Binding {
	var bindings []Binding
	for name, scheme := range interp.types.Bindings() {
		bindings = append(bindings, Binding{
			Name: name,
			Type: interp.style.Scheme(scheme.Normalize()),
		})
	}
	return bindings
}
