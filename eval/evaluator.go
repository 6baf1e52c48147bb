// Package eval implements a recursive tree-walking visitor: it has no
// explicit stack of its own and rides the host Go call stack, turning an
// *ast.Block into a VisitResult (or an *errs.RuntimeError) against a
// chain of environment.Frame scopes.
package eval

import (
	"io"
	"os"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/parser"
	"github.com/riftlang/rift/value"
)

// Evaluator owns the global frame and the output stream native globals
// write to, so a host-installed `print` can be redirected independently
// of os.Stdout.
type Evaluator struct {
	Global *environment.Frame
	Writer io.Writer
}

// New constructs an evaluator with an empty global frame.
func New() *Evaluator {
	return &Evaluator{Global: environment.NewRoot(), Writer: os.Stdout}
}

// SetWriter redirects where native globals (e.g. a host-installed print)
// send output.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// ForceSetGlobal installs a host-provided binding into the global frame.
func (e *Evaluator) ForceSetGlobal(name string, v value.Value, isConst bool) {
	e.Global.ForceSet(name, v, isConst)
}

// Evaluate lexes, parses, and runs source against the evaluator's global
// frame. The result is the value of the last statement executed (an
// ExpressionStatement's expression, or an unhandled top-level `return`'s
// value) or an error.
//
// A *errs.CompileError means the program never reached the evaluator. A
// *errs.RuntimeError means it reached the evaluator and failed there.
func (e *Evaluator) Evaluate(source string) (value.Value, error) {
	block, err := parser.Parse(source)
	if err != nil {
		return value.Undefined(), err
	}
	vr, err := e.evalProgram(block)
	if err != nil {
		return value.Undefined(), err
	}
	return vr.Value, nil
}

// evalProgram runs the top-level block directly in the global frame
// (rather than pushing a `<scope>` child the way a nested Block would),
// so top-level `var`/`let`/`const`/`function` declarations land in the
// global frame itself.
func (e *Evaluator) evalProgram(block *ast.Block) (VisitResult, error) {
	last := valueResult(value.Undefined())
	for _, stmt := range block.Statements {
		vr, err := e.evalStatement(stmt, e.Global, "<global>")
		if err != nil {
			return VisitResult{}, err
		}
		if vr.IsReturn {
			return vr, nil
		}
		if vr.IsBreak || vr.IsContinue {
			// Unhandled break/continue at the top level is silently
			// cleared rather than surfaced as an error.
			continue
		}
		last = vr
	}
	return last, nil
}
