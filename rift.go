// Package rift is the host-facing facade over the interpreter: lexer,
// parser, environment, and evaluator are all internal implementation
// packages an embedder never touches directly.
package rift

import (
	"io"

	"github.com/riftlang/rift/eval"
	"github.com/riftlang/rift/value"
)

// Interpreter wraps a single evaluator instance and its global scope. A
// zero Interpreter is not usable; construct one with New.
type Interpreter struct {
	eval *eval.Evaluator
}

// New constructs an interpreter with an empty global scope.
func New() *Interpreter {
	return &Interpreter{eval: eval.New()}
}

// ForceSetGlobal installs a host-provided binding into the global scope,
// bypassing the usual "already declared" check declarations get inside
// script code. Use this to expose native functions and host values to
// scripts before calling Evaluate.
func (i *Interpreter) ForceSetGlobal(name string, v value.Value, isConst bool) {
	i.eval.ForceSetGlobal(name, v, isConst)
}

// SetOutput redirects where native globals that write to the host (e.g. a
// `print`) send their output. Defaults to os.Stdout.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.eval.SetWriter(w)
}

// Evaluate lexes, parses, and runs source against the interpreter's
// global scope. Declarations, and any side effects on host-provided
// values, persist across calls on the same Interpreter, so a sequence of
// Evaluate calls behaves like a REPL session.
//
// A *errs.CompileError means source never reached the evaluator. A
// *errs.RuntimeError means it reached the evaluator and failed there,
// and may carry a thrown script value recoverable via errors.As.
func (i *Interpreter) Evaluate(source string) (value.Value, error) {
	return i.eval.Evaluate(source)
}
