package eval

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/value"
)

// traceAppend records the current statement on a RuntimeError's unwind
// path, building up a traceback one frame at a time. Non-runtime errors
// (there are none produced inside eval, but this keeps the helper total)
// pass through unchanged.
func traceAppend(err error, line int, funcName string) error {
	if rerr, ok := err.(*errs.RuntimeError); ok {
		rerr.Append(line, funcName)
	}
	return err
}

// evalStatement dispatches on the concrete statement type and is the sole
// point on the unwind path that records stmt on a RuntimeError's
// traceback: dispatchStatement and everything it calls return raw errors,
// and this wrapper appends (stmt.Line(), funcName) exactly once before
// the error continues upward. frame is the scope the statement executes
// in; funcName names the enclosing function for traceback frames
// ("<global>" at the top level).
func (e *Evaluator) evalStatement(stmt ast.Statement, frame *environment.Frame, funcName string) (VisitResult, error) {
	vr, err := e.dispatchStatement(stmt, frame, funcName)
	if err != nil {
		return VisitResult{}, traceAppend(err, stmt.Line(), funcName)
	}
	return vr, nil
}

func (e *Evaluator) dispatchStatement(stmt ast.Statement, frame *environment.Frame, funcName string) (VisitResult, error) {
	switch s := stmt.(type) {
	case *ast.Block:
		return e.evalBlockStatement(s, frame, funcName)
	case *ast.VarDeclaration:
		return e.evalVarDeclaration(s, frame, funcName)
	case *ast.If:
		return e.evalIf(s, frame, funcName)
	case *ast.While:
		return e.evalWhile(s, frame, funcName)
	case *ast.DoWhile:
		return e.evalDoWhile(s, frame, funcName)
	case *ast.For:
		return e.evalFor(s, frame, funcName)
	case *ast.ForOf:
		return e.evalForOf(s, frame, funcName)
	case *ast.Break:
		if s.Label != "" && !frame.ContainsLabel(s.Label) {
			return VisitResult{}, errs.New("undefined label %q", s.Label)
		}
		return VisitResult{IsBreak: true, Label: s.Label}, nil
	case *ast.Continue:
		if s.Label != "" && !frame.ContainsLabel(s.Label) {
			return VisitResult{}, errs.New("undefined label %q", s.Label)
		}
		return VisitResult{IsContinue: true, Label: s.Label}, nil
	case *ast.Return:
		return e.evalReturn(s, frame, funcName)
	case *ast.FunctionDeclaration:
		return e.evalFunctionDeclaration(s, frame)
	case *ast.Throw:
		return e.evalThrow(s, frame, funcName)
	case *ast.TryCatch:
		return e.evalTryCatch(s, frame, funcName)
	case *ast.Delete:
		return e.evalDelete(s, frame, funcName)
	case *ast.ExpressionStatement:
		if s.Expr == nil {
			return valueResult(value.Undefined()), nil
		}
		vr, err := e.evalExpression(s.Expr, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		return valueResult(vr.Value), nil
	default:
		return VisitResult{}, errs.New("unhandled statement type %T", stmt)
	}
}

// evalBlockStatement pushes a `<scope>` child frame, runs statements in
// order, and pops on exit. Any control-flow signal or error propagates
// to the caller.
func (e *Evaluator) evalBlockStatement(b *ast.Block, parent *environment.Frame, funcName string) (VisitResult, error) {
	frame := environment.NewChild(parent, "<scope>")
	return e.runStatements(b.Statements, frame, funcName)
}

// runStatements executes stmts in frame, returning as soon as a signal
// (return/break/continue) or an error surfaces; otherwise the value of
// the last statement executed is returned, per the Block's role as an
// expression-valued construct the REPL can print.
func (e *Evaluator) runStatements(stmts []ast.Statement, frame *environment.Frame, funcName string) (VisitResult, error) {
	last := valueResult(value.Undefined())
	for _, stmt := range stmts {
		vr, err := e.evalStatement(stmt, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if vr.IsReturn || vr.IsBreak || vr.IsContinue {
			return vr, nil
		}
		last = vr
	}
	return last, nil
}

func (e *Evaluator) evalVarDeclaration(d *ast.VarDeclaration, frame *environment.Frame, funcName string) (VisitResult, error) {
	target := frame
	if d.Qualifier == ast.QualVar {
		target = frame.GlobalFrame()
	}
	for _, decl := range d.Decls {
		v := value.Undefined()
		if decl.Init != nil {
			vr, err := e.evalExpression(decl.Init, frame, funcName)
			if err != nil {
				return VisitResult{}, err
			}
			v = vr.Value
		}
		if !target.Declare(decl.Name, v, d.Qualifier == ast.QualConst) {
			return VisitResult{}, errs.New("identifier %q already declared in this scope", decl.Name)
		}
	}
	return valueResult(value.Undefined()), nil
}

func (e *Evaluator) evalIf(s *ast.If, frame *environment.Frame, funcName string) (VisitResult, error) {
	cond, err := e.evalExpression(s.Cond, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	if cond.Value.Truthy() {
		return e.evalStatement(s.Then, frame, funcName)
	}
	if s.Else != nil {
		return e.evalStatement(s.Else, frame, funcName)
	}
	return valueResult(value.Undefined()), nil
}

func (e *Evaluator) evalReturn(s *ast.Return, frame *environment.Frame, funcName string) (VisitResult, error) {
	v := value.Undefined()
	if s.Value != nil {
		vr, err := e.evalExpression(s.Value, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		v = vr.Value
	}
	return VisitResult{Value: v, IsReturn: true}, nil
}

func (e *Evaluator) evalThrow(s *ast.Throw, frame *environment.Frame, funcName string) (VisitResult, error) {
	vr, err := e.evalExpression(s.Value, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	return VisitResult{}, errs.NewThrown(vr.Value, value.ToDisplayString(vr.Value))
}

// evalTryCatch runs the try block; on a RuntimeError it binds the
// exception name (to the thrown value if one was attached, otherwise to
// the error's message string) in a fresh frame and runs the catch block.
// Nested throws in the catch block propagate normally. CompileErrors
// never reach here — the pipeline never enters the evaluator for those.
func (e *Evaluator) evalTryCatch(s *ast.TryCatch, frame *environment.Frame, funcName string) (VisitResult, error) {
	vr, err := e.evalBlockStatement(s.TryBlock, frame, funcName)
	if err == nil {
		return vr, nil
	}
	rerr, ok := err.(*errs.RuntimeError)
	if !ok {
		return VisitResult{}, err
	}
	catchFrame := environment.NewChild(frame, "<scope>")
	var bound value.Value
	if rerr.ThrownValue != nil {
		bound = rerr.ThrownValue.(value.Value)
	} else {
		bound = value.Str(rerr.Message)
	}
	catchFrame.ForceSet(s.ExceptName, bound, false)
	return e.runStatements(s.CatchBlock.Statements, catchFrame, funcName)
}

func (e *Evaluator) evalDelete(s *ast.Delete, frame *environment.Frame, funcName string) (VisitResult, error) {
	target, err := e.evalExpression(s.Target, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	if target.Access != AccessObject {
		return VisitResult{}, errs.New("'delete' target is not an object property")
	}
	target.Container.Obj.Delete(target.Key)
	return valueResult(value.Undefined()), nil
}

// evalFunctionDeclaration constructs a script function and declares it as
// a non-const binding in the current frame; duplicate declaration is a
// runtime error.
func (e *Evaluator) evalFunctionDeclaration(s *ast.FunctionDeclaration, frame *environment.Frame) (VisitResult, error) {
	fn := newScriptFunction(s.Name, s.ArgNames, s.Body, frame)
	if !frame.Declare(s.Name, value.Func(fn), false) {
		return VisitResult{}, errs.New("function %q already declared in this scope", s.Name)
	}
	return valueResult(value.Func(fn)), nil
}
