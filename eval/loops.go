package eval

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/value"
)

// matchesLoop reports whether a break/continue signal targets the loop
// carrying ownLabel: an unlabeled signal always matches the nearest loop;
// a labeled one matches only the loop wearing that exact label.
func matchesLoop(signalLabel, ownLabel string) bool {
	return signalLabel == "" || signalLabel == ownLabel
}

// withLoopLabel records a loop's label in frame's label set (via
// InsertLabel/RemoveFromCurrent) for the duration of run, so a labeled
// break/continue nested several blocks deep can confirm the label is
// actually in scope via frame.ContainsLabel before unwinding to it.
func withLoopLabel(frame *environment.Frame, label string, run func() (VisitResult, error)) (VisitResult, error) {
	if label == "" {
		return run()
	}
	frame.InsertLabel(label)
	defer frame.RemoveFromCurrent(label)
	return run()
}

func (e *Evaluator) evalWhile(s *ast.While, frame *environment.Frame, funcName string) (VisitResult, error) {
	return withLoopLabel(frame, s.Label, func() (VisitResult, error) { return e.runWhile(s, frame, funcName) })
}

func (e *Evaluator) runWhile(s *ast.While, frame *environment.Frame, funcName string) (VisitResult, error) {
	for {
		cond, err := e.evalExpression(s.Cond, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if !cond.Value.Truthy() {
			break
		}
		vr, err := e.evalStatement(s.Body, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if vr.IsReturn {
			return vr, nil
		}
		if vr.IsBreak {
			if !matchesLoop(vr.Label, s.Label) {
				return vr, nil
			}
			break
		}
		if vr.IsContinue && !matchesLoop(vr.Label, s.Label) {
			return vr, nil
		}
	}
	return valueResult(value.Undefined()), nil
}

func (e *Evaluator) evalDoWhile(s *ast.DoWhile, frame *environment.Frame, funcName string) (VisitResult, error) {
	return withLoopLabel(frame, s.Label, func() (VisitResult, error) { return e.runDoWhile(s, frame, funcName) })
}

func (e *Evaluator) runDoWhile(s *ast.DoWhile, frame *environment.Frame, funcName string) (VisitResult, error) {
	for {
		vr, err := e.evalStatement(s.Body, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if vr.IsReturn {
			return vr, nil
		}
		if vr.IsBreak {
			if !matchesLoop(vr.Label, s.Label) {
				return vr, nil
			}
			break
		}
		if vr.IsContinue && !matchesLoop(vr.Label, s.Label) {
			return vr, nil
		}
		cond, err := e.evalExpression(s.Cond, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if !cond.Value.Truthy() {
			break
		}
	}
	return valueResult(value.Undefined()), nil
}

// evalFor pushes an enclosing `<outer_for_loop>` frame so the init
// clause's declaration is local to the loop.
func (e *Evaluator) evalFor(s *ast.For, parent *environment.Frame, funcName string) (VisitResult, error) {
	frame := environment.NewChild(parent, "<outer_for_loop>")
	if s.Init != nil {
		vr, err := e.evalStatement(s.Init, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		_ = vr
	}
	return withLoopLabel(frame, s.Label, func() (VisitResult, error) { return e.runFor(s, frame, funcName) })
}

func (e *Evaluator) runFor(s *ast.For, frame *environment.Frame, funcName string) (VisitResult, error) {
	for {
		cond, err := e.evalExpression(s.Cond, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if !cond.Value.Truthy() {
			break
		}
		vr, err := e.evalStatement(s.Body, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		if vr.IsReturn {
			return vr, nil
		}
		if vr.IsBreak {
			if !matchesLoop(vr.Label, s.Label) {
				return vr, nil
			}
			break
		}
		if vr.IsContinue && !matchesLoop(vr.Label, s.Label) {
			return vr, nil
		}
		if _, err := e.evalStatement(s.Incr, frame, funcName); err != nil {
			return VisitResult{}, err
		}
	}
	return valueResult(value.Undefined()), nil
}

// evalForOf iterates an object's entries in insertion order or an
// array's elements in index order, pushing a fresh `<for_of_loop>` frame
// per iteration so loop-variable bindings don't leak or collide across
// iterations.
func (e *Evaluator) evalForOf(s *ast.ForOf, parent *environment.Frame, funcName string) (VisitResult, error) {
	iter, err := e.evalExpression(s.Iterable, parent, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	if s.Label != "" {
		parent.InsertLabel(s.Label)
		defer parent.RemoveFromCurrent(s.Label)
	}

	runBody := func(bindings map[string]value.Value) (VisitResult, bool, error) {
		frame := environment.NewChild(parent, "<for_of_loop>")
		for name, v := range bindings {
			frame.ForceSet(name, v, false)
		}
		vr, err := e.evalStatement(s.Body, frame, funcName)
		if err != nil {
			return VisitResult{}, false, err
		}
		if vr.IsReturn {
			return vr, true, nil
		}
		if vr.IsBreak {
			if !matchesLoop(vr.Label, s.Label) {
				return vr, true, nil
			}
			return VisitResult{}, true, nil
		}
		if vr.IsContinue && !matchesLoop(vr.Label, s.Label) {
			return vr, true, nil
		}
		return VisitResult{}, false, nil
	}

	switch iter.Value.Kind {
	case value.OBJECT:
		for _, k := range iter.Value.Obj.Keys() {
			v, _ := iter.Value.Obj.Get(k)
			bindings := map[string]value.Value{}
			if len(s.Names) == 1 {
				bindings[s.Names[0]] = value.Str(k)
			} else {
				bindings[s.Names[0]] = value.Str(k)
				bindings[s.Names[1]] = v
			}
			vr, stop, err := runBody(bindings)
			if err != nil {
				return VisitResult{}, err
			}
			if stop {
				return vr, nil
			}
		}
	case value.ARRAY:
		for i, v := range iter.Value.Arr.Elements {
			bindings := map[string]value.Value{}
			if len(s.Names) == 1 {
				bindings[s.Names[0]] = v
			} else {
				bindings[s.Names[0]] = value.Int(int64(i))
				bindings[s.Names[1]] = v
			}
			vr, stop, err := runBody(bindings)
			if err != nil {
				return VisitResult{}, err
			}
			if stop {
				return vr, nil
			}
		}
	default:
		return VisitResult{}, errs.New("for-of requires an array or object, got %s", iter.Value.TypeOf())
	}
	return valueResult(value.Undefined()), nil
}
