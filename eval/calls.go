package eval

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/callable"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/function"
	"github.com/riftlang/rift/value"
)

func newScriptFunction(name string, argNames []string, body *ast.Block, closure *environment.Frame) *function.Function {
	return &function.Function{Name: name, ArgNames: argNames, Body: body, Closure: closure}
}

// evalFunctionCall evaluates the callee and its arguments and dispatches
// the call: if the callee came through an object/array access the
// container becomes `this`, otherwise `this` is undefined. Arguments are
// evaluated left to right and evaluation stops at the first one that
// fails.
func (e *Evaluator) evalFunctionCall(x *ast.FunctionCall, frame *environment.Frame, funcName string) (VisitResult, error) {
	callee, err := e.evalExpression(x.Callee, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	this := value.Undefined()
	if callee.Access == AccessObject || callee.Access == AccessArray {
		this = callee.Container
	}

	args := make([]value.Value, len(x.Args))
	for i, a := range x.Args {
		vr, err := e.evalExpression(a, frame, funcName)
		if err != nil {
			return VisitResult{}, err
		}
		args[i] = vr.Value
	}

	v, err := e.callFunctionValue(callee.Value, this, args, x.ReturnThis)
	if err != nil {
		return VisitResult{}, err
	}
	return valueResult(v), nil
}

// evalNewExpression performs the nested call with ReturnThis set. Rift
// has no prototypal inheritance, so the constructed `this` starts as a
// bare empty object rather than copying a prototype chain.
func (e *Evaluator) evalNewExpression(x *ast.NewExpression, frame *environment.Frame, funcName string) (VisitResult, error) {
	return e.evalFunctionCall(x.Call, frame, funcName)
}

// callFunctionValue is the single dispatch point for invoking a
// value.Value of Kind FUNCTION, used both by evalFunctionCall and by
// CallValue (the callable.Environment hook natives use to re-enter the
// evaluator, e.g. a native sort calling a script comparator).
func (e *Evaluator) callFunctionValue(fn value.Value, this value.Value, args []value.Value, returnThis bool) (value.Value, error) {
	if fn.Kind != value.FUNCTION || fn.Fn == nil {
		return value.Undefined(), errs.New("value is not callable")
	}

	switch callee := fn.Fn.(type) {
	case *function.Function:
		return e.callScriptFunction(callee, this, args, returnThis)
	case *callable.Native:
		return e.callNative(callee, this, args)
	default:
		return value.Undefined(), errs.New("value is not callable")
	}
}

func (e *Evaluator) callScriptFunction(fn *function.Function, this value.Value, args []value.Value, returnThis bool) (value.Value, error) {
	callFrame := environment.NewChild(fn.Closure, fn.CallableName())

	constructedThis := this
	if returnThis {
		constructedThis = value.NewObjectValue(value.NewObject())
	}

	for i, name := range fn.ArgNames {
		v := value.Undefined()
		if i < len(args) {
			v = args[i]
		}
		callFrame.ForceSet(name, v, false)
	}
	callFrame.ForceSet("this", constructedThis, true)

	vr, err := e.runStatements(fn.Body.Statements, callFrame, fn.CallableName())
	if err != nil {
		return value.Undefined(), err
	}

	if returnThis {
		return constructedThis, nil
	}
	if vr.IsReturn {
		return vr.Value, nil
	}
	// Unhandled break/continue at the function boundary is silently
	// cleared; a bare completed body yields its last statement's value,
	// same as a Block.
	return vr.Value, nil
}

func (e *Evaluator) callNative(n *callable.Native, this value.Value, args []value.Value) (value.Value, error) {
	var nfe callable.FnError
	result := n.Fn(e, &this, args, &nfe)
	switch nfe.Code {
	case callable.NoError:
		return result, nil
	case callable.WrongNumberOfArgs:
		return value.Undefined(), errs.New("%s: wrong number of arguments: %s", n.Name, nfe.Message)
	case callable.WrongTypeOfArg:
		return value.Undefined(), errs.New("%s: wrong argument type: %s", n.Name, nfe.Message)
	case callable.ReturnValueIsException:
		return value.Undefined(), errs.NewThrown(result, nfe.Message)
	default:
		return result, nil
	}
}

// CallValue implements callable.Environment, letting native functions
// call back into a script function value (e.g. a native comparator-based
// sort).
func (e *Evaluator) CallValue(fn value.Value, this value.Value, args []value.Value) (value.Value, error) {
	return e.callFunctionValue(fn, this, args, false)
}
