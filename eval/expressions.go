package eval

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/value"
)

// evalExpression dispatches on the concrete expression type, producing a
// VisitResult that carries both the value and, for VarAccess/
// MemberAccess/ArrayIndex, the l-value metadata an enclosing assignment
// needs.
func (e *Evaluator) evalExpression(expr ast.Expression, frame *environment.Frame, funcName string) (VisitResult, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return valueResult(x.Value), nil

	case *ast.ArrayLiteral:
		elems := make([]value.Value, len(x.Elements))
		for i, el := range x.Elements {
			vr, err := e.evalExpression(el, frame, funcName)
			if err != nil {
				return VisitResult{}, err
			}
			elems[i] = vr.Value
		}
		return valueResult(value.ArrayOf(elems...)), nil

	case *ast.ObjectLiteral:
		obj := value.NewObject()
		for i, key := range x.Keys {
			vr, err := e.evalExpression(x.Values[i], frame, funcName)
			if err != nil {
				return VisitResult{}, err
			}
			obj.Set(key, vr.Value)
		}
		return valueResult(value.NewObjectValue(obj)), nil

	case *ast.VarAccess:
		return e.evalVarAccess(x, frame)

	case *ast.MemberAccess:
		return e.evalMemberAccess(x, frame, funcName)

	case *ast.ArrayIndex:
		return e.evalArrayIndex(x, frame, funcName)

	case *ast.FunctionCall:
		return e.evalFunctionCall(x, frame, funcName)

	case *ast.NewExpression:
		return e.evalNewExpression(x, frame, funcName)

	case *ast.BinaryOp:
		return e.evalBinaryOp(x, frame, funcName)

	case *ast.UnaryOp:
		return e.evalUnaryOp(x, frame, funcName)

	case *ast.FunctionLiteral:
		fn := newScriptFunction("", x.ArgNames, x.Body, frame)
		return valueResult(value.Func(fn)), nil

	default:
		return VisitResult{}, errs.New("unhandled expression type %T", expr)
	}
}

// evalVarAccess resolves a name through the environment chain and tags
// the result AccessVar so an enclosing assignment can rewrite it.
func (e *Evaluator) evalVarAccess(x *ast.VarAccess, frame *environment.Frame) (VisitResult, error) {
	name := x.Name()
	v, _, _, ok := frame.Lookup(name)
	if !ok {
		return VisitResult{}, errs.New("identifier not found: %s", name)
	}
	return VisitResult{Value: v, Access: AccessVar, VarName: name}, nil
}

// evalMemberAccess always resolves to AccessObject; indexing with a
// computed string key is handled by evalArrayIndex's own coercion rule,
// not here.
func (e *Evaluator) evalMemberAccess(x *ast.MemberAccess, frame *environment.Frame, funcName string) (VisitResult, error) {
	obj, err := e.evalExpression(x.Object, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	if obj.Value.Kind != value.OBJECT {
		return VisitResult{}, errs.New("cannot access member %q of non-object value", x.Member)
	}
	v, _ := obj.Value.Obj.Get(x.Member)
	return VisitResult{Value: v, Access: AccessObject, Container: obj.Value, Key: x.Member}, nil
}

// evalArrayIndex implements the §4.4 coercion rule: a string-typed index
// resolves to OBJECT access (keyed by that string), a numeric index to
// ARRAY access; any other index type is a runtime error.
func (e *Evaluator) evalArrayIndex(x *ast.ArrayIndex, frame *environment.Frame, funcName string) (VisitResult, error) {
	obj, err := e.evalExpression(x.Object, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	idx, err := e.evalExpression(x.Index, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}

	switch idx.Value.Kind {
	case value.STRING:
		if obj.Value.Kind != value.OBJECT {
			return VisitResult{}, errs.New("cannot access property %q of non-object value", idx.Value.Str)
		}
		v, _ := obj.Value.Obj.Get(idx.Value.Str)
		return VisitResult{Value: v, Access: AccessObject, Container: obj.Value, Key: idx.Value.Str}, nil

	case value.INTEGER:
		if obj.Value.Kind != value.ARRAY {
			return VisitResult{}, errs.New("cannot index non-array value with an integer")
		}
		i := idx.Value.Int
		if i < 0 || i >= int64(len(obj.Value.Arr.Elements)) {
			return VisitResult{Value: value.Undefined(), Access: AccessArray, Container: obj.Value, Index: i}, nil
		}
		return VisitResult{Value: obj.Value.Arr.Elements[i], Access: AccessArray, Container: obj.Value, Index: i}, nil

	default:
		return VisitResult{}, errs.New("array/object index must be an integer or a string, got %s", idx.Value.TypeOf())
	}
}
