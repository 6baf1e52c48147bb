package eval

import (
	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/token"
	"github.com/riftlang/rift/value"
)

// evalAssignment dispatches on the l-value's Access discriminant: VAR
// rewrites the binding found by lookup
// (error if const or undefined), ARRAY bounds-checks and rewrites (error
// if the index is out of range or the target isn't an array), OBJECT
// writes through unconditionally (error on a non-object target, which
// evalMemberAccess/evalArrayIndex already enforce by never producing
// AccessObject otherwise). Compound operators (`+=`, `-=`) compute
// `lhs OP rhs` and store the result.
func (e *Evaluator) evalAssignment(x *ast.BinaryOp, frame *environment.Frame, funcName string) (VisitResult, error) {
	lhs, err := e.evalExpression(x.Left, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	if lhs.Access == AccessNone {
		return VisitResult{}, errs.New("invalid assignment target")
	}

	rhs, err := e.evalExpression(x.Right, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}

	newVal := rhs.Value
	switch x.OpTok.Type {
	case token.PLUS_ASSIGN:
		v, err := applyBinary(token.PLUS, lhs.Value, rhs.Value)
		if err != nil {
			return VisitResult{}, err
		}
		newVal = v
	case token.DASH_ASSIGN:
		v, err := applyBinary(token.DASH, lhs.Value, rhs.Value)
		if err != nil {
			return VisitResult{}, err
		}
		newVal = v
	}

	switch lhs.Access {
	case AccessVar:
		ok, failedBecauseConst := frame.Reassign(lhs.VarName, newVal)
		if failedBecauseConst {
			return VisitResult{}, errs.New("cannot assign to const %q", lhs.VarName)
		}
		if !ok {
			return VisitResult{}, errs.New("identifier not found: %s", lhs.VarName)
		}
	case AccessArray:
		arr := lhs.Container.Arr
		if lhs.Index < 0 || lhs.Index >= int64(len(arr.Elements)) {
			return VisitResult{}, errs.New("array index %d out of range (length %d)", lhs.Index, len(arr.Elements))
		}
		arr.Elements[lhs.Index] = newVal
	case AccessObject:
		if lhs.Container.Kind != value.OBJECT {
			return VisitResult{}, errs.New("assignment target is not an object")
		}
		lhs.Container.Obj.Set(lhs.Key, newVal)
	default:
		return VisitResult{}, errs.New("invalid assignment target")
	}

	return valueResult(newVal), nil
}
