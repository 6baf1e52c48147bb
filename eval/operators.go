package eval

import (
	"math"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/token"
	"github.com/riftlang/rift/value"
)

// evalBinaryOp dispatches assignment operators to evalAssignment and
// applies every other infix operator to both fully-evaluated operands.
// `&&`/`||` are included in "every other operator": both sides are
// always evaluated before the operator is applied, with no
// short-circuiting.
func (e *Evaluator) evalBinaryOp(x *ast.BinaryOp, frame *environment.Frame, funcName string) (VisitResult, error) {
	switch x.OpTok.Type {
	case token.ASSIGN, token.PLUS_ASSIGN, token.DASH_ASSIGN:
		return e.evalAssignment(x, frame, funcName)
	}

	left, err := e.evalExpression(x.Left, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	right, err := e.evalExpression(x.Right, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	v, err := applyBinary(x.OpTok.Type, left.Value, right.Value)
	if err != nil {
		return VisitResult{}, err
	}
	return valueResult(v), nil
}

// applyBinary implements the arithmetic, relational, equality, bitwise,
// and logical operators.
func applyBinary(op token.Type, l, r value.Value) (value.Value, error) {
	switch op {
	case token.PLUS:
		if l.Kind == value.STRING || r.Kind == value.STRING {
			return value.Str(value.ToDisplayString(l) + value.ToDisplayString(r)), nil
		}
		return numericBinary(op, l, r)

	case token.DASH, token.STAR, token.FSLASH, token.PERCENT, token.POW:
		return numericBinary(op, l, r)

	case token.BIT_LSHIFT, token.BIT_RSHIFT, token.BIT_URSHIFT, token.BIT_AND, token.BIT_XOR, token.BIT_OR:
		return bitwiseBinary(op, l, r)

	case token.GT, token.GE, token.LT, token.LE:
		cmp, ok := value.CompareOrdered(l, r)
		if !ok {
			return value.Value{}, errs.New("cannot compare %s with %s", l.TypeOf(), r.TypeOf())
		}
		switch op {
		case token.GT:
			return value.Bool(cmp > 0), nil
		case token.GE:
			return value.Bool(cmp >= 0), nil
		case token.LT:
			return value.Bool(cmp < 0), nil
		default:
			return value.Bool(cmp <= 0), nil
		}

	case token.EQUALS:
		return value.Bool(value.LooseEquals(l, r)), nil
	case token.NEQUALS:
		return value.Bool(!value.LooseEquals(l, r)), nil
	case token.STRICT_EQUALS:
		return value.Bool(value.StrictEquals(l, r)), nil
	case token.STRICT_NEQUALS:
		return value.Bool(!value.StrictEquals(l, r)), nil

	case token.AND:
		return value.Bool(l.Truthy() && r.Truthy()), nil
	case token.OR:
		return value.Bool(l.Truthy() || r.Truthy()), nil

	default:
		return value.Value{}, errs.New("unsupported binary operator %s", op)
	}
}

func numericBinary(op token.Type, l, r value.Value) (value.Value, error) {
	if !l.IsNumeric() || !r.IsNumeric() {
		return value.Value{}, errs.New("operator requires numeric operands, got %s and %s", l.TypeOf(), r.TypeOf())
	}
	if l.Kind == value.INTEGER && r.Kind == value.INTEGER {
		a, b := l.Int, r.Int
		switch op {
		case token.PLUS:
			return value.Int(a + b), nil
		case token.DASH:
			return value.Int(a - b), nil
		case token.STAR:
			return value.Int(a * b), nil
		case token.FSLASH:
			if b == 0 {
				return value.Value{}, errs.New("division by zero")
			}
			return value.Int(a / b), nil
		case token.PERCENT:
			if b == 0 {
				return value.Value{}, errs.New("division by zero")
			}
			return value.Int(a % b), nil
		case token.POW:
			return value.Int(int64(math.Pow(float64(a), float64(b)))), nil
		}
	}
	a, b := l.AsFloat(), r.AsFloat()
	switch op {
	case token.PLUS:
		return value.Double(a + b), nil
	case token.DASH:
		return value.Double(a - b), nil
	case token.STAR:
		return value.Double(a * b), nil
	case token.FSLASH:
		return value.Double(a / b), nil
	case token.PERCENT:
		return value.Double(math.Mod(a, b)), nil
	case token.POW:
		return value.Double(math.Pow(a, b)), nil
	}
	return value.Value{}, errs.New("unsupported numeric operator %s", op)
}

func bitwiseBinary(op token.Type, l, r value.Value) (value.Value, error) {
	if !l.IsNumeric() || !r.IsNumeric() {
		return value.Value{}, errs.New("bitwise operator requires numeric operands, got %s and %s", l.TypeOf(), r.TypeOf())
	}
	a, b := int64(l.AsFloat()), int64(r.AsFloat())
	switch op {
	case token.BIT_AND:
		return value.Int(a & b), nil
	case token.BIT_XOR:
		return value.Int(a ^ b), nil
	case token.BIT_OR:
		return value.Int(a | b), nil
	case token.BIT_LSHIFT:
		return value.Int(a << uint(b)), nil
	case token.BIT_RSHIFT:
		return value.Int(a >> uint(b)), nil
	case token.BIT_URSHIFT:
		return value.Int(int64(uint64(a) >> uint(b))), nil
	default:
		return value.Value{}, errs.New("unsupported bitwise operator %s", op)
	}
}

// evalUnaryOp implements `! ~ + - typeof`.
func (e *Evaluator) evalUnaryOp(x *ast.UnaryOp, frame *environment.Frame, funcName string) (VisitResult, error) {
	operand, err := e.evalExpression(x.Operand, frame, funcName)
	if err != nil {
		return VisitResult{}, err
	}
	v := operand.Value

	if x.OpTok.Type == token.KEYWORD && x.OpTok.Text == "typeof" {
		return valueResult(value.Str(v.TypeOf())), nil
	}

	switch x.OpTok.Type {
	case token.NOT:
		return valueResult(value.Bool(!v.Truthy())), nil
	case token.BIT_NOT:
		if !v.IsNumeric() {
			return VisitResult{}, errs.New("'~' requires a numeric operand, got %s", v.TypeOf())
		}
		return valueResult(value.Int(^int64(v.AsFloat()))), nil
	case token.PLUS:
		if !v.IsNumeric() {
			return VisitResult{}, errs.New("unary '+' requires a numeric operand, got %s", v.TypeOf())
		}
		return valueResult(v), nil
	case token.DASH:
		switch v.Kind {
		case value.INTEGER:
			return valueResult(value.Int(-v.Int)), nil
		case value.DOUBLE:
			return valueResult(value.Double(-v.Float)), nil
		default:
			return VisitResult{}, errs.New("unary '-' requires a numeric operand, got %s", v.TypeOf())
		}
	default:
		return VisitResult{}, errs.New("unsupported unary operator %s", x.OpTok.Type)
	}
}
