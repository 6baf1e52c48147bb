// Package prelude builds the native-global objects a host installs into
// an interpreter before running script code: Math, Crypto, Date, and
// JSON, each an OBJECT value whose properties are NativeFunc-backed
// FUNCTION values.
package prelude

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/riftlang/rift/callable"
	"github.com/riftlang/rift/value"
)

func wrongArgs(nfe *callable.FnError, want string, got int) value.Value {
	nfe.Code = callable.WrongNumberOfArgs
	nfe.Message = "want " + want + " argument(s), got " + strconv.Itoa(got)
	return value.Undefined()
}

func wrongType(nfe *callable.FnError, msg string) value.Value {
	nfe.Code = callable.WrongTypeOfArg
	nfe.Message = msg
	return value.Undefined()
}

func asFloat(v value.Value, nfe *callable.FnError, who string) (float64, bool) {
	if !v.IsNumeric() {
		wrongType(nfe, who+" requires a number, got "+v.TypeOf())
		return 0, false
	}
	return v.AsFloat(), true
}

// Math returns the `Math` global object: abs/min/max/floor/ceil/round/
// sqrt/pow/trig/log/exp/random.
func Math() value.Value {
	obj := value.NewObject()
	set := func(name string, fn callable.NativeFunc) { obj.Set(name, callable.NewNative("Math."+name, fn)) }

	set("abs", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 1 {
			return wrongArgs(nfe, "1", len(args))
		}
		switch args[0].Kind {
		case value.INTEGER:
			n := args[0].Int
			if n < 0 {
				n = -n
			}
			return value.Int(n)
		case value.DOUBLE:
			return value.Double(math.Abs(args[0].Float))
		default:
			return wrongType(nfe, "abs requires a number")
		}
	})

	set("min", mathBinary("min", math.Min))
	set("max", mathBinary("max", math.Max))

	set("floor", mathUnary("floor", math.Floor))
	set("ceil", mathUnary("ceil", math.Ceil))
	set("round", mathUnary("round", math.Round))
	set("sqrt", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 1 {
			return wrongArgs(nfe, "1", len(args))
		}
		f, ok := asFloat(args[0], nfe, "sqrt")
		if !ok {
			return value.Undefined()
		}
		if f < 0 {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "cannot compute square root of a negative number"
			return value.Str(nfe.Message)
		}
		return value.Double(math.Sqrt(f))
	})
	set("pow", mathBinary("pow", math.Pow))
	set("sin", mathUnary("sin", math.Sin))
	set("cos", mathUnary("cos", math.Cos))
	set("tan", mathUnary("tan", math.Tan))
	set("asin", mathUnary("asin", math.Asin))
	set("acos", mathUnary("acos", math.Acos))
	set("atan", mathUnary("atan", math.Atan))
	set("atan2", mathBinary("atan2", math.Atan2))
	set("log", mathUnary("log", math.Log))
	set("log10", mathUnary("log10", math.Log10))
	set("exp", mathUnary("exp", math.Exp))

	set("random", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 0 {
			return wrongArgs(nfe, "0", len(args))
		}
		return value.Double(rand.Float64())
	})
	set("randomInt", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 2 {
			return wrongArgs(nfe, "2", len(args))
		}
		if args[0].Kind != value.INTEGER || args[1].Kind != value.INTEGER {
			return wrongType(nfe, "randomInt requires two integers")
		}
		lo, hi := args[0].Int, args[1].Int
		if lo > hi {
			return wrongType(nfe, "randomInt: min cannot exceed max")
		}
		return value.Int(lo + rand.Int63n(hi-lo+1))
	})

	return value.NewObjectValue(obj)
}

func mathUnary(name string, fn func(float64) float64) callable.NativeFunc {
	return func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 1 {
			return wrongArgs(nfe, "1", len(args))
		}
		f, ok := asFloat(args[0], nfe, name)
		if !ok {
			return value.Undefined()
		}
		return value.Double(fn(f))
	}
}

func mathBinary(name string, fn func(float64, float64) float64) callable.NativeFunc {
	return func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 2 {
			return wrongArgs(nfe, "2", len(args))
		}
		a, ok := asFloat(args[0], nfe, name)
		if !ok {
			return value.Undefined()
		}
		b, ok := asFloat(args[1], nfe, name)
		if !ok {
			return value.Undefined()
		}
		return value.Double(fn(a, b))
	}
}
