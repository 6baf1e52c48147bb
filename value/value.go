// Package value implements ScriptValue, the closed tagged variant that
// every script value is an instance of. Arithmetic and comparison are
// dispatched on the pair of operand tags rather than through virtual
// method calls, with a fixed, closed set of kinds rather than an
// open-ended struct/enum/list/tuple/set zoo.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the tag of a ScriptValue.
type Kind int

const (
	UNDEFINED Kind = iota
	NULL
	BOOLEAN
	INTEGER
	DOUBLE
	STRING
	ARRAY
	OBJECT
	FUNCTION
)

func (k Kind) String() string {
	switch k {
	case UNDEFINED:
		return "undefined"
	case NULL:
		return "null"
	case BOOLEAN:
		return "boolean"
	case INTEGER:
		return "integer"
	case DOUBLE:
		return "double"
	case STRING:
		return "string"
	case ARRAY:
		return "array"
	case OBJECT:
		return "object"
	case FUNCTION:
		return "function"
	default:
		return "unknown"
	}
}

// Array is the shared, mutable backing store for an ARRAY value. Script
// values holding an ARRAY all point at the same *Array, so mutation
// through one reference is visible through every alias.
type Array struct {
	Elements []Value
}

// Object is the shared, mutable, insertion-ordered backing store for an
// OBJECT value.
type Object struct {
	keys   []string
	values map[string]Value
}

func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *Object) Delete(key string) {
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns property names in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Callable is implemented by both script functions (function package) and
// native functions (callable package); value.Value wraps whichever one a
// FUNCTION holds without value needing to know the difference. Kept as a
// tiny marker interface here so value has no import-cycle dependency on
// function or callable.
type Callable interface {
	CallableName() string
}

// Value is a single ScriptValue: a Kind tag plus whichever payload field
// that tag uses. Only one payload field is meaningful for a given Kind.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Arr   *Array
	Obj   *Object
	Fn    Callable
}

func Undefined() Value                 { return Value{Kind: UNDEFINED} }
func Null() Value                      { return Value{Kind: NULL} }
func Bool(b bool) Value                { return Value{Kind: BOOLEAN, Bool: b} }
func Int(i int64) Value                { return Value{Kind: INTEGER, Int: i} }
func Double(f float64) Value           { return Value{Kind: DOUBLE, Float: f} }
func Str(s string) Value               { return Value{Kind: STRING, Str: s} }
func ArrayOf(elems ...Value) Value     { return Value{Kind: ARRAY, Arr: &Array{Elements: elems}} }
func NewArray(a *Array) Value          { return Value{Kind: ARRAY, Arr: a} }
func NewObjectValue(o *Object) Value   { return Value{Kind: OBJECT, Obj: o} }
func Func(c Callable) Value            { return Value{Kind: FUNCTION, Fn: c} }

// Truthy implements truthiness: UNDEFINED, NULL, false,
// numeric zero, and the empty string are falsy; everything else (arrays
// and objects included, even when empty) is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case UNDEFINED, NULL:
		return false
	case BOOLEAN:
		return v.Bool
	case INTEGER:
		return v.Int != 0
	case DOUBLE:
		return v.Float != 0
	case STRING:
		return v.Str != ""
	default:
		return true
	}
}

func (v Value) AsFloat() float64 {
	switch v.Kind {
	case INTEGER:
		return float64(v.Int)
	case DOUBLE:
		return v.Float
	case BOOLEAN:
		if v.Bool {
			return 1
		}
		return 0
	}
	return math.NaN()
}

func (v Value) IsNumeric() bool { return v.Kind == INTEGER || v.Kind == DOUBLE }

// TypeOf implements the `typeof` operator, returning the name of the
// value's kind.
func (v Value) TypeOf() string { return v.Kind.String() }

// StrictEquals implements `===`: same tag, same value, no coercion.
// Reflexive except for DOUBLE(NaN), symmetric, and transitive.
func StrictEquals(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case UNDEFINED, NULL:
		return true
	case BOOLEAN:
		return a.Bool == b.Bool
	case INTEGER:
		return a.Int == b.Int
	case DOUBLE:
		return a.Float == b.Float // false for NaN, per IEEE 754
	case STRING:
		return a.Str == b.Str
	case ARRAY:
		return a.Arr == b.Arr
	case OBJECT:
		return a.Obj == b.Obj
	case FUNCTION:
		return a.Fn == b.Fn
	default:
		return false
	}
}

// LooseEquals implements `==`: numeric tags compare by numeric value
// regardless of INTEGER/DOUBLE, everything else falls back to strict
// equality. The script has no other coercions (no string<->number, no
// null<->undefined) beyond the numeric promotion already required by
// arithmetic.
func LooseEquals(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return a.AsFloat() == b.AsFloat()
	}
	return StrictEquals(a, b)
}

// ToDisplayString renders a value the way a script's implicit
// string-conversion (print, string concatenation) would.
func ToDisplayString(v Value) string {
	switch v.Kind {
	case UNDEFINED:
		return "undefined"
	case NULL:
		return "null"
	case BOOLEAN:
		return strconv.FormatBool(v.Bool)
	case INTEGER:
		return strconv.FormatInt(v.Int, 10)
	case DOUBLE:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case STRING:
		return v.Str
	case ARRAY:
		parts := make([]string, len(v.Arr.Elements))
		for i, e := range v.Arr.Elements {
			parts[i] = ToDisplayString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case OBJECT:
		keys := append([]string(nil), v.Obj.Keys()...)
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := v.Obj.Get(k)
			parts[i] = fmt.Sprintf("%s: %s", k, ToDisplayString(val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case FUNCTION:
		if v.Fn != nil {
			return fmt.Sprintf("[function %s]", v.Fn.CallableName())
		}
		return "[function]"
	default:
		return "?"
	}
}

// CompareOrdered implements the ordering used by `< <= > >=`: numeric for
// two numbers, lexicographic for two strings. Returns ok=false when the
// operands cannot be ordered.
func CompareOrdered(a, b Value) (cmp int, ok bool) {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		af, bf := a.AsFloat(), b.AsFloat()
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	case a.Kind == STRING && b.Kind == STRING:
		return strings.Compare(a.Str, b.Str), true
	default:
		return 0, false
	}
}
