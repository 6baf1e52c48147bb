package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthyFollowsLanguageRules(t *testing.T) {
	assert.False(t, Undefined().Truthy())
	assert.False(t, Null().Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.False(t, Int(0).Truthy())
	assert.False(t, Double(0).Truthy())
	assert.False(t, Str("").Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Int(-1).Truthy())
	assert.True(t, Str("0").Truthy())
	assert.True(t, ArrayOf().Truthy())
	assert.True(t, NewObjectValue(NewObject()).Truthy())
}

func TestStrictEqualsRequiresSameKind(t *testing.T) {
	assert.True(t, StrictEquals(Int(1), Int(1)))
	assert.False(t, StrictEquals(Int(1), Double(1)))
	assert.False(t, StrictEquals(Double(NaNValue()), Double(NaNValue())))
}

func NaNValue() float64 {
	var zero float64
	return zero / zero
}

func TestLooseEqualsPromotesNumerics(t *testing.T) {
	assert.True(t, LooseEquals(Int(1), Double(1.0)))
	assert.False(t, LooseEquals(Int(1), Str("1")))
}

func TestArrayIsSharedByReference(t *testing.T) {
	a := ArrayOf(Int(1), Int(2))
	b := a
	b.Arr.Elements[0] = Int(99)
	assert.Equal(t, Int(99), a.Arr.Elements[0])
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("z", Int(1))
	o.Set("a", Int(2))
	o.Set("m", Int(3))
	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())
}

func TestObjectDeleteRemovesKeyOrder(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	o.Delete("a")
	assert.Equal(t, []string{"b"}, o.Keys())
	_, ok := o.Get("a")
	assert.False(t, ok)
}

func TestCompareOrderedNumericAndString(t *testing.T) {
	cmp, ok := CompareOrdered(Int(1), Double(2.5))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = CompareOrdered(Str("a"), Str("b"))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	_, ok = CompareOrdered(Str("a"), Int(1))
	assert.False(t, ok)
}

func TestToDisplayStringRendersCompositeValues(t *testing.T) {
	arr := ArrayOf(Int(1), Str("a"))
	assert.Equal(t, "[1, a]", ToDisplayString(arr))

	o := NewObject()
	o.Set("x", Int(1))
	assert.Equal(t, "{x: 1}", ToDisplayString(NewObjectValue(o)))
}

func TestTypeOfReturnsKindName(t *testing.T) {
	assert.Equal(t, "integer", Int(1).TypeOf())
	assert.Equal(t, "undefined", Undefined().TypeOf())
	assert.Equal(t, "function", Func(nil).TypeOf())
}
