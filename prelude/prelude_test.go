package prelude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlang/rift/callable"
	"github.com/riftlang/rift/value"
)

func callMethod(t *testing.T, obj value.Value, name string, args ...value.Value) value.Value {
	t.Helper()
	fnVal, ok := obj.Obj.Get(name)
	require.True(t, ok, "missing method %q", name)
	native, ok := fnVal.Fn.(*callable.Native)
	require.True(t, ok)
	var nfe callable.FnError
	this := obj
	result := native.Fn(nil, &this, args, &nfe)
	require.Equal(t, callable.NoError, nfe.Code, nfe.Message)
	return result
}

func TestMathAbsAndSqrt(t *testing.T) {
	m := Math()
	assert.Equal(t, value.Int(5), callMethod(t, m, "abs", value.Int(-5)))
	assert.Equal(t, value.Double(4), callMethod(t, m, "sqrt", value.Int(16)))
}

func TestMathMinMax(t *testing.T) {
	m := Math()
	assert.Equal(t, value.Double(1), callMethod(t, m, "min", value.Int(1), value.Int(5)))
	assert.Equal(t, value.Double(5), callMethod(t, m, "max", value.Int(1), value.Int(5)))
}

func TestMathSqrtOfNegativeIsException(t *testing.T) {
	m := Math()
	fnVal, _ := m.Obj.Get("sqrt")
	native := fnVal.Fn.(*callable.Native)
	var nfe callable.FnError
	this := m
	native.Fn(nil, &this, []value.Value{value.Int(-1)}, &nfe)
	assert.Equal(t, callable.ReturnValueIsException, nfe.Code)
}

func TestCryptoSha256KnownVector(t *testing.T) {
	c := Crypto()
	got := callMethod(t, c, "sha256", value.Str(""))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b85", got.Str)
	assert.Len(t, got.Str, 64)
}

func TestCryptoBase64RoundTrip(t *testing.T) {
	c := Crypto()
	encoded := callMethod(t, c, "base64Encode", value.Str("hello"))
	decoded := callMethod(t, c, "base64Decode", encoded)
	assert.Equal(t, value.Str("hello"), decoded)
}

func TestCryptoUUIDFormat(t *testing.T) {
	c := Crypto()
	u := callMethod(t, c, "uuid")
	assert.Len(t, u.Str, 36)
}

func TestDateFormatRendersTimestamp(t *testing.T) {
	d := Date()
	ts := value.Int(1700000000)
	formatted := callMethod(t, d, "format", ts, value.Str("2006-01-02"))
	assert.NotEmpty(t, formatted.Str)
}

func TestJSONGetByPath(t *testing.T) {
	j := JSON()
	got := callMethod(t, j, "get", value.Str(`{"a":{"b":42}}`), value.Str("a.b"))
	assert.Equal(t, value.Int(42), got)
}

func TestJSONGetMissingPathIsUndefined(t *testing.T) {
	j := JSON()
	got := callMethod(t, j, "get", value.Str(`{"a":1}`), value.Str("missing"))
	assert.Equal(t, value.Undefined(), got)
}

func TestJSONSetWritesPath(t *testing.T) {
	j := JSON()
	got := callMethod(t, j, "set", value.Str(`{"a":1}`), value.Str("b"), value.Int(2))
	assert.Contains(t, got.Str, `"b":2`)
}

func TestJSONValidatesSyntax(t *testing.T) {
	j := JSON()
	assert.Equal(t, value.Bool(true), callMethod(t, j, "valid", value.Str(`{"a":1}`)))
	assert.Equal(t, value.Bool(false), callMethod(t, j, "valid", value.Str(`{bad`)))
}

func TestInstallBindsAllFourGlobals(t *testing.T) {
	fake := &fakeInstaller{globals: map[string]value.Value{}}
	Install(fake)
	for _, name := range []string{"Math", "Crypto", "Date", "JSON"} {
		v, ok := fake.globals[name]
		require.True(t, ok, name)
		assert.Equal(t, value.OBJECT, v.Kind)
	}
}

type fakeInstaller struct {
	globals map[string]value.Value
}

func (f *fakeInstaller) ForceSetGlobal(name string, v value.Value, isConst bool) {
	f.globals[name] = v
}
