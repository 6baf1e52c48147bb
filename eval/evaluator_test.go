package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlang/rift/errs"
	"github.com/riftlang/rift/value"
)

func TestEvaluateArithmeticPrecedence(t *testing.T) {
	e := New()
	v, err := e.Evaluate("var x = 2 + 3 * 4; x;")
	require.NoError(t, err)
	assert.Equal(t, value.Int(14), v)
}

func TestEvaluateRecursiveFactorial(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`
		function fact(n) {
			if (n <= 1) { return 1; }
			return n * fact(n - 1);
		}
		fact(6);
	`)
	require.NoError(t, err)
	assert.Equal(t, value.Int(720), v)
}

func TestEvaluateArraySumLoop(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`
		var nums = [1, 2, 3];
		var sum = 0;
		for (var i = 0; i < 3; i = i + 1) {
			sum = sum + nums[i];
		}
		sum;
	`)
	require.NoError(t, err)
	assert.Equal(t, value.Int(6), v)
}

func TestEvaluateForOfObjectKeyConcat(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`
		var obj = {x: 1, y: 2};
		var keys = "";
		for (let k of obj) {
			keys = keys + k;
		}
		keys;
	`)
	require.NoError(t, err)
	assert.Equal(t, value.Str("xy"), v)
}

func TestEvaluateBareForOfObjectKeyConcat(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`var o = {x:1, y:2}; var k = ''; for(key of o) k = k + key; k;`)
	require.NoError(t, err)
	assert.Equal(t, value.Str("xy"), v)
}

func TestEvaluateTryCatchCapturesThrow(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`
		var result = "";
		try {
			throw "boom!";
		} catch (e) {
			result = e;
		}
		result;
	`)
	require.NoError(t, err)
	assert.Equal(t, value.Str("boom!"), v)
}

func TestEvaluateConstReassignmentIsRuntimeError(t *testing.T) {
	e := New()
	_, err := e.Evaluate(`
		const x = 1;
		x = 2;
	`)
	require.Error(t, err)
	rerr, ok := err.(*errs.RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "const")
}

func TestEvaluateEmptyProgramIsUndefined(t *testing.T) {
	e := New()
	v, err := e.Evaluate("")
	require.NoError(t, err)
	assert.Equal(t, value.Undefined(), v)
}

func TestEvaluateUnterminatedStringIsCompileError(t *testing.T) {
	e := New()
	_, err := e.Evaluate(`"unterminated`)
	require.Error(t, err)
	_, ok := err.(*errs.CompileError)
	assert.True(t, ok)
}

func TestEvaluateInfiniteForImmediatelyBrokenIsUndefined(t *testing.T) {
	e := New()
	v, err := e.Evaluate("for (;;) { break; }")
	require.NoError(t, err)
	assert.Equal(t, value.Undefined(), v)
}

func TestEvaluateBreakOutsideLoopIsCompileError(t *testing.T) {
	e := New()
	_, err := e.Evaluate("break;")
	require.Error(t, err)
	_, ok := err.(*errs.CompileError)
	assert.True(t, ok)
}

func TestEvaluateTopLevelReturnBecomesResult(t *testing.T) {
	e := New()
	v, err := e.Evaluate("return 5;")
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)
}

func TestEvaluateLabeledBreakUnwindsOuterLoop(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`
		var count = 0;
		outer: for (var i = 0; i < 3; i = i + 1) {
			for (var j = 0; j < 3; j = j + 1) {
				if (j == 1) { break outer; }
				count = count + 1;
			}
		}
		count;
	`)
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), v)
}

func TestEvaluateUndefinedLabelIsRuntimeError(t *testing.T) {
	e := New()
	_, err := e.Evaluate(`
		for (var i = 0; i < 1; i = i + 1) {
			break somewhereElse;
		}
	`)
	require.Error(t, err)
	_, ok := err.(*errs.RuntimeError)
	assert.True(t, ok)
}

func TestEvaluateClosureCapturesEnclosingVariable(t *testing.T) {
	e := New()
	v, err := e.Evaluate(`
		function makeCounter() {
			let n = 0;
			function increment() {
				n = n + 1;
				return n;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, value.Int(3), v)
}

func TestEvaluateForceSetGlobalInstallsHostBinding(t *testing.T) {
	e := New()
	e.ForceSetGlobal("HOST_VERSION", value.Str("1.0"), true)
	v, err := e.Evaluate("HOST_VERSION;")
	require.NoError(t, err)
	assert.Equal(t, value.Str("1.0"), v)
}

func TestEvaluateSequentialCallsShareGlobalState(t *testing.T) {
	e := New()
	_, err := e.Evaluate("var total = 0;")
	require.NoError(t, err)
	_, err = e.Evaluate("total = total + 10;")
	require.NoError(t, err)
	v, err := e.Evaluate("total;")
	require.NoError(t, err)
	assert.Equal(t, value.Int(10), v)
}
