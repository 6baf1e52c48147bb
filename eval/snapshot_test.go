package eval_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/riftlang/rift"
	"github.com/riftlang/rift/value"
)

// runForSnapshot evaluates source against a fresh interpreter and renders
// either the resulting value or the error message, the same shape a REPL
// would print.
func runForSnapshot(source string) string {
	interp := rift.New()
	v, err := interp.Evaluate(source)
	if err != nil {
		return fmt.Sprintf("error: %s", err.Error())
	}
	return value.ToDisplayString(v)
}

func TestScenarioSnapshots(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{
			name: "fibonacci_recursive",
			source: `
				function fib(n) {
					if (n < 2) { return n; }
					return fib(n - 1) + fib(n - 2);
				}
				fib(10);
			`,
		},
		{
			name: "array_map_like_loop",
			source: `
				var src = [1, 2, 3, 4, 5];
				var out = [0, 0, 0, 0, 0];
				for (var i = 0; i < 5; i = i + 1) {
					out[i] = src[i] * src[i];
				}
				out;
			`,
		},
		{
			name: "object_literal_display",
			source: `var p = {name: "ada", age: 36}; p;`,
		},
		{
			name: "try_catch_rethrow_message",
			source: `
				function mustBePositive(n) {
					if (n < 0) { throw "n must be positive"; }
					return n;
				}
				var result = "";
				try {
					mustBePositive(-1);
				} catch (e) {
					result = "caught: " + e;
				}
				result;
			`,
		},
		{
			name: "labeled_break_unwinds_nested_loops",
			source: `
				var found = -1;
				outer: for (var i = 0; i < 3; i = i + 1) {
					for (var j = 0; j < 3; j = j + 1) {
						if (i * 3 + j == 5) {
							found = i * 3 + j;
							break outer;
						}
					}
				}
				found;
			`,
		},
		{
			name: "division_by_zero_runtime_error",
			source: `10 / 0;`,
		},
		{
			name: "undeclared_variable_runtime_error",
			source: `notDeclared + 1;`,
		},
		{
			name: "unterminated_string_compile_error",
			source: `"never closed`,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", sc.name), runForSnapshot(sc.source))
		})
	}
}
