// Package function defines the representation of a script-defined
// function value, the counterpart to callable.Native: a captured scope
// paired with a body, giving closures their behavior.
package function

import (
	"fmt"
	"strings"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/environment"
)

// Function is a script-defined function: its declared name (empty for an
// anonymous FunctionLiteral), its parameter names, its body, and the
// frame it closed over at definition time.
type Function struct {
	Name     string
	ArgNames []string
	Body     *ast.Block
	Closure  *environment.Frame
}

// CallableName implements value.Callable.
func (f *Function) CallableName() string {
	if f.Name == "" {
		return "<anonymous>"
	}
	return f.Name
}

// String renders the function as e.g. "<func[add(a, b)]>".
// value.ToDisplayString does not use it; it renders "[function add]".
func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<func[%s(%s)]>", name, strings.Join(f.ArgNames, ", "))
}
