package prelude

import "github.com/riftlang/rift/value"

// installer is the minimal surface of *rift.Interpreter Install needs,
// avoiding an import of the rift package (which would be the only
// consumer of prelude, but keeping prelude decoupled lets it be reused
// by anything implementing ForceSetGlobal).
type installer interface {
	ForceSetGlobal(name string, v value.Value, isConst bool)
}

// Install binds Math, Crypto, Date, and JSON as const globals on interp,
// the standard set cmd/riftcli installs before running a script.
func Install(interp installer) {
	interp.ForceSetGlobal("Math", Math(), true)
	interp.ForceSetGlobal("Crypto", Crypto(), true)
	interp.ForceSetGlobal("Date", Date(), true)
	interp.ForceSetGlobal("JSON", JSON(), true)
}
