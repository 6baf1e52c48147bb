package prelude

import (
	"time"

	"github.com/riftlang/rift/callable"
	"github.com/riftlang/rift/value"
)

// Date returns the `Date` global object: now/nowMillis/utcNow/format/
// parse/timezone.
func Date() value.Value {
	obj := value.NewObject()
	set := func(name string, fn callable.NativeFunc) { obj.Set(name, callable.NewNative("Date."+name, fn)) }

	set("now", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 0 {
			return wrongArgs(nfe, "0", len(args))
		}
		return value.Int(time.Now().Unix())
	})
	set("nowMillis", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 0 {
			return wrongArgs(nfe, "0", len(args))
		}
		return value.Int(time.Now().UnixMilli())
	})
	set("utcNow", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 0 {
			return wrongArgs(nfe, "0", len(args))
		}
		return value.Int(time.Now().UTC().Unix())
	})
	set("format", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 2 {
			return wrongArgs(nfe, "2", len(args))
		}
		if args[0].Kind != value.INTEGER {
			return wrongType(nfe, "format requires an integer timestamp")
		}
		if args[1].Kind != value.STRING {
			return wrongType(nfe, "format requires a string layout")
		}
		return value.Str(time.Unix(args[0].Int, 0).Format(args[1].Str))
	})
	set("parse", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 2 {
			return wrongArgs(nfe, "2", len(args))
		}
		if args[0].Kind != value.STRING || args[1].Kind != value.STRING {
			return wrongType(nfe, "parse requires two strings (value, layout)")
		}
		t, err := time.ParseInLocation(args[1].Str, args[0].Str, time.Local)
		if err != nil {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "failed to parse time: " + err.Error()
			return value.Str(nfe.Message)
		}
		return value.Int(t.Unix())
	})
	set("timezone", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 0 {
			return wrongArgs(nfe, "0", len(args))
		}
		name, _ := time.Now().Zone()
		return value.Str(name)
	})

	return value.NewObjectValue(obj)
}
