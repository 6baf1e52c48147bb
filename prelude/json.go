package prelude

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/riftlang/rift/callable"
	"github.com/riftlang/rift/value"
)

// JSON returns the `JSON` global object: get/set navigate a raw JSON
// string by dotted path, using gjson/sjson rather than round-tripping
// through a parsed script object.
func JSON() value.Value {
	obj := value.NewObject()
	set := func(name string, fn callable.NativeFunc) { obj.Set(name, callable.NewNative("JSON."+name, fn)) }

	set("get", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 2 {
			return wrongArgs(nfe, "2", len(args))
		}
		if args[0].Kind != value.STRING || args[1].Kind != value.STRING {
			return wrongType(nfe, "get requires two strings (json, path)")
		}
		result := gjson.Get(args[0].Str, args[1].Str)
		if !result.Exists() {
			return value.Undefined()
		}
		return gjsonToValue(result)
	})

	set("set", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 3 {
			return wrongArgs(nfe, "3", len(args))
		}
		if args[0].Kind != value.STRING || args[1].Kind != value.STRING {
			return wrongType(nfe, "set requires a json string and a string path")
		}
		updated, err := sjson.Set(args[0].Str, args[1].Str, scriptValueToGo(args[2]))
		if err != nil {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "failed to set json path: " + err.Error()
			return value.Str(nfe.Message)
		}
		return value.Str(updated)
	})

	set("valid", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		s, ok := oneString(args, nfe, "valid")
		if !ok {
			return value.Undefined()
		}
		return value.Bool(gjson.Valid(s))
	})

	return value.NewObjectValue(obj)
}

// gjsonToValue maps a gjson.Result onto the closed ScriptValue set.
func gjsonToValue(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.True, gjson.False:
		return value.Bool(r.Bool())
	case gjson.Number:
		f := r.Float()
		if f == float64(int64(f)) {
			return value.Int(int64(f))
		}
		return value.Double(f)
	case gjson.String:
		return value.Str(r.String())
	case gjson.Null:
		return value.Null()
	case gjson.JSON:
		if r.IsArray() {
			elems := []value.Value{}
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, gjsonToValue(v))
				return true
			})
			return value.ArrayOf(elems...)
		}
		obj := value.NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.Set(k.String(), gjsonToValue(v))
			return true
		})
		return value.NewObjectValue(obj)
	default:
		return value.Undefined()
	}
}

// scriptValueToGo unwraps a ScriptValue into the plain Go value sjson.Set
// expects to marshal (bool/int64/float64/string/[]interface{}/map[string]interface{}).
func scriptValueToGo(v value.Value) interface{} {
	switch v.Kind {
	case value.UNDEFINED, value.NULL:
		return nil
	case value.BOOLEAN:
		return v.Bool
	case value.INTEGER:
		return v.Int
	case value.DOUBLE:
		return v.Float
	case value.STRING:
		return v.Str
	case value.ARRAY:
		out := make([]interface{}, len(v.Arr.Elements))
		for i, e := range v.Arr.Elements {
			out[i] = scriptValueToGo(e)
		}
		return out
	case value.OBJECT:
		out := make(map[string]interface{})
		for _, k := range v.Obj.Keys() {
			val, _ := v.Obj.Get(k)
			out[k] = scriptValueToGo(val)
		}
		return out
	default:
		return value.ToDisplayString(v)
	}
}
