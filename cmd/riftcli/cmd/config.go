package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/riftlang/rift/value"
)

// config is the shape of an optional `.riftrc.yaml` startup file: global
// constants to predeclare before running a script, and a couple of
// interpreter options a host embedding riftcli might want to flip
// without a recompile.
type config struct {
	Globals map[string]interface{} `yaml:"globals"`
	EchoAST bool                    `yaml:"echo_ast"`
}

// loadConfig reads .riftrc.yaml from the current directory if present.
// A missing file is not an error; a malformed one is.
func loadConfig() (*config, error) {
	data, err := os.ReadFile(".riftrc.yaml")
	if os.IsNotExist(err) {
		return &config{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyGlobals installs each configured global as a const binding,
// converting YAML's generic decode types onto the closed ScriptValue set.
func (c *config) applyGlobals(interp installer) {
	for name, raw := range c.Globals {
		interp.ForceSetGlobal(name, yamlToValue(raw), true)
	}
}

type installer interface {
	ForceSetGlobal(name string, v value.Value, isConst bool)
}

func yamlToValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(v)
	case int:
		return value.Int(int64(v))
	case int64:
		return value.Int(v)
	case float64:
		return value.Double(v)
	case string:
		return value.Str(v)
	case []interface{}:
		elems := make([]value.Value, len(v))
		for i, e := range v {
			elems[i] = yamlToValue(e)
		}
		return value.ArrayOf(elems...)
	case map[string]interface{}:
		obj := value.NewObject()
		for k, e := range v {
			obj.Set(k, yamlToValue(e))
		}
		return value.NewObjectValue(obj)
	default:
		return value.Undefined()
	}
}
