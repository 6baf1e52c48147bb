package prelude

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/riftlang/rift/callable"
	"github.com/riftlang/rift/value"
)

// Crypto returns the `Crypto` global object: hashing, encoding, and
// random-bytes helpers.
func Crypto() value.Value {
	obj := value.NewObject()
	set := func(name string, fn callable.NativeFunc) { obj.Set(name, callable.NewNative("Crypto."+name, fn)) }

	set("md5", hashFunc("md5", func(b []byte) string { h := md5.Sum(b); return fmt.Sprintf("%x", h) }))
	set("sha1", hashFunc("sha1", func(b []byte) string { h := sha1.Sum(b); return fmt.Sprintf("%x", h) }))
	set("sha256", hashFunc("sha256", func(b []byte) string { h := sha256.Sum256(b); return fmt.Sprintf("%x", h) }))

	set("base64Encode", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		s, ok := oneString(args, nfe, "base64Encode")
		if !ok {
			return value.Undefined()
		}
		return value.Str(base64.StdEncoding.EncodeToString([]byte(s)))
	})
	set("base64Decode", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		s, ok := oneString(args, nfe, "base64Decode")
		if !ok {
			return value.Undefined()
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "failed to decode base64: " + err.Error()
			return value.Str(nfe.Message)
		}
		return value.Str(string(decoded))
	})
	set("hexEncode", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		s, ok := oneString(args, nfe, "hexEncode")
		if !ok {
			return value.Undefined()
		}
		return value.Str(hex.EncodeToString([]byte(s)))
	})
	set("hexDecode", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		s, ok := oneString(args, nfe, "hexDecode")
		if !ok {
			return value.Undefined()
		}
		decoded, err := hex.DecodeString(s)
		if err != nil {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "failed to decode hex: " + err.Error()
			return value.Str(nfe.Message)
		}
		return value.Str(string(decoded))
	})

	set("uuid", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 0 {
			return wrongArgs(nfe, "0", len(args))
		}
		u := make([]byte, 16)
		if _, err := rand.Read(u); err != nil {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "failed to generate uuid: " + err.Error()
			return value.Str(nfe.Message)
		}
		u[6] = (u[6] & 0x0f) | 0x40
		u[8] = (u[8] & 0x3f) | 0x80
		return value.Str(fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:]))
	})

	set("randomBytes", func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		if len(args) != 1 || args[0].Kind != value.INTEGER {
			return wrongType(nfe, "randomBytes requires an integer byte count")
		}
		if args[0].Int < 0 {
			return wrongType(nfe, "randomBytes: byte count must be non-negative")
		}
		buf := make([]byte, args[0].Int)
		if _, err := rand.Read(buf); err != nil {
			nfe.Code = callable.ReturnValueIsException
			nfe.Message = "failed to generate random bytes: " + err.Error()
			return value.Str(nfe.Message)
		}
		return value.Str(hex.EncodeToString(buf))
	})

	return value.NewObjectValue(obj)
}

func oneString(args []value.Value, nfe *callable.FnError, who string) (string, bool) {
	if len(args) != 1 {
		wrongArgs(nfe, "1", len(args))
		return "", false
	}
	if args[0].Kind != value.STRING {
		wrongType(nfe, who+" requires a string, got "+args[0].TypeOf())
		return "", false
	}
	return args[0].Str, true
}

func hashFunc(name string, sum func([]byte) string) callable.NativeFunc {
	return func(_ callable.Environment, _ *value.Value, args []value.Value, nfe *callable.FnError) value.Value {
		s, ok := oneString(args, nfe, name)
		if !ok {
			return value.Undefined()
		}
		return value.Str(sum([]byte(s)))
	}
}
