//go:build js && wasm

package publish

import (
	"fmt"
	"syscall/js"

	json "github.com/goccy/go-json"

	"go.jacobcolvin.com/loghorn/record"
)

type jsConsole struct {
	v js.Value
}

// DefaultJSConsole returns the page's console object, or nil when the global
// scope has none.
func DefaultJSConsole() JSConsole {
	c := js.Global().Get("console")
	if !c.Truthy() {
		return nil
	}

	return jsConsole{v: c}
}

func (c jsConsole) Call(method string, args ...any) {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = toJS(a)
	}

	c.v.Call(method, vals...)
}

// toJS passes scalars through, renders errors and Stringers as text like
// [FormatArg], and hands composite values to JSON.parse so they show up as
// inspectable objects.
func toJS(a any) any {
	switch v := a.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, js.Value:
		return a
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	if record.CheckAcyclic(a) != nil {
		return "[Circular]"
	}

	b, err := json.Marshal(a)
	if err != nil {
		return FormatArg(a)
	}

	return js.Global().Get("JSON").Call("parse", string(b))
}
