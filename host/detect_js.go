//go:build js && wasm

package host

import "syscall/js"

type window struct{}

func (window) Browser() bool { return true }

func (window) Cookies() string {
	c := js.Global().Get("document").Get("cookie")
	if c.Type() != js.TypeString {
		return ""
	}

	return c.String()
}

func detect() Host {
	g := js.Global()
	if g.Get("window").Truthy() && g.Get("document").Truthy() {
		return window{}
	}

	return Server
}
