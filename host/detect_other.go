//go:build !(js && wasm)

package host

func detect() Host {
	return Server
}
