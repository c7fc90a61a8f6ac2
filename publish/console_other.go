//go:build !(js && wasm)

package publish

// DefaultJSConsole returns nil outside js/wasm builds.
func DefaultJSConsole() JSConsole {
	return nil
}
