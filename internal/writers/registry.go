// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// TableWriter serializes one finished table payload to w.
type TableWriter func(w io.Writer, payload Payload) error

// tableWriters maps format name → handler. Writer files register
// themselves in init(); registration is last-wins.
var tableWriters = map[string]TableWriter{}

// RegisterTable registers a writer for format.
func RegisterTable(format string, fn TableWriter) { tableWriters[format] = fn }

// Formats lists the registered format names (unordered).
func Formats() []string {
	out := make([]string, 0, len(tableWriters))
	for f := range tableWriters {
		out = append(out, f)
	}
	return out
}

// WriteTable dispatches payload to the writer registered for format.
func WriteTable(format string, w io.Writer, payload Payload) error {
	fn, ok := tableWriters[format]
	if !ok {
		return fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
