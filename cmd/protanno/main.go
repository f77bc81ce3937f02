// cmd/protanno/main.go
package main

import (
	"os"

	"protanno/internal/app"
)

func main() {
	// Write straight to the process streams; app buffers stdout itself
	// and xlsx output is binary, so no intermediate buffer here.
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
