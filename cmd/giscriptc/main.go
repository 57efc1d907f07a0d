// Command giscriptc compiles giscript source files into the node-graph
// intermediate representation consumed by the scripting runtime.
package main

import (
	"fmt"
	"os"

	"github.com/hackermdch/giscript/cmd/giscriptc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
