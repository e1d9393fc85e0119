// Command snailfish adds and reduces snailfish numbers.
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/snailfish/internal/cli"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
