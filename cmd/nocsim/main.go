// Command nocsim runs and persists NoC simulation experiments described
// by a YAML run configuration.
package main

import (
	"fmt"
	"os"

	"github.com/nocsim/nocsim/cmd/nocsim/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
