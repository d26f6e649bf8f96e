// Command gridpath finds routes across digit-cost grids.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/internal/cli"
)

func main() {
	cmd := cli.NewCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
