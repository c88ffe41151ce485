// Command qsim simulates sparse qubit registers from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvqubit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qsim:", err)
		os.Exit(1)
	}
}
