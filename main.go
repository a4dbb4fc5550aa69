package main

import (
	"fmt"
	"os"

	"textsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "textsim:", err)
		os.Exit(cmd.ExitCode(err))
	}
}
