package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		msg := "error: " + err.Error()
		if !noColor && term.IsTerminal(int(os.Stderr.Fd())) {
			msg = errorStyle.Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
