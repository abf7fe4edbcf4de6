package main

import (
	"fmt"
	"os"

	"github.com/kilianp07/ridesim/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ridesim:", err)
		os.Exit(1)
	}
}
