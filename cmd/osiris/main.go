package main

import (
	"fmt"
	"os"

	"github.com/osiris-intel/osiris/cmd/osiris/commands"
)

func main() {
	if err := commands.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
