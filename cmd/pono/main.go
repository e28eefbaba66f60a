// Package main is the entry point for the pono CLI.
package main

import (
	"os"

	"github.com/thoreinstein/pono/cmd/pono/commands"
)

func main() {
	err := commands.Execute()
	os.Exit(commands.HandleError(os.Stderr, err))
}
