// Command simulate is component M: the CLI entry point. It loads a
// catalog directory and a roster file, assembles a battle.Context, runs
// it to completion, and prints the resulting event log.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
