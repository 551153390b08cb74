// Package main implements jdwpctl, a small command-line client over the
// jdwp session library: it owns the one TCP dial the whole repository
// performs, with the library itself only ever given an already-connected
// stream.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jdwpctl",
	Short: "Inspect and drive a JVM over JDWP",
	Long:  `jdwpctl connects to a JVM running with debug mode enabled and lists classes, lists methods, or watches class-prepare events.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
