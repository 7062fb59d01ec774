package main

import (
	"fmt"
	"os"

	"github.com/santikid/clink/cmd/clink"
	"github.com/santikid/clink/pkg/output"
)

func main() {
	rootCmd := clink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.FormatError(err))
		os.Exit(1)
	}
}
