package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/santikid/clink/cmd/clink"
	"github.com/santikid/clink/internal/version"
)

func main() {
	rootCmd := clink.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CLINK",
		Section: "1",
		Source:  "clink " + version.Version,
		Manual:  "clink manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
