// Package main is the main entrypoint for the styledterm CLI.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mccutchen/styledterm/internal/cli"
)

// Release information populated by goreleaser at build time
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	versionInfo := fmt.Sprintf("styledterm version %s %s %s", version, commit, runtime.Version())
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr, os.Getenv, versionInfo)
	if err := cli.RunApp(app, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
