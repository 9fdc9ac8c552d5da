// Package main is the entry point for the deploykit CLI.
//
// deploykit turns a small declarative application config into the resource
// manifests of one API deployment: a workload, a network service, and the
// resources of any attached capabilities such as a managed database. The
// manifests are handed to an external provisioning engine; deploykit never
// creates resources itself.
//
// Commands: init, render, validate, version, completion.
//
// For detailed usage information, run:
//
//	deploykit --help
package main

import (
	"fmt"
	"os"

	"github.com/deploykit/deploykit/cmd/deploykit/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
