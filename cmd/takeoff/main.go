// Command takeoff computes take-off distance over an obstacle for configured
// aircraft profiles, or serves the same calculation over HTTP.
package main

import (
	"os"

	"github.com/yegors/takeoff/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdout, os.Stderr)
	os.Exit(cli.Execute(root, os.Args[1:]))
}
