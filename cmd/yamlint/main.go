// Package main provides the CLI entrypoint for yamlint.
//
// yamlint checks YAML-like documents for structural defects:
//   - tabs in indentation
//   - indentation that is not a multiple of two
//   - list items without a parent key
//   - keys without children
//   - misplaced "---" and "..." markers
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
