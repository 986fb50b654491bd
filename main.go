// Package main is the entry point for the autotestfix CLI.
package main

import "autotestfix.dev/pkg/autotestfix/cmd"

func main() {
	cmd.Execute()
}
