// Package main is the entry point for the logguard CLI.
package main

import "logguard.dev/pkg/logguard/cmd"

func main() {
	cmd.Execute()
}
