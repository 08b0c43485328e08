/*
Copyright © 2026 The aocgen Authors
*/
package main

import "github.com/polyglot-advent/aocgen/cmd"

func main() {
	cmd.Execute()
}
