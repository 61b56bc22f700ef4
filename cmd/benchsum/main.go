// cmd/benchsum/main.go
package main

import (
	cmd "github.com/mwiater/benchsum/internal/cli"
)

// main starts the benchsum CLI application by delegating to the
// cobra root command defined in the benchsum package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
