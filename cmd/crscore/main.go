// Command crscore loads a directory of ModSecurity/OWASP Core Rule Set
// directives, runs a directory of FTW YAML test cases against them, and
// reports which stages passed.
package main

import (
	"fmt"
	"os"

	"github.com/shieldcli/crscore/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
