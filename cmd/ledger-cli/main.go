// "ledger-cli" drives an in-memory fungible-token ledger from the terminal.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/sheikh-saqib/token-ledger-system/cmd/ledger-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("ledger-cli exited with error: %v", err)
		os.Exit(1)
	}
}
