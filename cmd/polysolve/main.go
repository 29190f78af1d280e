// Command polysolve prints the coefficients of the polynomial through the
// first k points of a share dataset.
package main

import (
	"os"

	"github.com/renproject/sharecheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewPolysolveCommand()))
}
