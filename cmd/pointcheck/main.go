// Command pointcheck prints the points of a share dataset that do not lie on
// the polynomial through its first k points.
package main

import (
	"os"

	"github.com/renproject/sharecheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewPointcheckCommand()))
}
