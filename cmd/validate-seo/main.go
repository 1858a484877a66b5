// Command validate-seo checks SEO title and description lengths in every
// locale message file and exits non-zero when any check fails.
package main

import (
	"os"

	"seo-go/internal/cli"
)

func main() {
	opts := &cli.Options{}
	os.Exit(cli.Execute(cli.Standalone(cli.NewValidateCommand(opts), opts)))
}
