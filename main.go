package main

import (
	"os"

	"seo-go/internal/cli"
)

func main() {
	opts := &cli.Options{}
	os.Exit(cli.Execute(cli.NewRootCommand(opts)))
}
