// Command indexnow submits the site's locale URLs to IndexNow.
//
//	indexnow              submit every locale root
//	indexnow --url=/zh    submit a single URL
//
// Environment: NEXT_PUBLIC_APP_URL (required), INDEXNOW_KEY (optional).
package main

import (
	"os"

	"seo-go/internal/cli"
)

func main() {
	opts := &cli.Options{}
	os.Exit(cli.Execute(cli.Standalone(cli.NewIndexNowCommand(opts), opts)))
}
