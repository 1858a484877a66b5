package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"seo-go/pkg/indexnow"
	"seo-go/pkg/logger"
)

// NewIndexNowCommand submits the site URLs, or a single --url, to IndexNow.
func NewIndexNowCommand(opts *Options) *cobra.Command {
	var (
		customURL string
		allPages  bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "indexnow",
		Short: "Submit site URLs to IndexNow",
		Long: "Submit every locale root (or a single --url) to the IndexNow API.\n" +
			"Requires NEXT_PUBLIC_APP_URL. INDEXNOW_KEY is optional; a key is generated\n" +
			"and saved under the public directory when missing.",
		Example: "  seo-go indexnow\n  seo-go indexnow --url=/zh\n  seo-go indexnow --url=https://example.com/blog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexNow(cmd.Context(), opts, customURL, allPages, dryRun)
		},
	}

	cmd.Flags().StringVar(&customURL, "url", "", "Submit a single path or absolute URL instead of all locale roots")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "Also submit the pages listed under site.pages")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payload without sending it")
	return cmd
}

func runIndexNow(ctx context.Context, opts *Options, customURL string, allPages, dryRun bool) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	log := logger.GetLogger().WithField("component", "indexnow_cmd")
	ui := opts.theme()
	out := opts.out()

	fmt.Fprintln(out, ui.title("IndexNow submission"))
	fmt.Fprintln(out, ui.dim(strings.Repeat("-", 50)))

	if cfg.Site.BaseURL == "" {
		log.Error("NEXT_PUBLIC_APP_URL is not set; add NEXT_PUBLIC_APP_URL=https://yourdomain.com to .env.local")
		return indexnow.ErrMissingBaseURL
	}

	locales, err := cfg.LocaleSet()
	if err != nil {
		return err
	}
	builder, err := indexnow.NewURLBuilder(cfg.Site.BaseURL, locales)
	if err != nil {
		return err
	}
	client, err := indexnow.NewClient(cfg.ClientConfig())
	if err != nil {
		return err
	}

	provider := indexnow.NewKeyProvider(cfg.KeyConfig())
	key, err := provider.GetOrCreate()
	if err != nil {
		return err
	}
	logger.GetSecurityLogger().SafeInfo("Submission key ready", map[string]interface{}{
		"key":          key.String(),
		"key_file":     provider.Path(),
		"key_location": provider.KeyLocation(cfg.Site.BaseURL),
	})

	var urls []string
	switch {
	case customURL != "":
		urls = builder.Build(customURL)
	case allPages:
		urls = builder.BuildPages(cfg.Site.Pages)
	default:
		urls = builder.Build("")
	}

	fmt.Fprintf(out, "%s %s\n", ui.info("Host:"), client.Host())
	fmt.Fprintf(out, "%s %d\n", ui.info("URLs:"), len(urls))
	for _, u := range urls {
		fmt.Fprintf(out, "  - %s\n", u)
	}

	if dryRun {
		payload := client.NewPayload(urls, key)
		payload.Key = logger.GetSecurityLogger().MaskKey(payload.Key)
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n%s\n", ui.warn("Dry run, payload not sent:"), data)
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.IndexNow.Timeout)
	defer cancel()

	if !client.Submit(ctx, urls, key) {
		if client.LastStatus() == 0 {
			fmt.Fprintf(out, "%s network error (see log)\n", ui.err("Submission failed:"))
			return fmt.Errorf("%w: network error", ErrSubmissionFailed)
		}
		fmt.Fprintf(out, "%s HTTP %d\n", ui.err("Submission failed:"), client.LastStatus())
		return fmt.Errorf("%w: HTTP %d", ErrSubmissionFailed, client.LastStatus())
	}

	fmt.Fprintf(out, "%s HTTP %d\n", ui.ok("Submitted successfully:"), client.LastStatus())
	fmt.Fprintln(out, ui.dim("The key file must stay reachable at "+provider.KeyLocation(cfg.Site.BaseURL)))
	return nil
}
