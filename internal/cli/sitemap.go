package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"seo-go/pkg/logger"
	"seo-go/pkg/sitemap"
)

// NewSitemapCommand writes sitemap.xml for the locale roots and configured pages.
func NewSitemapCommand(opts *Options) *cobra.Command {
	var (
		outPath string
		stdout  bool
	)

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			locales, err := cfg.LocaleSet()
			if err != nil {
				return err
			}
			gen, err := sitemap.NewGenerator(cfg.Site.BaseURL, locales, cfg.Site.Pages)
			if err != nil {
				return err
			}

			if stdout {
				return gen.Write(opts.out(), opts.now())
			}
			if outPath == "" {
				outPath = filepath.Join(cfg.Site.PublicDir, "sitemap.xml")
			}
			if err := gen.WriteFile(outPath, opts.now()); err != nil {
				return err
			}
			logger.WithField("file", outPath).Info("Sitemap written")
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default {site.public_dir}/sitemap.xml)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the sitemap to stdout")
	return cmd
}
