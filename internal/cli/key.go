package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seo-go/pkg/indexnow"
	"seo-go/pkg/logger"
)

// NewKeyCommand provisions the IndexNow key file without submitting anything.
func NewKeyCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Create or show the IndexNow key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			provider := indexnow.NewKeyProvider(cfg.KeyConfig())
			key, err := provider.GetOrCreate()
			if err != nil {
				return err
			}

			ui := opts.theme()
			out := opts.out()
			fmt.Fprintf(out, "%s %s\n", ui.info("Key file:"), provider.Path())
			fmt.Fprintf(out, "%s %s\n", ui.info("Fingerprint:"), logger.GetSecurityLogger().MaskKey(key.String()))
			if cfg.Site.BaseURL != "" {
				fmt.Fprintf(out, "%s %s\n", ui.info("Public URL:"), provider.KeyLocation(cfg.Site.BaseURL))
			} else {
				fmt.Fprintln(out, ui.warn("Set NEXT_PUBLIC_APP_URL to see the public key URL"))
			}
			return nil
		},
	}
}
