package cli

import (
	"github.com/spf13/cobra"

	"seo-go/pkg/seo"
)

// NewValidateCommand checks seo.title and seo.description lengths in every locale file.
func NewValidateCommand(opts *Options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate SEO title and description lengths per locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.SEO.MessagesDir
			}

			report, err := seo.NewValidator(cfg.Rules()).Validate(dir)
			if err != nil {
				return err
			}

			seo.PrintReport(opts.out(), report)
			if !report.Passed() {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Locale content directory (default seo.messages_dir)")
	return cmd
}
