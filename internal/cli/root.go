// Package cli wires configuration, logging and the SEO components into cobra commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"seo-go/internal/config"
	"seo-go/pkg/logger"
)

var (
	ErrSubmissionFailed = errors.New("IndexNow submission failed")
	ErrValidationFailed = errors.New("SEO validation failed")
)

// Options carries state shared by every command.
type Options struct {
	ConfigPath string

	Out       io.Writer // human-readable output
	LogOutput io.Writer // overrides logger.output when set
	Now       func() time.Time

	ui *ui
}

func (o *Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o *Options) theme() *ui {
	if o.ui == nil {
		o.ui = newUI()
	}
	return o.ui
}

// load reads .env files and configuration, then installs the configured logger.
func (o *Options) load() (*config.Config, error) {
	if err := config.LoadDotenv(config.DotenvFiles...); err != nil {
		return nil, err
	}

	cfg, err := config.NewManager().Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	if o.LogOutput != nil {
		logger.SetLogger(logger.NewWithWriter(cfg.Logger, o.LogOutput))
	} else {
		logger.SetLogger(logger.New(cfg.Logger))
	}
	return cfg, nil
}

// NewRootCommand returns the seo-go command with every subcommand attached.
func NewRootCommand(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "seo-go",
		Short: "SEO tooling for multi-locale sites",
		Long:  "IndexNow submission, SEO metadata validation and sitemap generation for multi-locale sites.",
	}
	Standalone(root, opts)

	root.AddCommand(
		NewIndexNowCommand(opts),
		NewValidateCommand(opts),
		NewSitemapCommand(opts),
		NewKeyCommand(opts),
	)
	return root
}

// Standalone adds the flags every entry point shares.
func Standalone(cmd *cobra.Command, opts *Options) *cobra.Command {
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default ./seo-go.yaml when present)")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// Execute runs cmd and maps the outcome to a process exit code.
func Execute(cmd *cobra.Command) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "CRITICAL ERROR: recovered from panic: %v\n", r)
			code = 1
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.GetSecurityLogger().SafeError("Command failed", err, nil)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", newUI().err("ERROR:"), err)
		return 1
	}
	return 0
}
