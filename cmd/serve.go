package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Starts the HTTP server. With content.watch enabled the content document
is reloaded whenever it changes on disk; a document that fails to parse is
logged and the previous one keeps being served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger := newLogger(cfg)

		site, err := content.Load(cfg.Content.Path)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		for _, d := range site.Duplicates() {
			logger.Warn("duplicate content title", "list", d.List, "title", d.Key, "count", d.Count)
		}
		holder := content.NewHolder(site)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.Content.Watch {
			if err := content.Watch(ctx, cfg.Content.Path, holder, logger); err != nil {
				return err
			}
			logger.Info("watching content", "path", cfg.Content.Path)
		}

		srv, err := web.New(cfg, holder, logger)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
