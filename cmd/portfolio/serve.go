package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mortenator/portfolio"
)

func siteConfig() portfolio.SiteConfig {
	return portfolio.SiteConfig{
		Name:        portfolio.EnvOr("SITE_NAME", ""),
		URL:         portfolio.EnvOr("SITE_URL", ""),
		Description: portfolio.EnvOr("SITE_DESCRIPTION", ""),
		Author:      portfolio.EnvOr("SITE_AUTHOR", ""),
		Addr:        portfolio.EnvOr("ADDR", ""),
		ContentDir:  portfolio.EnvOr("CONTENT_DIR", ""),
	}
}

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site, sitemap.xml and robots.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := siteConfig()
			if addr != "" {
				cfg.Addr = addr
			}
			app := portfolio.New(cfg, portfolio.ViewFuncs{},
				portfolio.WithStaticDir(portfolio.EnvOr("STATIC_DIR", "public")))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := app.Shutdown(shutdownCtx); err != nil {
					log.Printf("shutdown: %v", err)
				}
			}()

			log.Printf("serving %s on %s (content: %s)", app.Config.URL, app.Config.Addr, app.Config.ContentDir)
			return app.Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDR)")
	return cmd
}
