package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mortenator/portfolio"
	"github.com/mortenator/portfolio/routes"
)

func routeConfig() routes.Config {
	return siteConfig().RouteConfig()
}

func newSitemapCommand() *cobra.Command {
	var output string
	var watch bool

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the current content",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := routeConfig()
			if !watch {
				return writeSitemap(cmd.OutOrStdout(), output, cfg)
			}
			if output == "" {
				return fmt.Errorf("--watch requires --output")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rebuild := func() {
				if err := writeSitemap(cmd.OutOrStdout(), output, cfg); err != nil {
					log.Printf("sitemap: %v", err)
				}
			}
			rebuild()
			log.Printf("watching %s for changes", cfg.ContentDir)
			return portfolio.WatchContent(ctx, cfg, rebuild)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rewrite the output whenever content changes")
	return cmd
}

// writeSitemap renders the sitemap to stdout, or atomically replaces output.
func writeSitemap(stdout io.Writer, output string, cfg routes.Config) error {
	rs := cfg.Routes(time.Now())
	if output == "" {
		return portfolio.WriteSitemap(stdout, rs)
	}

	var buf bytes.Buffer
	if err := portfolio.WriteSitemap(&buf, rs); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	tmp := output + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, output); err != nil {
		return fmt.Errorf("rename %s: %w", output, err)
	}
	log.Printf("wrote %s (%d routes)", output, len(rs))
	return nil
}

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print every site route as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return portfolio.WriteRoutesJSON(cmd.OutOrStdout(), routeConfig().Routes(time.Now()))
		},
	}
}
