package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/config"
	"github.com/dev-ashishk/github-profile-builder-sub001/internal/routes"
	"github.com/dev-ashishk/github-profile-builder-sub001/internal/seo"
	"github.com/dev-ashishk/github-profile-builder-sub001/internal/server"
)

var (
	configFile string
	clock      clockwork.Clock = clockwork.NewRealClock()
)

func newLogger(c config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func loadConfig() (config.Config, error) {
	v, err := config.New(configFile)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

func serve(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(c.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	srv, err := server.New(c, clock, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}

func render(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	var content []byte
	switch args[0] {
	case "sitemap":
		content, err = seo.Sitemap(c.App.URL, routes.All(), clock.Now())
	case "robots":
		content, err = seo.Robots(c.App.URL)
	default:
		return fmt.Errorf("unknown document %q, want sitemap or robots", args[0])
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", args[0], err)
	}

	_, err = cmd.OutOrStdout().Write(content)
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitemeta",
		Short:         "Serve robots.txt and sitemap.xml for the profile README builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./sitemeta_config.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:       "render {sitemap|robots}",
		Short:     "Write a document to stdout",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"sitemap", "robots"},
		RunE:      render,
	})

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "sitemeta: %v\n", err)
		os.Exit(1)
	}
}
