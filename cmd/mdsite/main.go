// Package main implements the mdsite command: build a static HTML site from a
// markdown directory and serve it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/mdsite/internal/config"
	"github.com/taigrr/mdsite/internal/logging"
	"github.com/taigrr/mdsite/internal/server"
	"github.com/taigrr/mdsite/internal/site"
)

type options struct {
	configPath string
	addr       string
	noServe    bool
	clean      bool
	progress   bool
	workers    int
	logLevel   string
	logFormat  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(
		ctx,
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mdsite <markdown-dir>",
		Short: "Build and serve a static site from a markdown directory",
		Long: `mdsite converts every markdown file under a directory into an HTML page,
writes them with an index and static assets to <markdown-dir>/html_output,
and serves the result over HTTP.

GitHub style alerts ("> [!NOTE]"), links to other markdown files and fenced
code blocks are rendered for in-browser navigation and highlighting.`,
		Example: `mdsite ./docs
mdsite ./docs --addr :3000
mdsite ./docs --no-serve --clean`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSite(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default <markdown-dir>/"+config.FileName+")")
	flags.StringVarP(&opts.addr, "addr", "a", "", "address to serve on (default "+config.DefaultAddr+")")
	flags.BoolVar(&opts.noServe, "no-serve", false, "build the site and exit")
	flags.BoolVar(&opts.clean, "clean", false, "remove the output directory before building")
	flags.BoolVar(&opts.progress, "progress", false, "show a progress bar while converting")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "number of parallel conversions (default: number of CPUs)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: console, json, pretty")

	cmd.AddCommand(newMCPCmd())
	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, dir string, opts *options) (config.Config, error) {
	cfg, err := config.Load(dir, opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("clean") {
		cfg.Clean = opts.clean
	}
	if flags.Changed("progress") {
		cfg.Progress = opts.progress
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSite(cmd *cobra.Command, dir string, opts *options) error {
	cfg, err := loadConfig(cmd, dir, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	builder, err := site.New(cfg, logger)
	if err != nil {
		return err
	}

	result, err := builder.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}

	if opts.noServe {
		return nil
	}

	return server.New(result.OutputDir, cfg.Addr, logger).Run(cmd.Context())
}
