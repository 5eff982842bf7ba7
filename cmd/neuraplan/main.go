package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sandeepkv93/neuraplan/internal/cli"
	"github.com/sandeepkv93/neuraplan/internal/config"
	"github.com/sandeepkv93/neuraplan/internal/logging"
	"github.com/sandeepkv93/neuraplan/internal/planner"
	"github.com/sandeepkv93/neuraplan/internal/storage"
	"github.com/sandeepkv93/neuraplan/internal/views"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := config.DefaultPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.OpenFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	views.SetColor(cfg.Color && interactive)

	backend, err := storage.Open(ctx, cfg.Backend, cfg.StatePath)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	defer backend.Close()

	p, err := planner.Open(ctx, backend, planner.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := p.Bootstrap(ctx, cfg.StartDate, cfg.ScheduleVersion); err != nil {
		return fmt.Errorf("preparing schedule: %w", err)
	}

	app := &cli.App{
		Planner:    p,
		Config:     cfg,
		ConfigPath: configPath,
		Logger:     logger,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
