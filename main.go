package main

import (
	"fmt"
	"os"

	"BezierBoard/internal/config"
	"BezierBoard/internal/logging"
	"BezierBoard/internal/ui"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bezierboard:", err)
		os.Exit(1)
	}
}

// run takes an optional path to open in place of the file picker.
func run(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: bezierboard [image-or-document]")
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := ui.Options{Config: cfg, Log: logger}
	if len(args) == 1 {
		opts.Path = args[0]
	}
	logger.Info("starting", zap.String("config", path), zap.String("open", opts.Path), zap.Bool("share", cfg.Share.Enabled))
	return ui.RunApp(opts)
}
