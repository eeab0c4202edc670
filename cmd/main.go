package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"image-converter/internal/config"
	"image-converter/internal/convert"
	"image-converter/internal/encoder"
	"image-converter/internal/flow"
	"image-converter/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr)
	cfg, err := config.Parse()
	if err != nil {
		logger.Errorf("parse flags: %v", err)
		os.Exit(2)
	}
	ctx := context.Background()

	if !isInteractive(os.Stdin.Fd()) {
		logger.Errorf("interactive conversion requires a terminal")
		os.Exit(1)
	}

	registry := encoder.NewRegistry()
	logger.Infof("Loaded %s", registry)

	converter := convert.New(registry)
	if err := flow.Run(ctx, newHuhPrompter(cfg), converter, registry.Formats(), logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func isInteractive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
