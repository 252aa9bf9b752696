package main

import (
	"errors"
	"log"
	"os"

	"github.com/dastanaron/html2nix/internal/cli"
	"github.com/dastanaron/html2nix/internal/commands"
	"github.com/dastanaron/html2nix/internal/logger"
	"github.com/dastanaron/html2nix/internal/nix"
	"github.com/dastanaron/html2nix/internal/service"
	"github.com/dastanaron/html2nix/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, exit, err := cli.Parse(args, os.Stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			log.Printf("html2nix: %v", exitErr)
			return exitErr.Code
		}
		log.Printf("html2nix: %v", err)
		return 2
	}
	if exit {
		return 0
	}

	lg, err := logger.New(cfg.LogLevel, cfg.PrettyLog)
	if err != nil {
		log.Printf("html2nix: failed to initialize logger: %v", err)
		return 1
	}
	defer func() { _ = lg.Sync() }()

	renderer, err := nix.NewRenderer(cfg.RendererOptions())
	if err != nil {
		lg.Error("invalid renderer configuration", logger.Error(err))
		return 2
	}

	svc := service.NewConvertService(renderer, lg)
	source := storage.NewFileSource()

	// Handle preview command
	if cfg.Preview {
		previewCmd := commands.NewPreviewCommand(source, svc, lg, os.Stdout, cfg.Depth)
		if err := previewCmd.Execute(cfg.InputPath, cfg.OutputPath); err != nil {
			lg.Error("preview failed", logger.Error(err))
			return 1
		}
		return 0
	}

	convertCmd := commands.NewConvertCommand(source, svc, lg, os.Stdout, cfg.Depth)
	if err := convertCmd.Execute(cfg.InputPath, cfg.OutputPath); err != nil {
		lg.Error("conversion failed", logger.Error(err))
		return 1
	}
	return 0
}
