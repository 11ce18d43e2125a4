package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/juandelacruz-calvo/obs-output-video-tools/config"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/app"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/cli"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/prompt"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	formatter := output.NewFormatter(os.Stdout)
	asker := prompt.NewReader(os.Stdin, os.Stdout)

	deps := &cli.Dependencies{
		App:       app.New(cfg, formatter, asker),
		Config:    cfg,
		Formatter: formatter,
	}

	return cli.NewRootCmd(deps).Execute()
}
