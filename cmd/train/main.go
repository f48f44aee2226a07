package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"urban-detect/config"
	console "urban-detect/internal/api"
	app "urban-detect/internal/application"
	"urban-detect/internal/container"
	"urban-detect/internal/infrastructure/device"
	"urban-detect/internal/infrastructure/trainer"
	"urban-detect/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg, "train")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	c := container.NewTraining(
		trainer.NewCLITrainer(cfg.YOLOBinary, os.Stdout, logg),
		device.NewProbe(),
		app.ResumeSettings{
			DatasetPath: cfg.DatasetPath,
			Project:     cfg.ResultsProject,
			RunName:     cfg.RunName,
			ForceCPU:    cfg.ForceCPU,
		},
		cfg.RunDir(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := console.RunTraining(ctx, c.Controller, os.Stdout, logg)
	stop()
	os.Exit(code)
}
