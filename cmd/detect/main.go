package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"urban-detect/config"
	console "urban-detect/internal/api"
	"urban-detect/internal/container"
	"urban-detect/internal/domain/entity"
	"urban-detect/internal/infrastructure/dataset"
	"urban-detect/internal/infrastructure/vision"
	"urban-detect/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg, "detect")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	catalog := entity.DefaultClassCatalog()
	if cfg.ClassNamesFrom != "" {
		desc, err := dataset.Load(cfg.ClassNamesFrom)
		if err != nil {
			log.Fatalf("Failed to load class names: %v", err)
		}
		catalog = desc.Catalog()
	}

	fmt.Println("Loading model...")
	detector, err := vision.NewYOLODetector(cfg.ModelPath, vision.Options{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		NMSThreshold:        cfg.NMSThreshold,
	})
	if err != nil {
		fmt.Print(modelLoadMessage(cfg.ModelPath, err))
		logg.WithError(err).Fatal("failed to load model")
	}
	defer detector.Close()
	fmt.Println("Model loaded successfully!")

	c := container.NewDetection(detector, catalog, cfg.OutputDir)
	session := console.NewSession(os.Stdin, os.Stdout, c.Resolver, c.DetectionService,
		c.Renderer, c.Persister, vision.NewWindowViewer(), logg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx); err != nil {
		logg.WithError(err).Error("session error")
		os.Exit(1)
	}
}

// modelLoadMessage подсказка оператору: отсутствующий файл и битая модель чинятся по-разному.
func modelLoadMessage(modelPath string, err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("Model not found at: %s\nPlease update MODEL_PATH\n", modelPath)
	}
	return fmt.Sprintf("Could not load model %s: %v\n", modelPath, err)
}
