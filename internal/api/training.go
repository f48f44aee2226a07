package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "urban-detect/internal/application"
	"urban-detect/internal/domain/entity"
)

const (
	msgCheckingDirs       = "Checking directories and files..."
	msgCheckpointNotFound = `Checkpoint not found at: %s
Please ensure:
   1. You have previously trained the model
   2. The checkpoint file is named 'last.pt'
   3. The file is in the correct location
`
	msgResuming          = "Resuming training from checkpoint: %s\n"
	msgDevice            = "Using device: %s\n"
	msgTrainingDone      = "Training completed!\nResults saved in '%s'\n"
	msgResourceMissing   = "Error: %v\n"
	msgUnexpectedFailure = "An unexpected error occurred: %v\n"
)

// RunTraining возобновляет обучение и печатает итог оператору.
// Любая ошибка фатальна для запуска: возвращается ненулевой код выхода.
func RunTraining(ctx context.Context, ctrl *app.TrainingController, out io.Writer, log *logrus.Logger) int {
	entry := log.WithField("run_id", uuid.NewString())
	fmt.Fprintln(out, msgCheckingDirs)

	cfg, err := ctrl.Prepare()
	if err != nil {
		var cpErr *entity.CheckpointError
		if errors.As(err, &cpErr) {
			entry.WithField("checkpoint", cpErr.Path).Error("checkpoint not found")
			fmt.Fprintf(out, msgCheckpointNotFound, cpErr.Path)
			return 1
		}
		entry.WithError(err).Error("prepare training failed")
		fmt.Fprintf(out, msgUnexpectedFailure, err)
		return 1
	}

	fmt.Fprintf(out, msgResuming, cfg.CheckpointPath)
	fmt.Fprintf(out, msgDevice, cfg.Device)
	entry.WithFields(logrus.Fields{
		"checkpoint": cfg.CheckpointPath,
		"device":     cfg.Device,
		"epochs":     cfg.Epochs,
	}).Info("resuming training")

	outcome, err := ctrl.Run(ctx, *cfg)
	if err != nil {
		entry.WithError(err).Error("training failed")
		if errors.Is(err, entity.ErrResourceMissing) {
			fmt.Fprintf(out, msgResourceMissing, err)
		} else {
			fmt.Fprintf(out, msgUnexpectedFailure, err)
		}
		return 1
	}

	entry.WithField("output_dir", outcome.OutputDir).Info("training completed")
	fmt.Fprintf(out, msgTrainingDone, outcome.OutputDir)
	return 0
}
