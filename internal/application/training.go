package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"

	"urban-detect/internal/domain/entity"
	"urban-detect/internal/domain/port"
)

// TrainingController возобновляет обучение с последнего чекпоинта.
type TrainingController struct {
	locator *CheckpointLocator
	builder *ResumeConfigBuilder
	trainer port.Trainer
	runDir  string
}

// NewTrainingController создаёт контроллер для директории прогона runDir (<project>/<run>).
func NewTrainingController(locator *CheckpointLocator, builder *ResumeConfigBuilder, trainer port.Trainer, runDir string) *TrainingController {
	return &TrainingController{
		locator: locator,
		builder: builder,
		trainer: trainer,
		runDir:  runDir,
	}
}

// Prepare ищет чекпоинт и собирает конфигурацию. Без чекпоинта конфигурация не собирается.
func (c *TrainingController) Prepare() (*entity.ResumeConfig, error) {
	ref, err := c.locator.Locate(c.runDir)
	if err != nil {
		return nil, err
	}
	return c.builder.Build(ref)
}

// Run передаёт конфигурацию модели как есть и классифицирует ошибки обучения.
func (c *TrainingController) Run(ctx context.Context, cfg entity.ResumeConfig) (outcome *entity.TrainingOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = nil
			err = &entity.TrainingError{Kind: entity.ErrTrainingUnexpected, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	outcome, err = c.trainer.Train(ctx, cfg)
	if err != nil {
		return nil, classifyTrainingError(err)
	}

	if outcome == nil || outcome.OutputDir == "" {
		outcome = &entity.TrainingOutcome{OutputDir: filepath.Join(cfg.OutputProjectDir, cfg.OutputRunName)}
	}
	return outcome, nil
}

// Resume выполняет Prepare и Run.
func (c *TrainingController) Resume(ctx context.Context) (*entity.ResumeConfig, *entity.TrainingOutcome, error) {
	cfg, err := c.Prepare()
	if err != nil {
		return nil, nil, err
	}

	outcome, err := c.Run(ctx, *cfg)
	return cfg, outcome, err
}

func classifyTrainingError(err error) error {
	var trainingErr *entity.TrainingError
	if errors.As(err, &trainingErr) {
		return trainingErr
	}

	if errors.Is(err, entity.ErrResourceMissing) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
		return &entity.TrainingError{Kind: entity.ErrResourceMissing, Err: err}
	}
	return &entity.TrainingError{Kind: entity.ErrTrainingUnexpected, Err: err}
}
