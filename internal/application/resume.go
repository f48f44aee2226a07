package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"urban-detect/internal/domain/entity"
	"urban-detect/internal/domain/port"
)

const (
	ResumeEpochs       = 100
	ResumeImageSize    = 640
	ResumeBatchSize    = 8
	ResumeLearningRate = 0.001 // ниже стартового, обучение уже шло
	ResumeWorkers      = 8
)

// ResumeSettings пути, которые задаются конфигурацией, а не константами.
type ResumeSettings struct {
	DatasetPath string
	Project     string
	RunName     string
	ForceCPU    bool
}

// ResumeConfigBuilder собирает ResumeConfig по найденному чекпоинту.
type ResumeConfigBuilder struct {
	probe    port.DeviceProbe
	settings ResumeSettings
	validate *validator.Validate
}

func NewResumeConfigBuilder(probe port.DeviceProbe, settings ResumeSettings) *ResumeConfigBuilder {
	return &ResumeConfigBuilder{
		probe:    probe,
		settings: settings,
		validate: validator.New(),
	}
}

// Build отказывает, если чекпоинта нет: возобновлять нечего.
func (b *ResumeConfigBuilder) Build(ref entity.CheckpointReference) (*entity.ResumeConfig, error) {
	if !ref.Exists {
		return nil, &entity.CheckpointError{Path: ref.Path}
	}

	cfg := &entity.ResumeConfig{
		CheckpointPath:        ref.Path,
		DatasetDescriptorPath: b.settings.DatasetPath,
		Epochs:                ResumeEpochs,
		ImageSize:             ResumeImageSize,
		BatchSize:             ResumeBatchSize,
		InitialLearningRate:   ResumeLearningRate,
		Device:                b.selectDevice(),
		Resume:                true,
		OutputProjectDir:      b.settings.Project,
		OutputRunName:         b.settings.RunName,
		WorkerCount:           ResumeWorkers,
		Cache:                 false,
		MixedPrecision:        true,
	}

	if err := b.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid resume config: %w", err)
	}

	return cfg, nil
}

// selectDevice единственная автоматическая подмена на пути обучения: ускоритель -> CPU.
func (b *ResumeConfigBuilder) selectDevice() entity.Device {
	if b.settings.ForceCPU || b.probe == nil {
		return entity.DeviceCPU
	}
	if b.probe.AcceleratorAvailable() {
		return entity.DeviceCUDA
	}
	return entity.DeviceCPU
}
