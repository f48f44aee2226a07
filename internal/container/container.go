package container

import (
	app "urban-detect/internal/application"
	"urban-detect/internal/domain/entity"
	"urban-detect/internal/domain/port"
)

// Detection сервисы интерактивной сессии распознавания
type Detection struct {
	Resolver         *app.PathResolver
	DetectionService *app.DetectionService
	Renderer         *app.Renderer
	Persister        *app.Persister
}

func NewDetection(detector port.ObjectDetector, catalog entity.ClassCatalog, outputDir string) *Detection {
	return &Detection{
		Resolver:         app.NewPathResolver(),
		DetectionService: app.NewDetectionService(detector, app.NewNormalizer(catalog)),
		Renderer:         app.NewRenderer(),
		Persister:        app.NewPersister(detector, outputDir),
	}
}

// Training сервисы возобновления обучения
type Training struct {
	Controller *app.TrainingController
}

// NewTraining runDir — директория прогона, в которой ищется weights/last.pt
func NewTraining(trainer port.Trainer, probe port.DeviceProbe, settings app.ResumeSettings, runDir string) *Training {
	builder := app.NewResumeConfigBuilder(probe, settings)
	return &Training{
		Controller: app.NewTrainingController(app.NewCheckpointLocator(), builder, trainer, runDir),
	}
}
