package port

import (
	"context"

	"urban-detect/internal/domain/entity"
)

// Trainer интерфейс внешнего цикла обучения модели
type Trainer interface {
	// Train выполняет обучение с переданной конфигурацией и блокируется до его окончания
	Train(ctx context.Context, cfg entity.ResumeConfig) (*entity.TrainingOutcome, error)
}

// DeviceProbe проверяет наличие ускорителя
type DeviceProbe interface {
	AcceleratorAvailable() bool
}
