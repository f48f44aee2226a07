package port

import (
	"context"

	"urban-detect/internal/domain/entity"
)

// ObjectDetector интерфейс внешней модели детекции
type ObjectDetector interface {
	// Detect запускает модель на изображении и возвращает детекции в порядке модели
	Detect(ctx context.Context, imagePath string) ([]entity.RawDetection, error)

	// Annotate рисует рамки и подписи из отчёта и возвращает JPEG
	Annotate(ctx context.Context, report *entity.DetectionReport) ([]byte, error)
}

// ImageViewer показывает изображение оператору
type ImageViewer interface {
	Show(ctx context.Context, title, imagePath string) error
}
