package app

import (
	"context"
	"errors"
	"fmt"

	"urban-detect/internal/domain/entity"
	"urban-detect/internal/domain/port"
)

// DetectionService запускает модель и собирает отчёт по одному изображению.
type DetectionService struct {
	detector   port.ObjectDetector
	normalizer *Normalizer
}

// NewDetectionService создаёт сервис распознавания.
func NewDetectionService(detector port.ObjectDetector, normalizer *Normalizer) *DetectionService {
	return &DetectionService{
		detector:   detector,
		normalizer: normalizer,
	}
}

// Detect возвращает отчёт или *entity.InferenceError. Пустой отчёт ошибкой не считается.
func (s *DetectionService) Detect(ctx context.Context, imagePath string) (report *entity.DetectionReport, err error) {
	if s.detector == nil {
		return nil, &entity.InferenceError{Path: imagePath, Err: errors.New("detector is not configured")}
	}

	// Сбой внутри модели не должен ронять сессию
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = &entity.InferenceError{Path: imagePath, Err: panicError(r)}
		}
	}()

	raw, err := s.detector.Detect(ctx, imagePath)
	if err != nil {
		return nil, &entity.InferenceError{Path: imagePath, Err: err}
	}

	return s.normalizer.Normalize(imagePath, raw), nil
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
