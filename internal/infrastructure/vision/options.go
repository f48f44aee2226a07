package vision

import (
	"fmt"
	"os"

	"urban-detect/internal/domain/entity"
)

const inputSize = 640

// Options пороги модели. Отсечение по уверенности делает модель, а не нормализатор.
type Options struct {
	ConfidenceThreshold float64
	NMSThreshold        float64
}

// DefaultOptions пороги по умолчанию, как у ultralytics predict
func DefaultOptions() Options {
	return Options{
		ConfidenceThreshold: 0.25,
		NMSThreshold:        0.45,
	}
}

func checkModelFile(modelPath string) error {
	info, err := os.Stat(modelPath)
	if err != nil {
		return fmt.Errorf("model not found at %s: %w", modelPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("model path %s is a directory", modelPath)
	}
	return nil
}

// boxToRaw переводит рамку (cx, cy, w, h) из входа сети в координаты изображения.
func boxToRaw(classID int, score, cx, cy, w, h float64, cols, rows int) entity.RawDetection {
	xf := float64(cols) / inputSize
	yf := float64(rows) / inputSize
	return entity.RawDetection{
		ClassID:    classID,
		Confidence: score,
		X1:         clamp((cx-w/2)*xf, float64(cols)),
		Y1:         clamp((cy-h/2)*yf, float64(rows)),
		X2:         clamp((cx+w/2)*xf, float64(cols)),
		Y2:         clamp((cy+h/2)*yf, float64(rows)),
	}
}

func clamp(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
