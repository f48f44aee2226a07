//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"urban-detect/internal/domain/entity"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

type YOLODetector struct {
	opts Options
}

// NewYOLODetector создаёт детектор-заглушку (без OpenCV).
func NewYOLODetector(modelPath string, opts Options) (*YOLODetector, error) {
	if err := checkModelFile(modelPath); err != nil {
		return nil, err
	}
	return &YOLODetector{opts: opts}, nil
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *YOLODetector) Detect(ctx context.Context, imagePath string) ([]entity.RawDetection, error) {
	_ = ctx
	_ = imagePath
	return nil, errNoGoCV
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (d *YOLODetector) Annotate(ctx context.Context, report *entity.DetectionReport) ([]byte, error) {
	_ = ctx
	_ = report
	return nil, errNoGoCV
}

func (d *YOLODetector) Close() error {
	return nil
}

type WindowViewer struct{}

func NewWindowViewer() *WindowViewer {
	return &WindowViewer{}
}

// Show возвращает ошибку, если сборка без тега gocv.
func (v *WindowViewer) Show(ctx context.Context, title, imagePath string) error {
	_ = ctx
	_ = title
	_ = imagePath
	return errNoGoCV
}
