package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"urban-detect/internal/domain/entity"
	"urban-detect/internal/domain/port"
)

// Persister сохраняет размеченное изображение рядом с оператором.
type Persister struct {
	annotator port.ObjectDetector
	outputDir string
}

// NewPersister создаёт сохранятор; пустой outputDir означает текущую директорию.
func NewPersister(annotator port.ObjectDetector, outputDir string) *Persister {
	if outputDir == "" {
		outputDir = "."
	}
	return &Persister{annotator: annotator, outputDir: outputDir}
}

// OutputName возвращает detected_<имя без расширения>.jpg независимо от исходного расширения.
func OutputName(sourcePath string) string {
	// Оператор может ввести путь в стиле Windows
	base := filepath.Base(strings.ReplaceAll(sourcePath, `\`, "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return "detected_" + base + ".jpg"
}

// Persist просит модель нарисовать рамки и записывает JPEG. Существующий файл перезаписывается.
func (p *Persister) Persist(ctx context.Context, report *entity.DetectionReport) (string, error) {
	out := filepath.Join(p.outputDir, OutputName(report.SourceImagePath))

	annotated, err := p.annotator.Annotate(ctx, report)
	if err != nil {
		return "", &entity.PersistError{Path: out, Err: err}
	}

	if err := os.WriteFile(out, annotated, 0o644); err != nil {
		return "", &entity.PersistError{Path: out, Err: err}
	}

	return out, nil
}

// OutputDir абсолютный путь директории вывода
func (p *Persister) OutputDir() string {
	abs, err := filepath.Abs(p.outputDir)
	if err != nil {
		return p.outputDir
	}
	return abs
}
