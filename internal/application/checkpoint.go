package app

import (
	"fmt"
	"os"
	"path/filepath"

	"urban-detect/internal/domain/entity"
)

const (
	weightsDir     = "weights"
	checkpointFile = "last.pt"
)

// CheckpointLocator ищет last.pt в директории прогона.
type CheckpointLocator struct{}

func NewCheckpointLocator() *CheckpointLocator {
	return &CheckpointLocator{}
}

// CheckpointPath возвращает <runDir>/weights/last.pt
func CheckpointPath(runDir string) string {
	return filepath.Join(runDir, weightsDir, checkpointFile)
}

// Locate создаёт <runDir>/weights при необходимости, но сам чекпоинт никогда не создаёт.
// Если файла нет, возвращается *entity.CheckpointError с абсолютным путём.
func (l *CheckpointLocator) Locate(runDir string) (entity.CheckpointReference, error) {
	abs, err := filepath.Abs(CheckpointPath(runDir))
	if err != nil {
		return entity.CheckpointReference{}, fmt.Errorf("resolve checkpoint path: %w", err)
	}
	ref := entity.CheckpointReference{Path: abs}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return ref, fmt.Errorf("create weights directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return ref, &entity.CheckpointError{Path: abs}
	}

	ref.Exists = true
	return ref, nil
}
