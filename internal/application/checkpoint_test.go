package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"urban-detect/internal/domain/entity"
)

func TestCheckpointLocator_Missing(t *testing.T) {
	runDir := filepath.Join(t.TempDir(), "urban_detection_results", "yolov11_urban_v1")

	ref, err := NewCheckpointLocator().Locate(runDir)
	require.ErrorIs(t, err, entity.ErrCheckpointNotFound)
	require.False(t, ref.Exists)

	var cpErr *entity.CheckpointError
	require.ErrorAs(t, err, &cpErr)
	require.True(t, filepath.IsAbs(cpErr.Path))
	require.Equal(t, filepath.Join(runDir, "weights", "last.pt"), cpErr.Path)

	// директория создана, файл — нет
	info, statErr := os.Stat(filepath.Join(runDir, "weights"))
	require.NoError(t, statErr)
	require.True(t, info.IsDir())
	_, statErr = os.Stat(cpErr.Path)
	require.True(t, os.IsNotExist(statErr))
}

func TestCheckpointLocator_Found(t *testing.T) {
	runDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(runDir, "weights"), 0o755))
	require.NoError(t, os.WriteFile(CheckpointPath(runDir), []byte("ckpt"), 0o644))

	ref, err := NewCheckpointLocator().Locate(runDir)
	require.NoError(t, err)
	require.True(t, ref.Exists)
	require.Equal(t, CheckpointPath(runDir), ref.Path)
}

func TestCheckpointLocator_DirectoryIsNotCheckpoint(t *testing.T) {
	runDir := t.TempDir()
	require.NoError(t, os.MkdirAll(CheckpointPath(runDir), 0o755))

	_, err := NewCheckpointLocator().Locate(runDir)
	require.ErrorIs(t, err, entity.ErrCheckpointNotFound)
}
