package container

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"urban-detect/config"
	app "urban-detect/internal/application"
	"urban-detect/internal/domain/entity"
)

func TestNewDetection(t *testing.T) {
	c := NewDetection(nil, entity.DefaultClassCatalog(), t.TempDir())
	require.NotNil(t, c.Resolver)
	require.NotNil(t, c.DetectionService)
	require.NotNil(t, c.Renderer)
	require.NotNil(t, c.Persister)
}

func TestNewTraining_LooksInConfiguredRunDir(t *testing.T) {
	cfg := &config.Config{ResultsProject: t.TempDir(), RunName: "run", DatasetPath: "d.yaml"}
	settings := app.ResumeSettings{DatasetPath: cfg.DatasetPath, Project: cfg.ResultsProject, RunName: cfg.RunName}
	c := NewTraining(nil, nil, settings, cfg.RunDir())

	_, err := c.Controller.Prepare()
	require.ErrorIs(t, err, entity.ErrCheckpointNotFound)

	var cpErr *entity.CheckpointError
	require.ErrorAs(t, err, &cpErr)
	require.Equal(t, filepath.Join(cfg.ResultsProject, "run", "weights", "last.pt"), cpErr.Path)
}
