package trainer

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"urban-detect/internal/domain/entity"
)

func testConfig(t *testing.T) entity.ResumeConfig {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(data, []byte("train: t\nval: v\nnames: [pothole]\n"), 0o644))

	return entity.ResumeConfig{
		CheckpointPath:        filepath.Join(dir, "weights", "last.pt"),
		DatasetDescriptorPath: data,
		Epochs:                100,
		ImageSize:             640,
		BatchSize:             8,
		InitialLearningRate:   0.001,
		Device:                entity.DeviceCPU,
		Resume:                true,
		OutputProjectDir:      filepath.Join(dir, "urban_detection_results"),
		OutputRunName:         "yolov11_urban_v1",
		WorkerCount:           8,
		MixedPrecision:        true,
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fake-yolo")
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755))
	return p
}

func TestCLITrainer_Success(t *testing.T) {
	cfg := testConfig(t)
	script := writeScript(t, "echo \"training $1\"\n")
	log, _ := test.NewNullLogger()
	out := &bytes.Buffer{}

	outcome, err := NewCLITrainer(script, out, log).Train(context.Background(), cfg)
	require.NoError(t, err)

	runDir := filepath.Join(cfg.OutputProjectDir, cfg.OutputRunName)
	argsPath := filepath.Join(runDir, ArgsFileName)
	require.Equal(t, runDir, outcome.OutputDir)
	require.Contains(t, out.String(), "training cfg="+argsPath)

	data, err := os.ReadFile(argsPath)
	require.NoError(t, err)
	var args map[string]any
	require.NoError(t, yaml.Unmarshal(data, &args))
	require.Equal(t, "train", args["mode"])
	require.Equal(t, cfg.CheckpointPath, args["model"])
	require.Equal(t, 100, args["epochs"])
	require.Equal(t, 640, args["imgsz"])
	require.Equal(t, 8, args["batch"])
	require.Equal(t, 0.001, args["lr0"])
	require.Equal(t, "cpu", args["device"])
	require.Equal(t, true, args["resume"])
	require.Equal(t, false, args["cache"])
	require.Equal(t, true, args["amp"])
	require.Equal(t, 8, args["workers"])
}

func TestCLITrainer_MissingDataset(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatasetDescriptorPath = filepath.Join(t.TempDir(), "none.yaml")
	log, _ := test.NewNullLogger()

	_, err := NewCLITrainer("yolo", &bytes.Buffer{}, log).Train(context.Background(), cfg)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCLITrainer_MissingBinary(t *testing.T) {
	log, _ := test.NewNullLogger()

	_, err := NewCLITrainer("definitely-not-a-yolo-binary", &bytes.Buffer{}, log).Train(context.Background(), testConfig(t))
	require.ErrorIs(t, err, exec.ErrNotFound)
}

func TestCLITrainer_ProcessFailure(t *testing.T) {
	log, _ := test.NewNullLogger()
	script := writeScript(t, "echo 'CUDA out of memory' >&2\nexit 3\n")
	out := &bytes.Buffer{}

	_, err := NewCLITrainer(script, out, log).Train(context.Background(), testConfig(t))
	require.ErrorContains(t, err, "exited with code 3")
	require.Contains(t, out.String(), "CUDA out of memory")
}
