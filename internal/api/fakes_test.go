package console

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"urban-detect/internal/domain/entity"
)

type fakeDetector struct {
	raw         []entity.RawDetection
	detectErr   error
	annotateErr error
	detectCalls []string
}

func (f *fakeDetector) Detect(ctx context.Context, imagePath string) ([]entity.RawDetection, error) {
	f.detectCalls = append(f.detectCalls, imagePath)
	return f.raw, f.detectErr
}

func (f *fakeDetector) Annotate(ctx context.Context, report *entity.DetectionReport) ([]byte, error) {
	if f.annotateErr != nil {
		return nil, f.annotateErr
	}
	return []byte("jpeg"), nil
}

type fakeViewer struct {
	err   error
	shown []string
}

func (f *fakeViewer) Show(ctx context.Context, title, imagePath string) error {
	f.shown = append(f.shown, imagePath)
	return f.err
}

type fakeTrainer struct {
	err   error
	calls int
}

func (f *fakeTrainer) Train(ctx context.Context, cfg entity.ResumeConfig) (*entity.TrainingOutcome, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.TrainingOutcome{OutputDir: filepath.Join(cfg.OutputProjectDir, cfg.OutputRunName)}, nil
}

type fakeProbe struct{}

func (fakeProbe) AcceleratorAvailable() bool { return false }

var errCorrupt = errors.New("corrupt image")

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("img"), 0o644))
	return p
}
