package app

import (
	"context"
	"errors"

	"urban-detect/internal/domain/entity"
)

type fakeDetector struct {
	raw         []entity.RawDetection
	detectErr   error
	annotated   []byte
	annotateErr error
	panicWith   any

	detectCalls   []string
	annotateCalls int
}

func (f *fakeDetector) Detect(ctx context.Context, imagePath string) ([]entity.RawDetection, error) {
	f.detectCalls = append(f.detectCalls, imagePath)
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.raw, f.detectErr
}

func (f *fakeDetector) Annotate(ctx context.Context, report *entity.DetectionReport) ([]byte, error) {
	f.annotateCalls++
	if f.annotateErr != nil {
		return nil, f.annotateErr
	}
	return f.annotated, nil
}

type fakeTrainer struct {
	outcome *entity.TrainingOutcome
	err     error
	calls   []entity.ResumeConfig
}

func (f *fakeTrainer) Train(ctx context.Context, cfg entity.ResumeConfig) (*entity.TrainingOutcome, error) {
	f.calls = append(f.calls, cfg)
	return f.outcome, f.err
}

type fakeProbe struct {
	available bool
	calls     int
}

func (f *fakeProbe) AcceleratorAvailable() bool {
	f.calls++
	return f.available
}

var errBoom = errors.New("boom")
