package trainer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"urban-detect/internal/domain/entity"
	"urban-detect/internal/infrastructure/dataset"
)

// ArgsFileName файл с аргументами обучения внутри директории прогона
const ArgsFileName = "resume_args.yaml"

// CLITrainer запускает обучение через CLI ultralytics: yolo cfg=<args.yaml>.
type CLITrainer struct {
	binary string
	out    io.Writer
	log    *logrus.Logger
}

// NewCLITrainer вывод процесса обучения идёт в out.
func NewCLITrainer(binary string, out io.Writer, log *logrus.Logger) *CLITrainer {
	return &CLITrainer{binary: binary, out: out, log: log}
}

type trainArgs struct {
	Mode                string `yaml:"mode"`
	Task                string `yaml:"task"`
	entity.ResumeConfig `yaml:",inline"`
	Save                bool `yaml:"save"`
	Plots               bool `yaml:"plots"`
	Verbose             bool `yaml:"verbose"`
}

// Train блокируется до конца обучения. Прогресс и отмену не поддерживает, кроме отмены ctx.
func (t *CLITrainer) Train(ctx context.Context, cfg entity.ResumeConfig) (*entity.TrainingOutcome, error) {
	if _, err := dataset.Load(cfg.DatasetDescriptorPath); err != nil {
		return nil, err
	}

	binary, err := exec.LookPath(t.binary)
	if err != nil {
		return nil, fmt.Errorf("find training executable: %w", err)
	}

	runDir := filepath.Join(cfg.OutputProjectDir, cfg.OutputRunName)
	argsPath, err := writeArgs(runDir, cfg)
	if err != nil {
		return nil, err
	}

	t.log.WithFields(logrus.Fields{"binary": binary, "args": argsPath}).Info("starting training process")

	cmd := exec.CommandContext(ctx, binary, "cfg="+argsPath)
	cmd.Stdout = t.out
	cmd.Stderr = t.out
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("training process exited with code %d: %w", exitErr.ExitCode(), err)
		}
		return nil, fmt.Errorf("run training process: %w", err)
	}

	return &entity.TrainingOutcome{OutputDir: runDir}, nil
}

// writeArgs сохраняет конфигурацию без изменений, добавляя только режим и флаги вывода.
func writeArgs(runDir string, cfg entity.ResumeConfig) (string, error) {
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("create run directory: %w", err)
	}

	data, err := yaml.Marshal(trainArgs{
		Mode:         "train",
		Task:         "detect",
		ResumeConfig: cfg,
		Save:         true,
		Plots:        true,
		Verbose:      true,
	})
	if err != nil {
		return "", fmt.Errorf("encode training args: %w", err)
	}

	path := filepath.Join(runDir, ArgsFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write training args: %w", err)
	}
	return path, nil
}
