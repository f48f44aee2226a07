package entity

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound       = errors.New("path not found")
	ErrLooksLikeCommand   = errors.New("input looks like a command, not an image path")
	ErrInference          = errors.New("inference failed")
	ErrPersist            = errors.New("could not save annotated image")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrResourceMissing    = errors.New("training resource missing")
	ErrTrainingUnexpected = errors.New("unexpected training error")
)

// PathError ошибка проверки введённого пути
type PathError struct {
	Path string
	Err  error // ErrPathNotFound или ErrLooksLikeCommand
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PathError) Unwrap() error { return e.Err }

// InferenceError ошибка модели при обработке изображения
type InferenceError struct {
	Path string
	Err  error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("%v for %s: %v", ErrInference, e.Path, e.Err)
}

func (e *InferenceError) Unwrap() []error { return []error{ErrInference, e.Err} }

// PersistError ошибка сохранения размеченного изображения
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrPersist, e.Path, e.Err)
}

func (e *PersistError) Unwrap() []error { return []error{ErrPersist, e.Err} }

// CheckpointError чекпоинт не найден по ожидаемому пути
type CheckpointError struct {
	Path string // абсолютный путь, по которому искали
}

func (e *CheckpointError) Error() string {
	return fmt.Sprintf("%v at %s", ErrCheckpointNotFound, e.Path)
}

func (e *CheckpointError) Unwrap() error { return ErrCheckpointNotFound }

// TrainingError ошибка обучения: Kind — ErrResourceMissing или ErrTrainingUnexpected
type TrainingError struct {
	Kind error
	Err  error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *TrainingError) Unwrap() []error { return []error{e.Kind, e.Err} }
