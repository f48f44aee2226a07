package entity

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainingError_MatchesKindAndCause(t *testing.T) {
	err := error(&TrainingError{Kind: ErrResourceMissing, Err: fs.ErrNotExist})
	require.ErrorIs(t, err, ErrResourceMissing)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.False(t, errors.Is(err, ErrTrainingUnexpected))
}

func TestCheckpointError_Message(t *testing.T) {
	err := error(&CheckpointError{Path: "/abs/weights/last.pt"})
	require.ErrorIs(t, err, ErrCheckpointNotFound)
	require.Contains(t, err.Error(), "/abs/weights/last.pt")
}

func TestPersistError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&PersistError{Path: "detected_a.jpg", Err: cause})
	require.ErrorIs(t, err, ErrPersist)
	require.ErrorIs(t, err, cause)
}
