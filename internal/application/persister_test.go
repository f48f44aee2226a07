package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"urban-detect/internal/domain/entity"
)

func TestOutputName(t *testing.T) {
	require.Equal(t, "detected_road.jpg", OutputName("/data/road.png"))
	require.Equal(t, "detected_road.jpg", OutputName("road.jpeg"))
	require.Equal(t, "detected_img.jpg", OutputName(`C:\photos\img.png`))
	require.Equal(t, "detected_archive.tar.jpg", OutputName("archive.tar.gz"))
	require.Equal(t, "detected_noext.jpg", OutputName("noext"))
}

func TestPersister_WritesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	det := &fakeDetector{annotated: []byte("first")}
	p := NewPersister(det, dir)
	report := &entity.DetectionReport{SourceImagePath: "/in/street.png"}

	out, err := p.Persist(context.Background(), report)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "detected_street.jpg"), out)

	det.annotated = []byte("second")
	_, err = p.Persist(context.Background(), report)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestPersister_AnnotateError(t *testing.T) {
	p := NewPersister(&fakeDetector{annotateErr: errBoom}, t.TempDir())

	_, err := p.Persist(context.Background(), &entity.DetectionReport{SourceImagePath: "a.jpg"})
	require.ErrorIs(t, err, entity.ErrPersist)
	require.ErrorIs(t, err, errBoom)
}

func TestPersister_WriteError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	p := NewPersister(&fakeDetector{annotated: []byte("x")}, missing)

	_, err := p.Persist(context.Background(), &entity.DetectionReport{SourceImagePath: "a.jpg"})
	require.ErrorIs(t, err, entity.ErrPersist)

	var persistErr *entity.PersistError
	require.ErrorAs(t, err, &persistErr)
	require.Equal(t, filepath.Join(missing, "detected_a.jpg"), persistErr.Path)
}

func TestPersister_DefaultDir(t *testing.T) {
	p := NewPersister(&fakeDetector{}, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, wd, p.OutputDir())
}
