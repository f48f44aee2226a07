package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultClassCatalog(t *testing.T) {
	c := DefaultClassCatalog()
	require.Equal(t, 4, c.Len())
	require.Equal(t, "pothole", c.Label(0))
	require.Equal(t, "garbage", c.Label(3))
}

func TestClassCatalog_UnknownID(t *testing.T) {
	c := DefaultClassCatalog()
	require.Equal(t, "class_7", c.Label(7))
	require.Equal(t, "class_-1", c.Label(-1))
}

func TestNewClassCatalog_CopiesInput(t *testing.T) {
	src := map[int]string{0: "cat"}
	c := NewClassCatalog(src)
	src[0] = "dog"
	src[1] = "bird"

	require.Equal(t, "cat", c.Label(0))
	require.Equal(t, "class_1", c.Label(1))
}
