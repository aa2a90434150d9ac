package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juruen/tegaki/character"
	"github.com/juruen/tegaki/stream"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, character.DefaultNormalizeOptions(), cfg.NormalizeOptions())
	assert.Equal(t, stream.Options{Compression: stream.None, Level: 9}, cfg.StreamOptions())

	w, err := cfg.NewWriting()
	require.NoError(t, err)
	assert.Equal(t, 1000, w.Width())
}

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
canvas:
  width: 320
normalize:
  proportion: 0.5
stream:
  compression: bz2
  workers: 4
`))
	require.NoError(t, err)
	assert.Equal(t, Canvas{Width: 320, Height: 1000}, cfg.Canvas)
	assert.Equal(t, character.NormalizeOptions{Proportion: 0.5, ProportionMax: 5}, cfg.NormalizeOptions())
	assert.Equal(t, stream.Options{Compression: stream.Bzip2, Level: 9}, cfg.StreamOptions())
	assert.EqualValues(t, 4, cfg.Stream.Workers)
}

func TestLoadInvalid(t *testing.T) {
	docs := []string{
		"canvas: {width: 0}",
		"normalize: {proportion: 1.5}",
		"normalize: {proportion_max: -1}",
		"stream: {compression: lzma}",
		"stream: {level: 12}",
		"stream: {workers: 0}",
		"unknown_key: 1",
		"canvas: [",
	}
	for _, doc := range docs {
		_, err := Load(strings.NewReader(doc))
		assert.Error(t, err, doc)
	}

	_, err := Load(strings.NewReader("canvas: {height: -3}"))
	assert.ErrorIs(t, err, character.ErrInvalidValue)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tegaki.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stream:\n  compression: gzip\n  level: 3\n"), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stream.Options{Compression: stream.Gzip, Level: 3}, cfg.StreamOptions())

	_, err = LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestNormalizeWithConfig(t *testing.T) {
	cfg, err := Load(strings.NewReader("canvas: {width: 200, height: 100}\nnormalize: {proportion: 0.5, proportion_max: 20}\n"))
	require.NoError(t, err)

	w, err := cfg.NewWriting()
	require.NoError(t, err)
	w.MoveTo(0, 0)
	require.NoError(t, w.LineTo(10, 10))

	n := w.NormalizeWith(cfg.NormalizeOptions())
	assert.Equal(t, character.Box{X: 50, Y: 25, Width: 100, Height: 50}, n.BoundingBox())
}

func TestReadAll(t *testing.T) {
	cfg, err := Load(strings.NewReader("stream: {compression: gzip, level: 1, workers: 3}"))
	require.NoError(t, err)

	dir := t.TempDir()
	var paths []string
	for i := 0; i < 5; i++ {
		c := character.New()
		c.SetLabel(fmt.Sprint(i))
		c.Writing().MoveTo(i, i)
		path := filepath.Join(dir, fmt.Sprintf("%d.xml.gz", i))
		require.NoError(t, stream.WriteFile(path, c, cfg.StreamOptions()))
		paths = append(paths, path)
	}

	chars, err := cfg.ReadAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, chars, 5)
	for i, c := range chars {
		label, _ := c.Label()
		assert.Equal(t, fmt.Sprint(i), label)
	}
}
