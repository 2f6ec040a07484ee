package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/config"
	"github.com/katalvlaran/hamtour/pipeline"
)

// gallery writes a few synthetic images plus one undecodable file and returns the root.
func gallery(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "more"), 0o755))

	for i, name := range []string{"a.png", "b.png", "more/c.png", "more/d.bmp", "e.jpg"} {
		img := image.NewNRGBA(image.Rect(0, 0, 48, 48))
		for y := 0; y < 48; y++ {
			for x := 0; x < 48; x++ {
				v := uint8((x*(i+1) + y*(5-i)) * 2)
				img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xFF})
			}
		}
		require.NoError(t, imaging.Save(img, filepath.Join(root, name)))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.png"), []byte("nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip"), 0o644))

	return root
}

func runnerOptions(t *testing.T, root string) pipeline.Options {
	t.Helper()
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "out")
	cfg.TimeLimit = config.Duration{Duration: time.Second}
	cfg.MaxIters = 10_000
	cfg.Concurrency = 2

	return pipeline.Options{Roots: []string{root}, Config: cfg}
}

func TestRunner_Execute(t *testing.T) {
	root := gallery(t)
	var buf bytes.Buffer
	r := pipeline.NewRunner(log.New(&buf))
	opts := runnerOptions(t, root)

	res, err := r.Execute(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Stats.Files)
	assert.Len(t, res.Paths, 5)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, []string{filepath.Join(root, "broken.png")}, res.Skipped)
	for i, it := range res.Items {
		assert.Equal(t, i, it.Index)
	}
	assert.ElementsMatch(t, res.Paths, res.Ordered)
	assert.Equal(t, 5, res.Links)

	entries, err := os.ReadDir(opts.Config.Output)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
	for k, p := range res.Ordered {
		target, err := os.Readlink(filepath.Join(opts.Config.Output, strconv.Itoa(k)+filepath.Ext(p)))
		require.NoError(t, err)
		abs, _ := filepath.Abs(p)
		assert.Equal(t, abs, target)
	}

	out := buf.String()
	assert.Contains(t, out, "discovered images")
	assert.Contains(t, out, "skipping file")
	assert.Contains(t, out, "linked images")

	// A second run into the same directory needs overwrite.
	_, err = r.Execute(context.Background(), opts)
	assert.Error(t, err)
	opts.Config.Overwrite = true
	_, err = r.Execute(context.Background(), opts)
	require.NoError(t, err)
}

// cancelOn is a log sink that cancels the run once needle has been logged.
type cancelOn struct {
	needle []byte
	cancel context.CancelFunc
	buf    bytes.Buffer
}

func (w *cancelOn) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	if bytes.Contains(w.buf.Bytes(), w.needle) {
		w.cancel()
	}

	return n, err
}

func TestRunner_CancelledAfterHashing(t *testing.T) {
	root := gallery(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &cancelOn{needle: []byte("fingerprinted images"), cancel: cancel}
	opts := runnerOptions(t, root)
	opts.Config.MaxIters = 1_000_000_000
	opts.Config.TimeLimit = config.Duration{Duration: time.Minute}

	start := time.Now()
	res, err := pipeline.NewRunner(log.New(w)).Execute(ctx, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), err.Error())
	assert.Nil(t, res)
	assert.Less(t, time.Since(start), 30*time.Second)
	assert.NoDirExists(t, opts.Config.Output)
	assert.NotContains(t, w.buf.String(), "linked images")
}

func TestRunner_DryRunAndPrim(t *testing.T) {
	root := gallery(t)
	opts := runnerOptions(t, root)
	opts.DryRun = true
	opts.Config.MST = "prim"
	opts.Config.Hash = "dhash"
	opts.Config.Refine = "2opt"

	res, err := pipeline.NewRunner(log.New(&bytes.Buffer{})).Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, res.Ordered, 5)
	assert.Zero(t, res.Links)
	assert.NoDirExists(t, opts.Config.Output)
}

func TestRunner_Errors(t *testing.T) {
	r := pipeline.NewRunner(nil)
	root := gallery(t)

	_, err := r.Execute(context.Background(), pipeline.Options{Config: config.Default()})
	assert.ErrorIs(t, err, pipeline.ErrNoRoots)

	opts := runnerOptions(t, root)
	opts.Config.Hash = "phash"
	_, err = r.Execute(context.Background(), opts)
	assert.ErrorIs(t, err, config.ErrInvalid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Execute(ctx, runnerOptions(t, root))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_EmptyTree(t *testing.T) {
	opts := runnerOptions(t, t.TempDir())
	res, err := pipeline.NewRunner(log.New(&bytes.Buffer{})).Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, res.Ordered)
	assert.Zero(t, res.Links)
	assert.DirExists(t, opts.Config.Output)
}
