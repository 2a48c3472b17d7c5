package viewers

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("go_source", func(t *testing.T) {
		p := writeFile(t, "main.go", "package main\n")
		text, err := Render(p, Options{Style: "dracula"})
		assert.NoError(t, err)
		assert.Contains(t, text, "package")
		assert.Contains(t, text, "[#")
	})

	t.Run("json_is_indented", func(t *testing.T) {
		p := writeFile(t, "data.json", `{"a":1}`)
		text, err := Render(p, Options{})
		assert.NoError(t, err)
		assert.Contains(t, text, "\n")
	})

	t.Run("truncated", func(t *testing.T) {
		p := writeFile(t, "long.unknown-ext", strings.Repeat("x", 100))
		text, err := Render(p, Options{MaxBytes: 10})
		assert.NoError(t, err)
		assert.True(t, strings.Count(text, "x") <= 10)
	})

	t.Run("binary", func(t *testing.T) {
		p := writeFile(t, "blob.bin", "ab\x00cd")
		text, err := Render(p, Options{})
		assert.NoError(t, err)
		assert.Contains(t, text, "Binary file")
		assert.Contains(t, text, "5 bytes")
	})

	t.Run("image", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "pic.png")
		f, err := os.Create(p)
		assert.NoError(t, err)
		assert.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 2))))
		assert.NoError(t, f.Close())

		text, err := Render(p, Options{})
		assert.NoError(t, err)
		assert.Contains(t, text, "PNG")
		assert.Contains(t, text, "Width:[-]  3")
		assert.Contains(t, text, "Height:[-] 2")
	})

	t.Run("bad_image", func(t *testing.T) {
		p := writeFile(t, "fake.png", "not an image")
		_, err := Render(p, Options{})
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Render(filepath.Join(t.TempDir(), "missing.txt"), Options{})
		assert.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Render(t.TempDir(), Options{})
		assert.Error(t, err)
	})
}

func TestTextViewer_Show(t *testing.T) {
	t.Parallel()
	run := func(f func()) {
		f()
	}

	t.Run("success", func(t *testing.T) {
		p := writeFile(t, "notes.md", "# Title\n")
		v := NewTextViewer(Options{Style: "monokai"})
		done := make(chan struct{})
		v.Show(p, func(f func()) {
			run(f)
			close(done)
		})
		<-done
		assert.Contains(t, v.GetText(true), "Title")
		assert.Contains(t, v.GetTitle(), "notes.md")
	})

	t.Run("error", func(t *testing.T) {
		v := NewTextViewer(Options{})
		done := make(chan struct{})
		v.Show(filepath.Join(t.TempDir(), "missing.txt"), func(f func()) {
			run(f)
			close(done)
		})
		<-done
		assert.Contains(t, v.GetText(true), "failed to read")
	})

	t.Run("title_is_escaped", func(t *testing.T) {
		p := writeFile(t, "[red]x.txt", "plain")
		v := NewTextViewer(Options{})
		done := make(chan struct{})
		v.Show(p, func(f func()) {
			run(f)
			close(done)
		})
		<-done
		assert.Contains(t, v.GetTitle(), "[red[]x.txt")
	})
}

func TestTextViewer_Show_LatestFileWins(t *testing.T) {
	t.Parallel()
	first := writeFile(t, "first.txt", "first content")
	second := writeFile(t, "second.txt", "second content")
	v := NewTextViewer(Options{})
	queued := make(chan func(), 2)
	queue := func(f func()) {
		queued <- f
	}
	v.Show(first, queue)
	v.Show(second, queue)
	a, b := <-queued, <-queued

	a()
	b()
	assert.Contains(t, v.GetText(true), "second content")
	b()
	a()
	assert.Contains(t, v.GetText(true), "second content")
	assert.Contains(t, v.GetTitle(), "second.txt")
}
