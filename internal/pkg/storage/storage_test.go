package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedName = regexp.MustCompile(`^[0-9a-z]{26}\.png$`)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(Config{Root: t.TempDir(), PublicPath: "/uploads", MaxBytes: 1 << 20})
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	_ = filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			n++
		}
		return nil
	})
	return n
}

func TestSaveImage(t *testing.T) {
	s := newStore(t)

	out, err := s.Save(KindServices, "Henna Design.PNG", bytes.NewReader(pngBytes(t, 10, 10)))
	require.NoError(t, err)

	assert.Regexp(t, storedName, out.Filename)
	assert.Equal(t, "Henna Design.PNG", out.OriginalName)
	assert.Equal(t, "image/png", out.MimeType)
	assert.Equal(t, "/uploads/services/"+out.Filename, out.Path)
	assert.Empty(t, out.ThumbnailPath)
	assert.FileExists(t, filepath.Join(s.Root(), "services", out.Filename))
}

func TestSaveGalleryWritesThumbnail(t *testing.T) {
	s := newStore(t)

	out, err := s.Save(KindGallery, "bride.png", bytes.NewReader(pngBytes(t, 900, 600)))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/gallery/thumbs/"+out.Filename, out.ThumbnailPath)
	f, err := os.Open(filepath.Join(s.Root(), "gallery", "thumbs", out.Filename))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
}

func TestSaveRejectsNonImageBeforeWriting(t *testing.T) {
	cases := map[string]struct {
		name string
		body []byte
	}{
		"text extension":      {"notes.txt", []byte("hello")},
		"text with png name":  {"fake.png", []byte("just some text, not an image")},
		"jpeg named as png":   {"photo.png", append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)},
		"executable as image": {"run.gif", []byte("#!/bin/sh\necho hi\n")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			_, err := s.Save(KindGallery, tc.name, bytes.NewReader(tc.body))
			assert.ErrorIs(t, err, xerrors.ErrUnsupportedMediaType)
			assert.Equal(t, 0, countFiles(t, s.Root()))
		})
	}
}

func TestSaveRejectsOversize(t *testing.T) {
	s := NewFileStore(Config{Root: t.TempDir(), MaxBytes: 64})
	body := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 200)...)
	_, err := s.Save(KindGeneral, "big.png", bytes.NewReader(body))
	assert.ErrorIs(t, err, xerrors.ErrFileTooLarge)
	assert.Equal(t, 0, countFiles(t, s.Root()))
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	out, err := s.Save(KindGallery, "a.png", bytes.NewReader(pngBytes(t, 20, 20)))
	require.NoError(t, err)

	_, err = s.Stat(KindGallery, out.Filename)
	require.NoError(t, err)

	require.NoError(t, s.Delete(KindGallery, out.Filename))
	assert.Equal(t, 0, countFiles(t, s.Root()))

	err = s.Delete(KindGallery, out.Filename)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestDeleteRejectsTraversal(t *testing.T) {
	s := newStore(t)
	outside := filepath.Join(filepath.Dir(s.Root()), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	for _, name := range []string{"../keep.txt", "..", "a/b.png", `..\keep.txt`, ""} {
		err := s.Delete(KindGeneral, name)
		assert.ErrorIs(t, err, xerrors.ErrInvalidInput, name)
	}
	assert.FileExists(t, outside)
}

func TestParseRefAndDeleteByRef(t *testing.T) {
	s := newStore(t)
	out, err := s.Save(KindServices, "s.png", bytes.NewReader(pngBytes(t, 5, 5)))
	require.NoError(t, err)

	kind, name, ok := s.ParseRef("https://example.com" + out.Path)
	require.True(t, ok)
	assert.Equal(t, KindServices, kind)
	assert.Equal(t, out.Filename, name)

	_, _, ok = s.ParseRef("https://cdn.example.com/other/services/x.png")
	assert.False(t, ok)
	_, _, ok = s.ParseRef("/uploads/secrets/x.png")
	assert.False(t, ok)

	require.NoError(t, s.DeleteByRef(out.Path))
	assert.ErrorIs(t, s.DeleteByRef(out.Path), xerrors.ErrNotFound)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://henna.example/uploads/gallery/x.png", URL("https", "henna.example", "/uploads/gallery/x.png"))
	assert.Equal(t, "", URL("http", "h", ""))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("blogs")
	require.NoError(t, err)
	assert.Equal(t, KindBlogs, k)

	_, err = ParseKind("secrets")
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.True(t, strings.Contains(err.Error(), "type"))
}
