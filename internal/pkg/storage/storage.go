// Package storage keeps uploaded images on the local filesystem, partitioned
// into one directory per upload kind.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	_ "golang.org/x/image/webp"
)

// Kind is the caller-chosen upload category; it names the directory.
type Kind string

const (
	KindGallery  Kind = "gallery"
	KindServices Kind = "services"
	KindBlogs    Kind = "blogs"
	KindPages    Kind = "pages"
	KindGeneral  Kind = "general"
)

var kinds = []Kind{KindGallery, KindServices, KindBlogs, KindPages, KindGeneral}

// ParseKind validates an upload category from the URL.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", xerrors.NewValidationError("type", "must be one of: gallery services blogs pages general")
}

const thumbDir = "thumbs"

// extension -> the only mime type accepted for it
var allowed = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type Config struct {
	Root       string
	PublicPath string
	MaxBytes   int64
	ThumbWidth int
}

// Stored describes a file written by Save.
type Stored struct {
	Kind          Kind   `json:"-"`
	Filename      string `json:"filename"`
	OriginalName  string `json:"originalName"`
	Path          string `json:"path"`
	Size          int64  `json:"size"`
	MimeType      string `json:"mimetype"`
	ThumbnailPath string `json:"-"`
}

type FileStore struct {
	cfg Config
}

func NewFileStore(cfg Config) *FileStore {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 10 << 20
	}
	if cfg.ThumbWidth <= 0 {
		cfg.ThumbWidth = 400
	}
	if cfg.PublicPath == "" {
		cfg.PublicPath = "/uploads"
	}
	cfg.PublicPath = "/" + strings.Trim(cfg.PublicPath, "/")
	return &FileStore{cfg: cfg}
}

func (s *FileStore) Root() string       { return s.cfg.Root }
func (s *FileStore) PublicPath() string { return s.cfg.PublicPath }
func (s *FileStore) MaxBytes() int64    { return s.cfg.MaxBytes }

// Save checks the declared extension and the sniffed content against the
// image allow-list, then writes the file under a fresh ULID name. Nothing is
// written when a check fails. Gallery images also get a thumbnail.
func (s *FileStore) Save(kind Kind, originalName string, r io.Reader) (*Stored, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	want, ok := allowed[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an allowed image type", xerrors.ErrUnsupportedMediaType, ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", xerrors.ErrFileTooLarge, s.cfg.MaxBytes)
	}

	mt := mimetype.Detect(data)
	if !mt.Is(want) {
		return nil, fmt.Errorf("%w: content is %s, expected %s", xerrors.ErrUnsupportedMediaType, mt.String(), want)
	}

	dir := filepath.Join(s.cfg.Root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := strings.ToLower(ulid.Make().String()) + ext
	dst := filepath.Join(dir, name)
	if err := writeFile(dir, dst, data); err != nil {
		return nil, err
	}

	out := &Stored{
		Kind:         kind,
		Filename:     name,
		OriginalName: filepath.Base(originalName),
		Path:         s.PublicURLPath(kind, name),
		Size:         int64(len(data)),
		MimeType:     want,
	}

	if kind == KindGallery {
		thumb, err := s.writeThumbnail(dir, name, data)
		if err != nil {
			_ = os.Remove(dst)
			return nil, err
		}
		out.ThumbnailPath = s.PublicURLPath(kind, path.Join(thumbDir, thumb))
	}

	return out, nil
}

func writeFile(dir, dst string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("store upload: %w", err)
	}
	return nil
}

// thumbName maps a stored name to its thumbnail name. imaging cannot encode
// webp, so those thumbnails are png.
func thumbName(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return name
}

func (s *FileStore) writeThumbnail(dir, name string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: cannot decode image: %v", xerrors.ErrUnsupportedMediaType, err)
	}
	if img.Bounds().Dx() > s.cfg.ThumbWidth {
		img = imaging.Resize(img, s.cfg.ThumbWidth, 0, imaging.Lanczos)
	}

	tdir := filepath.Join(dir, thumbDir)
	if err := os.MkdirAll(tdir, 0o755); err != nil {
		return "", fmt.Errorf("create thumbnail dir: %w", err)
	}
	tname := thumbName(name)
	if err := imaging.Save(img, filepath.Join(tdir, tname)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return tname, nil
}

// cleanName rejects anything that is not a bare file name.
func cleanName(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) || filepath.Base(filename) != filename {
		return "", xerrors.NewValidationError("filename", "must be a plain file name")
	}
	return filename, nil
}

// Stat returns the stored size and mime type of kind/filename.
func (s *FileStore) Stat(kind Kind, filename string) (*Stored, error) {
	name, err := cleanName(filename)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(filepath.Join(s.cfg.Root, string(kind), name))
	if errors.Is(err, os.ErrNotExist) || (err == nil && !fi.Mode().IsRegular()) {
		return nil, fmt.Errorf("file %s/%s: %w", kind, name, xerrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("stat upload: %w", err)
	}

	out := &Stored{
		Kind:     kind,
		Filename: name,
		Path:     s.PublicURLPath(kind, name),
		Size:     fi.Size(),
		MimeType: allowed[strings.ToLower(filepath.Ext(name))],
	}
	tname := thumbName(name)
	if _, err := os.Stat(filepath.Join(s.cfg.Root, string(kind), thumbDir, tname)); err == nil {
		out.ThumbnailPath = s.PublicURLPath(kind, path.Join(thumbDir, tname))
	}
	return out, nil
}

// Delete removes kind/filename and its thumbnail. A missing file is
// ErrNotFound.
func (s *FileStore) Delete(kind Kind, filename string) error {
	name, err := cleanName(filename)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.cfg.Root, string(kind), name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file %s/%s: %w", kind, name, xerrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}

	terr := os.Remove(filepath.Join(s.cfg.Root, string(kind), thumbDir, thumbName(name)))
	if terr != nil && !errors.Is(terr, os.ErrNotExist) {
		return fmt.Errorf("delete thumbnail: %w", terr)
	}
	return nil
}

// DeleteByRef removes the file a stored reference points at. The reference
// may be a public path ("/uploads/services/x.png") or an absolute URL built
// by URL. References outside the upload tree are ErrNotFound.
func (s *FileStore) DeleteByRef(ref string) error {
	kind, name, ok := s.ParseRef(ref)
	if !ok {
		return fmt.Errorf("reference %q: %w", ref, xerrors.ErrNotFound)
	}
	return s.Delete(kind, name)
}

// ParseRef splits a public path or URL into kind and file name.
func (s *FileStore) ParseRef(ref string) (Kind, string, bool) {
	if ref == "" {
		return "", "", false
	}
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}
	rest, ok := strings.CutPrefix(p, s.cfg.PublicPath+"/")
	if !ok {
		return "", "", false
	}
	k, name, ok := strings.Cut(rest, "/")
	if !ok {
		return "", "", false
	}
	kind, err := ParseKind(k)
	if err != nil {
		return "", "", false
	}
	if _, err := cleanName(name); err != nil {
		return "", "", false
	}
	return kind, name, true
}

// PublicURLPath is the path the static handler serves kind/name under.
func (s *FileStore) PublicURLPath(kind Kind, name string) string {
	return path.Join(s.cfg.PublicPath, string(kind), name)
}

// URL builds an absolute URL for a public path from the request's scheme and
// host.
func URL(scheme, host, publicPath string) string {
	if publicPath == "" {
		return ""
	}
	u := url.URL{Scheme: scheme, Host: host, Path: publicPath}
	return u.String()
}
