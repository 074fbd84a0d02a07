// internal/service/upload/upload.go
package upload

import (
	"errors"
	"fmt"
	"io"

	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/storage"

	"go.uber.org/zap"
)

// MaxFiles caps one multi-file upload.
const MaxFiles = 10

type Store interface {
	Save(kind storage.Kind, originalName string, r io.Reader) (*storage.Stored, error)
	Delete(kind storage.Kind, filename string) error
}

// Origin is the scheme and host absolute URLs are built from.
type Origin struct {
	Scheme string
	Host   string
}

// File is the upload as reported back to the client.
type File struct {
	*storage.Stored
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Upload is one incoming file part.
type Upload struct {
	Name   string
	Reader io.Reader
}

type UploadService struct {
	store  Store
	logger *zap.Logger
}

func NewUploadService(store Store, logger *zap.Logger) *UploadService {
	return &UploadService{
		store:  store,
		logger: logger,
	}
}

func (s *UploadService) Save(kindParam string, u Upload, origin Origin) (*File, error) {
	kind, err := storage.ParseKind(kindParam)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Save(kind, u.Name, u.Reader)
	if err != nil {
		s.logger.Warn("upload rejected",
			zap.String("type", string(kind)),
			zap.String("name", u.Name),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("file uploaded",
		zap.String("type", string(kind)),
		zap.String("filename", stored.Filename),
		zap.Int64("size", stored.Size),
	)
	return toFile(stored, origin), nil
}

// SaveMany stores every file or none: when one file fails, the files already
// written for this request are removed again.
func (s *UploadService) SaveMany(kindParam string, uploads []Upload, origin Origin) ([]*File, error) {
	kind, err := storage.ParseKind(kindParam)
	if err != nil {
		return nil, err
	}
	switch {
	case len(uploads) == 0:
		return nil, xerrors.NewValidationError("images", "at least one file is required")
	case len(uploads) > MaxFiles:
		return nil, xerrors.NewValidationError("images", fmt.Sprintf("must contain at most %d files", MaxFiles))
	}

	out := make([]*File, 0, len(uploads))
	for _, u := range uploads {
		stored, err := s.store.Save(kind, u.Name, u.Reader)
		if err != nil {
			s.rollback(kind, out)
			s.logger.Warn("multi upload rejected",
				zap.String("type", string(kind)),
				zap.String("name", u.Name),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%s: %w", u.Name, err)
		}
		out = append(out, toFile(stored, origin))
	}

	s.logger.Info("files uploaded", zap.String("type", string(kind)), zap.Int("count", len(out)))
	return out, nil
}

func (s *UploadService) Delete(kindParam, filename string) error {
	kind, err := storage.ParseKind(kindParam)
	if err != nil {
		return err
	}
	if err := s.store.Delete(kind, filename); err != nil {
		return err
	}
	s.logger.Info("file deleted", zap.String("type", string(kind)), zap.String("filename", filename))
	return nil
}

func (s *UploadService) rollback(kind storage.Kind, files []*File) {
	for _, f := range files {
		if err := s.store.Delete(kind, f.Filename); err != nil && !errors.Is(err, xerrors.ErrNotFound) {
			s.logger.Warn("failed to remove partial upload", zap.String("filename", f.Filename), zap.Error(err))
		}
	}
}

func toFile(stored *storage.Stored, origin Origin) *File {
	f := &File{
		Stored: stored,
		URL:    storage.URL(origin.Scheme, origin.Host, stored.Path),
	}
	if stored.ThumbnailPath != "" {
		f.ThumbnailURL = storage.URL(origin.Scheme, origin.Host, stored.ThumbnailPath)
	}
	return f
}
