// Package upload stores avatar images on the local filesystem under a single
// flat directory served as /upload/.
package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"store/config"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultDir     = "./upload"
	defaultMaxSize = 10 << 20 // 10 MiB

	webPathPrefix = "/upload/"
)

// The extensions the legacy client is allowed to upload.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".gif":  {},
}

// localStore implements the service.AvatarStore interface.
type localStore struct {
	dir     string
	maxSize int64
}

// NewLocalStore is the constructor for localStore. It creates the storage
// directory up front so the first upload does not race directory creation.
func NewLocalStore(cfg *config.Config) (service.AvatarStore, error) {
	dir := defaultDir
	maxSize := int64(defaultMaxSize)
	if cfg != nil && cfg.Upload != nil {
		if cfg.Upload.Dir != "" {
			dir = cfg.Upload.Dir
		}
		if cfg.Upload.MaxSize > 0 {
			maxSize = cfg.Upload.MaxSize
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	return &localStore{
		dir:     dir,
		maxSize: maxSize,
	}, nil
}

// Save validates and writes one uploaded file, naming it with a fresh UUID
// plus the original extension so client filenames never collide.
func (s *localStore) Save(filename string, size int64, content io.Reader) (string, error) {
	if size <= 0 {
		return "", domainerrors.ErrFileEmpty
	}
	if size > s.maxSize {
		return "", domainerrors.ErrFileSize
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domainerrors.ErrFileType.WithDetails(ext)
	}

	stored := uuid.New().String() + ext
	target, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", domainerrors.NewFileIOError(err, "failed to create avatar file")
	}
	defer target.Close()

	written, err := io.Copy(target, io.LimitReader(content, s.maxSize+1))
	if err != nil {
		return "", domainerrors.NewFileIOError(err, "failed to write avatar file")
	}
	if written == 0 {
		return "", domainerrors.ErrFileEmpty
	}
	if written > s.maxSize {
		// The declared size lied; drop the partial file.
		os.Remove(filepath.Join(s.dir, stored))

		return "", domainerrors.ErrFileSize
	}

	return webPathPrefix + stored, nil
}
