package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"todo-api/constants"
)

var (
	ErrFileRequired    = errors.New("file is required")
	ErrInvalidFileType = errors.New("only image files are allowed")
)

type IUploadService interface {
	SaveAvatar(file *multipart.FileHeader) (string, error)
}

// UploadService stores uploaded avatars under a fixed directory and returns
// the public path they are served from.
type UploadService struct {
	dir       string
	publicDir string
}

func NewUploadService() IUploadService {
	return &UploadService{dir: constants.AvatarDir, publicDir: constants.AvatarPublicDir}
}

// SaveAvatar validates the declared media type before touching the
// filesystem. Filenames are random so concurrent uploads cannot collide.
func (s *UploadService) SaveAvatar(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrFileRequired
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrInvalidFileType
	}

	filename, err := generateFilename(file.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(s.publicDir, filename), nil
}

// generateFilename keeps the original extension on a random hex name.
func generateFilename(original string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + filepath.Ext(original), nil
}
