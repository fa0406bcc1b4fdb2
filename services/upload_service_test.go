package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadService(t *testing.T) *UploadService {
	t.Helper()
	return &UploadService{dir: t.TempDir(), publicDir: "/uploads/avatars"}
}

// multipartFile builds a real FileHeader by round-tripping a multipart form
// through an http request.
func multipartFile(t *testing.T, filename string, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/1/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fileHeader, err := req.FormFile("avatar")
	require.NoError(t, err)
	return fileHeader
}

func TestSaveAvatarWritesFile(t *testing.T) {
	service := newUploadService(t)
	file := multipartFile(t, "me.png", "image/png", []byte("fake image bytes"))

	avatarURL, err := service.SaveAvatar(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(avatarURL, "/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(avatarURL, ".png"))

	entries, err := os.ReadDir(service.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	written, err := os.ReadFile(filepath.Join(service.dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), written)
}

func TestSaveAvatarRandomizesFilename(t *testing.T) {
	service := newUploadService(t)

	first, err := service.SaveAvatar(multipartFile(t, "me.png", "image/png", []byte("a")))
	require.NoError(t, err)
	second, err := service.SaveAvatar(multipartFile(t, "me.png", "image/png", []byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSaveAvatarRejectsNonImageBeforeWrite(t *testing.T) {
	service := newUploadService(t)
	file := multipartFile(t, "notes.txt", "text/plain", []byte("not an image"))

	_, err := service.SaveAvatar(file)
	assert.ErrorIs(t, err, ErrInvalidFileType)

	entries, err := os.ReadDir(service.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveAvatarNilFile(t *testing.T) {
	service := newUploadService(t)

	_, err := service.SaveAvatar(nil)
	assert.ErrorIs(t, err, ErrFileRequired)
}
