package cloudinary

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amestri/cineshelf/pkg/errors"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func TestValidateImageFile(t *testing.T) {
	require.NoError(t, ValidateImageFile(fileHeader("poster.png", "image/png", 1024)))
	require.NoError(t, ValidateImageFile(fileHeader("POSTER.JPG", "image/jpeg", 1024)))
}

func TestValidateImageFileRejectsOversized(t *testing.T) {
	err := ValidateImageFile(fileHeader("poster.png", "image/png", MaxImageSize+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size")
}

func TestValidateImageFileRejectsUnknownType(t *testing.T) {
	require.Error(t, ValidateImageFile(fileHeader("malware.exe", "application/octet-stream", 1024)))
	require.Error(t, ValidateImageFile(fileHeader("notes.txt", "text/plain", 1024)))
}

func TestMimeExtensionPrefersContentType(t *testing.T) {
	ext := mimeExtension(fileHeader("poster.bin", "image/png", 1024))
	assert.Equal(t, ".png", ext)
}

func TestMimeExtensionFallsBackToFilename(t *testing.T) {
	ext := mimeExtension(fileHeader("poster.JPG", "", 1024))
	assert.Equal(t, ".jpg", ext)
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	_, err := NewService("", "key", "secret", "folder")
	require.Error(t, err)
}

func TestNilServiceUploadMapsToUpstreamError(t *testing.T) {
	var s *Service

	_, err := s.UploadImageFile(context.Background(), fileHeader("poster.png", "image/png", 1024))
	require.ErrorIs(t, err, errors.ErrUpstream)

	require.ErrorIs(t, s.Delete(context.Background(), "some-id"), errors.ErrUpstream)
}
