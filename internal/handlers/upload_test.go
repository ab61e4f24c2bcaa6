package handlers

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestValidateImageUpload(t *testing.T) {
	const maxSize = 5 * 1024 * 1024

	tests := []struct {
		name string
		file *multipart.FileHeader
		want string
	}{
		{"jpeg ok", fileHeader("a.jpg", "image/jpeg", 1024), ""},
		{"png ok", fileHeader("a.png", "image/png", 1024), ""},
		{"webp ok", fileHeader("a.webp", "image/webp", 1024), ""},
		{"gif rejected", fileHeader("a.gif", "image/gif", 1024), "Only image files (JPEG, PNG, WebP) are allowed"},
		{"pdf rejected", fileHeader("a.pdf", "application/pdf", 1024), "Only image files (JPEG, PNG, WebP) are allowed"},
		{"too large", fileHeader("a.jpg", "image/jpeg", maxSize+1), "File too large"},
		{"exactly max", fileHeader("a.jpg", "image/jpeg", maxSize), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateImageUpload(tt.file, maxSize))
		})
	}
}

func TestUploadFilename(t *testing.T) {
	f := fileHeader("foto udel.PNG", "image/png", 1024)

	name := UploadFilename(f)

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	// nama asli tidak boleh bocor ke nama file tersimpan
	assert.NotContains(t, name, "udel")
	assert.NotContains(t, name, " ")

	// dua upload tidak boleh tabrakan
	assert.NotEqual(t, name, UploadFilename(f))
}
