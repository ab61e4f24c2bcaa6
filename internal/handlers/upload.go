package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/URTS404/UMKM-AWP-UAS/internal/config"
)

// allowedImageTypes is the MIME allow-list for gallery uploads
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

const thumbnailWidth = 400

// ValidateImageUpload checks MIME type and size before anything is saved.
// Returns a client-facing message when the file is rejected.
func ValidateImageUpload(file *multipart.FileHeader, maxSize int64) string {
	contentType := file.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "Only image files (JPEG, PNG, WebP) are allowed"
	}
	if file.Size > maxSize {
		return "File too large"
	}
	return ""
}

// UploadFilename builds a collision-free name preserving the extension
// that matches the declared content type.
func UploadFilename(file *multipart.FileHeader) string {
	ext := allowedImageTypes[file.Header.Get("Content-Type")]
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(file.Filename))
	}
	return fmt.Sprintf("image-%s%s", uuid.New().String(), ext)
}

// SaveUploadedImage stores the file under <dir>/<folder>/ and writes a
// resized thumbnail next to it (thumb_<name>, always jpeg). Thumbnail
// failure is not fatal: webp misalnya tidak bisa di-decode stdlib.
func SaveUploadedImage(file *multipart.FileHeader, dir, folder string) (string, error) {
	targetDir := filepath.Join(dir, folder)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", err
	}

	filename := UploadFilename(file)
	savePath := filepath.Join(targetDir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	if _, err := dst.ReadFrom(src); err != nil {
		dst.Close()
		os.Remove(savePath)
		return "", err
	}
	dst.Close()

	makeThumbnail(savePath, filepath.Join(targetDir, "thumb_"+filename))

	return filename, nil
}

// makeThumbnail decodes the saved image and writes a width-bounded copy
func makeThumbnail(srcPath, dstPath string) {
	f, err := os.Open(srcPath)
	if err != nil {
		return
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(srcPath)) {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".png":
		img, err = png.Decode(f)
	default:
		return
	}
	if err != nil {
		return
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	out, err := os.Create(dstPath)
	if err != nil {
		return
	}
	defer out.Close()
	jpeg.Encode(out, thumb, &jpeg.Options{Quality: 80})
}

// RemoveUploadedImage deletes an image and its thumbnail, best effort
func RemoveUploadedImage(cfg config.UploadConfig, imageURL string) {
	// imageURL berbentuk "/uploads/unboxing/<file>"; path fisiknya relatif
	// terhadap cfg.Dir.
	rel := strings.TrimPrefix(imageURL, "/uploads/")
	if rel == imageURL || rel == "" {
		return
	}
	full := filepath.Join(cfg.Dir, rel)
	os.Remove(full)
	os.Remove(filepath.Join(filepath.Dir(full), "thumb_"+filepath.Base(full)))
}
