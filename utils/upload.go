package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	apperrors "go-storefront/errors"

	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadDir returns the root directory for stored files.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}

	return dir
}

// SaveUploadedFile stores an uploaded image from the named multipart
// field under <UPLOAD_DIR>/<subdir>/ with a unique filename and
// returns the relative path clients use ("/uploads/<subdir>/<name>").
// A missing field is not an error: it returns "" so the caller can
// fall back to an image URL in the request body.
func SaveUploadedFile(r *http.Request, field, subdir string, maxSize int64) (string, error) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return "", apperrors.InvalidArgument("Failed to parse multipart form").WithError(err)
	}

	file, handler, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.InvalidArgument("Failed to read uploaded file").WithError(err)
	}
	defer file.Close()

	if handler.Size > maxSize {
		return "", apperrors.InvalidArgument(fmt.Sprintf("File too large. Maximum size is %dMB", maxSize>>20))
	}

	ext := strings.ToLower(filepath.Ext(handler.Filename))
	if !imageExtensions[ext] {
		return "", apperrors.InvalidArgument("Only image files are allowed")
	}

	uploadPath := filepath.Join(UploadDir(), subdir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", apperrors.Internal("Failed to create upload directory").WithError(err)
	}

	filename := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(uploadPath, filename))
	if err != nil {
		return "", apperrors.Internal("Failed to create file on server").WithError(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", apperrors.Internal("Failed to save file").WithError(err)
	}

	return "/uploads/" + subdir + "/" + filename, nil
}
