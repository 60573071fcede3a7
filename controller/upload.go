package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var uploadDir = "./uploads"

// SetUploadDir points image storage at the configured directory. Called
// once at startup.
func SetUploadDir(dir string) {
	if dir != "" {
		uploadDir = dir
	}
}

var errNoFile = errors.New("no file in request")

// saveUploadedImage validates and stores an optional multipart image field.
// Returns the stored filename, or errNoFile when the field is absent.
func saveUploadedImage(c *gin.Context, field, prefix string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", errNoFile
	}

	if file.Size > 5<<20 {
		return "", errors.New("image size exceeds 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	if !allowedExts[ext] {
		return "", errors.New("invalid file type, only JPG/JPEG/PNG allowed")
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}

	newFileName := fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, newFileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}

	return newFileName, nil
}

// removeStoredImage deletes a previously stored file, ignoring files that
// are already gone.
func removeStoredImage(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(uploadDir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
