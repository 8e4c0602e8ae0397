package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageService persists uploaded room images under a flat directory and
// serves as the best-effort cleanup path when a room goes away.
type ImageService struct {
	Dir string
}

func NewImageService(dir string) *ImageService {
	return &ImageService{Dir: dir}
}

// Save writes the uploaded file into the image directory under a
// collision-free name and returns the stored filename. The UUID prefix
// keeps two uploads of the same original name from clobbering each other.
func (s *ImageService) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(file.Filename))
	fullpath := filepath.Join(s.Dir, filename)

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write image file: %w", err)
	}

	return filename, nil
}

// Remove deletes a stored image. A file that is already gone is not an
// error; the row is the source of truth and the blob is secondary.
func (s *ImageService) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filename))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
