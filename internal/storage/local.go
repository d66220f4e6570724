// Package storage is the file-storage collaborator: it persists uploaded
// images and hands back public URLs. The local-disk implementation serves
// the directory statically; swapping in an object store only means another
// implementation of Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage persists an uploaded file and returns its public URL.
type Storage interface {
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
}

// LocalStorage writes files under a directory served as static content.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

// Save stores the content under a random name with the given extension.
func (s *LocalStorage) Save(_ context.Context, ext string, r io.Reader) (string, error) {
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
