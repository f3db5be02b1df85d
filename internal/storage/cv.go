// Package storage handles uploaded CV documents on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// allowedExtensions lists the accepted CV document types.
var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// ErrUnsupportedType is returned for files outside the allowed extensions.
var ErrUnsupportedType = fmt.Errorf("unsupported file type, allowed: pdf, doc, docx")

// ErrTooLarge is returned when an upload exceeds the configured size limit.
var ErrTooLarge = fmt.Errorf("file exceeds the maximum allowed size")

// CVStore saves CV files under a single directory and hands back the
// reference path stored on the resource.
type CVStore struct {
	dir      string
	maxBytes int64
}

// NewCVStore creates a CVStore writing to dir with the given size limit
// in megabytes. The directory is created on first save.
func NewCVStore(dir string, maxSizeMB int) *CVStore {
	return &CVStore{dir: dir, maxBytes: int64(maxSizeMB) * 1024 * 1024}
}

// Save writes the uploaded file for a resource and returns the reference
// path to store on the record. size is the declared upload size; reads are
// capped at the limit regardless.
func (s *CVStore) Save(resourceID, originalName string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}
	if size > s.maxBytes {
		return "", ErrTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d%s", resourceID, time.Now().UnixMilli(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", ErrTooLarge
	}

	return "/uploads/cvs/" + name, nil
}

// Remove deletes a previously saved CV by its reference path. Missing
// files are not an error.
func (s *CVStore) Remove(refPath string) error {
	name := filepath.Base(refPath)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
