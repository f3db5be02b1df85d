package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCVStoreSave_WritesFileAndReturnsRef(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewCVStore(dir, 1)

	content := "fake pdf bytes"
	ref, err := store.Save("res-1", "cv.pdf", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(ref, "/uploads/cvs/res-1-") || !strings.HasSuffix(ref, ".pdf") {
		t.Errorf("ref = %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != content {
		t.Errorf("saved content = %q, want %q", data, content)
	}
}

func TestCVStoreSave_RejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	store := NewCVStore(t.TempDir(), 1)
	_, err := store.Save("res-1", "malware.exe", 10, strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestCVStoreSave_RejectsOversizedDeclaredSize(t *testing.T) {
	t.Parallel()

	store := NewCVStore(t.TempDir(), 1)
	_, err := store.Save("res-1", "cv.pdf", 2*1024*1024, strings.NewReader("x"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestCVStoreSave_RejectsOversizedStream(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewCVStore(dir, 0)
	store.maxBytes = 8

	_, err := store.Save("res-1", "cv.pdf", 4, strings.NewReader("way more than eight bytes"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("partial file left behind: %v", entries)
	}
}

func TestCVStoreRemove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewCVStore(dir, 1)

	ref, err := store.Save("res-1", "cv.docx", 3, strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Remove(ref); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove(ref); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}
}
