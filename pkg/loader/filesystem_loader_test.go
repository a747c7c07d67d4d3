package loader

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, root, path string, content []byte) {
	absolutePath := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(absolutePath), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(absolutePath, content, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileSystemLoader_ShouldLoadFileFromFirstRootContainingIt(t *testing.T) {
	firstRoot, secondRoot := t.TempDir(), t.TempDir()
	writeTestFile(t, secondRoot, "photos/a.jpg", []byte{0xff, 0xd8, 0xff})

	loader := NewFileSystemLoader([]string{firstRoot, secondRoot})
	source, err := loader.Load(context.Background(), "photos/a.jpg")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if source.MimeType != "image/jpeg" || !bytes.Equal(source.Content, []byte{0xff, 0xd8, 0xff}) {
		t.Errorf("Unexpected loaded source: %#v", source)
	}
}

func TestFileSystemLoader_ShouldReturnErrSourceNotFoundForMissingFile(t *testing.T) {
	loader := NewFileSystemLoader([]string{t.TempDir()})

	_, err := loader.Load(context.Background(), "photos/missing.jpg")

	if err != ErrSourceNotFound {
		t.Errorf("Expected %v, got %v", ErrSourceNotFound, err)
	}
}

func TestFileSystemLoader_ShouldNotEscapeDataRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "data")
	writeTestFile(t, parent, "secret.jpg", []byte{0xff, 0xd8, 0xff})
	os.MkdirAll(root, 0755)

	loader := NewFileSystemLoader([]string{root})
	_, err := loader.Load(context.Background(), "../secret.jpg")

	if err != ErrSourceNotFound {
		t.Errorf("Expected %v, got %v", ErrSourceNotFound, err)
	}
}
