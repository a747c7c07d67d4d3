package loader

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/thebartekbanach/imfilter/pkg/binary"
)

// FileSystemLoader reads sources from the first data root containing them.
type FileSystemLoader struct {
	dataRoots []string
}

var _ Loader = (*FileSystemLoader)(nil)

func NewFileSystemLoader(dataRoots []string) Loader {
	roots := make([]string, 0, len(dataRoots))
	for _, root := range dataRoots {
		if absolute, err := filepath.Abs(root); err == nil {
			roots = append(roots, absolute)
		}
	}

	return &FileSystemLoader{roots}
}

func (l *FileSystemLoader) Load(ctx context.Context, path string) (binary.Binary, error) {
	for _, root := range l.dataRoots {
		if err := ctx.Err(); err != nil {
			return binary.Binary{}, err
		}

		absolutePath, ok := l.resolveWithinRoot(root, path)
		if !ok {
			continue
		}

		content, err := os.ReadFile(absolutePath)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return binary.Binary{}, err
		}

		mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(absolutePath)))
		if mimeType == "" {
			return binary.Sniff(content), nil
		}

		return binary.New(content, mimeType), nil
	}

	return binary.Binary{}, ErrSourceNotFound
}

func (l *FileSystemLoader) resolveWithinRoot(root, path string) (string, bool) {
	absolutePath := filepath.Join(root, filepath.FromSlash(path))

	relative, err := filepath.Rel(root, absolutePath)
	if err != nil || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return "", false
	}

	return absolutePath, true
}
