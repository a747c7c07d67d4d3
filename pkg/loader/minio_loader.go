package loader

import (
	"context"
	"io"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	dbconnections "github.com/thebartekbanach/imfilter/pkg/connections"
)

// MinioLoader reads sources from an object storage bucket; the source path
// is the object name.
type MinioLoader struct {
	conn dbconnections.MinioBlockStorageConnection
}

var _ Loader = (*MinioLoader)(nil)

func NewMinioLoader(conn dbconnections.MinioBlockStorageConnection) Loader {
	return &MinioLoader{conn}
}

func (l *MinioLoader) Load(ctx context.Context, path string) (binary.Binary, error) {
	object, err := l.conn.GetObject(ctx, path)
	if err != nil {
		return binary.Binary{}, l.convertToKnownError(err)
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		return binary.Binary{}, l.convertToKnownError(err)
	}

	content, err := io.ReadAll(object)
	if err != nil {
		return binary.Binary{}, l.convertToKnownError(err)
	}

	return binary.New(content, info.ContentType), nil
}

func (l *MinioLoader) convertToKnownError(err error) error {
	if dbconnections.IsNotFound(err) {
		return ErrSourceNotFound
	}

	return err
}
