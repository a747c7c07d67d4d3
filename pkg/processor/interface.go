package processor

import (
	"context"
	"errors"

	"github.com/thebartekbanach/imfilter/pkg/binary"
)

type ProcessingService interface {
	IsOperationSupported(operation string) bool

	ProcessImage(
		ctx context.Context,
		source binary.Binary,
		operation string,
		params map[string]interface{},
	) (binary.Binary, error)
}

var (
	ErrOperationNotSupported = errors.New("operation not supported")
	ErrInvalidParam          = errors.New("invalid processing param")
)
