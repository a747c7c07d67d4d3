package filter

import (
	"context"
	"errors"
	"fmt"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/processor"
)

// OperationParam lets runtime parameters switch the operation of a filter set.
const OperationParam = "operation"

type manager struct {
	registry   Registry
	processors map[string]processor.ProcessingService
}

var _ Pipeline = (*manager)(nil)

func NewManager(registry Registry, processors map[string]processor.ProcessingService) Pipeline {
	return &manager{registry, processors}
}

func (m *manager) Apply(ctx context.Context, source binary.Binary, filter string, runtimeParams cachekey.RuntimeParameters) (binary.Binary, error) {
	config, err := m.registry.Get(filter)
	if err != nil {
		return binary.Binary{}, err
	}

	proc, found := m.processors[config.Processor]
	if !found {
		return binary.Binary{}, fmt.Errorf("%w: processor %q of filter %q is not configured", ErrUnknownFilter, config.Processor, filter)
	}

	operation, params := m.mergeParams(config, runtimeParams)
	if !proc.IsOperationSupported(operation) {
		return binary.Binary{}, fmt.Errorf("%w: operation %q is not supported by processor %q", ErrUnknownFilter, operation, config.Processor)
	}

	result, err := proc.ProcessImage(ctx, source, operation, params)
	if errors.Is(err, processor.ErrOperationNotSupported) {
		return binary.Binary{}, fmt.Errorf("%w: %w", ErrUnknownFilter, err)
	}

	if errors.Is(err, processor.ErrInvalidParam) {
		return binary.Binary{}, fmt.Errorf("%w: %w", ErrParamsRejected, err)
	}

	if err != nil {
		return binary.Binary{}, fmt.Errorf("%w: %w", ErrTransformFailed, err)
	}

	if len(result.Content) == 0 {
		return binary.Binary{}, fmt.Errorf("%w: processor %q returned empty image", ErrTransformFailed, config.Processor)
	}

	if result.MimeType == "" {
		result = binary.Sniff(result.Content)
	}

	return result, nil
}

func (m *manager) mergeParams(config Config, runtimeParams cachekey.RuntimeParameters) (string, map[string]interface{}) {
	operation := config.Operation
	params := make(map[string]interface{}, len(config.Params)+len(runtimeParams))

	for key, value := range config.Params {
		params[key] = value
	}

	for key, value := range runtimeParams {
		if key == OperationParam {
			operation = fmt.Sprint(value)
			continue
		}

		params[key] = value
	}

	return operation, params
}
