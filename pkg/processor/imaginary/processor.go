package imaginaryprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/processor"
)

type httpRequestFunc func(req *http.Request) (*http.Response, error)

type Processor struct {
	config      Config
	makeRequest httpRequestFunc
}

var _ processor.ProcessingService = (*Processor)(nil)

func NewProcessor(config Config) Processor {
	return Processor{config, http.DefaultClient.Do}
}

func (proc *Processor) IsOperationSupported(operation string) bool {
	endpoint := "/" + strings.TrimPrefix(operation, "/")
	for _, supportedEndpoint := range supportedImaginaryEndpoints {
		if supportedEndpoint == endpoint {
			return true
		}
	}

	return false
}

func (proc *Processor) ProcessImage(
	ctx context.Context,
	source binary.Binary,
	operation string,
	params map[string]interface{},
) (binary.Binary, error) {
	if !proc.IsOperationSupported(operation) {
		return binary.Binary{}, processor.ErrOperationNotSupported
	}

	req, err := proc.buildRequest(ctx, source, operation, params)
	if err != nil {
		return binary.Binary{}, err
	}

	response, err := proc.makeRequest(req)
	if err != nil {
		return binary.Binary{}, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusBadRequest {
		return binary.Binary{}, fmt.Errorf("%w: %s", processor.ErrInvalidParam, proc.readErrorMessage(response.Body))
	}

	if response.StatusCode != http.StatusOK {
		return binary.Binary{}, ErrResponseStatusNotOK
	}

	contentType := response.Header.Get("Content-Type")
	if contentType == "" {
		return binary.Binary{}, ErrUnknownContentType
	}

	var body io.Reader = response.Body
	if proc.config.MaxResponseSize > 0 {
		body = io.LimitReader(response.Body, proc.config.MaxResponseSize+1)
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return binary.Binary{}, err
	}

	if proc.config.MaxResponseSize > 0 && int64(len(content)) > proc.config.MaxResponseSize {
		return binary.Binary{}, ErrResponseTooLarge
	}

	return binary.New(content, contentType), nil
}

func (proc *Processor) buildRequest(
	ctx context.Context,
	source binary.Binary,
	operation string,
	params map[string]interface{},
) (*http.Request, error) {
	serviceURL, err := url.Parse(proc.config.ImaginaryServiceURL)
	if err != nil {
		return nil, err
	}

	endpoint := serviceURL.JoinPath(strings.TrimPrefix(operation, "/"))

	query := endpoint.Query()
	for _, key := range proc.getSortedMapKeys(params) {
		query.Set(key, fmt.Sprint(params[key]))
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(source.Content))
	if err != nil {
		return nil, err
	}

	if source.MimeType != "" {
		req.Header.Set("Content-Type", source.MimeType)
	}

	return req, nil
}

func (proc *Processor) readErrorMessage(body io.Reader) string {
	message, _ := io.ReadAll(io.LimitReader(body, 512))
	return strings.TrimSpace(string(message))
}

func (proc *Processor) getSortedMapKeys(mapToSort map[string]interface{}) []string {
	keys := make([]string, len(mapToSort))

	i := 0
	for key := range mapToSort {
		keys[i] = key
		i++
	}

	sort.Strings(keys)
	return keys
}

var (
	ErrResponseStatusNotOK = errors.New("response status not OK")
	ErrUnknownContentType  = errors.New("unknown response content type")
	ErrResponseTooLarge    = errors.New("response exceeds maximum allowed size")
)

var supportedImaginaryEndpoints = []string{
	"/crop",
	"/smartcrop",
	"/resize",
	"/enlarge",
	"/extract",
	"/zoom",
	"/thumbnail",
	"/fit",
	"/rotate",
	"/autorotate",
	"/flip",
	"/flop",
	"/convert",
	"/pipeline",
	"/watermark",
	"/watermarkimage",
	"/blur",
}
