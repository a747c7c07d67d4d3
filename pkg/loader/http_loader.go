package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ryanuber/go-glob"
	"github.com/thebartekbanach/imfilter/pkg/binary"
)

type httpGetFunc func(ctx context.Context, url string) (resp *http.Response, err error)

type HTTPLoaderConfig struct {
	// BaseURL is prepended to relative source paths.
	BaseURL        string
	AllowedDomains []string
	MaxSourceSize  int64
}

type HTTPLoader struct {
	config HTTPLoaderConfig
	getter httpGetFunc
}

var _ Loader = (*HTTPLoader)(nil)

func NewHTTPLoader(config HTTPLoaderConfig) Loader {
	getFunc := func(ctx context.Context, url string) (resp *http.Response, err error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		return http.DefaultClient.Do(req)
	}

	return &HTTPLoader{config, getFunc}
}

func (l *HTTPLoader) Load(ctx context.Context, path string) (binary.Binary, error) {
	sourceURL, err := l.buildSourceURL(path)
	if err != nil {
		return binary.Binary{}, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	if !l.isAllowedImageSourceDomain(sourceURL) {
		return binary.Binary{}, fmt.Errorf("%w: %w", ErrSourceNotFound, ErrDomainNotAllowed)
	}

	response, err := l.getter(ctx, sourceURL.String())
	if err != nil {
		return binary.Binary{}, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return binary.Binary{}, fmt.Errorf("%w: %w", ErrSourceNotFound, ErrResponseStatus404)
	} else if response.StatusCode != http.StatusOK {
		return binary.Binary{}, ErrResponseStatusNotOK
	}

	var body io.Reader = response.Body
	if l.config.MaxSourceSize > 0 {
		body = io.LimitReader(response.Body, l.config.MaxSourceSize+1)
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return binary.Binary{}, err
	}

	if l.config.MaxSourceSize > 0 && int64(len(content)) > l.config.MaxSourceSize {
		return binary.Binary{}, ErrSourceTooLarge
	}

	contentType := response.Header.Get("Content-Type")
	if contentType == "" {
		return binary.Sniff(content), nil
	}

	return binary.New(content, contentType), nil
}

func (l *HTTPLoader) buildSourceURL(path string) (*url.URL, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return url.Parse(path)
	}

	if l.config.BaseURL == "" {
		return nil, ErrRelativePathWithoutBaseURL
	}

	base, err := url.Parse(l.config.BaseURL)
	if err != nil {
		return nil, err
	}

	return base.JoinPath(path), nil
}

func (l *HTTPLoader) isAllowedImageSourceDomain(sourceURL *url.URL) bool {
	if len(l.config.AllowedDomains) == 0 {
		return true
	}

	sourceImageDomain := sourceURL.Hostname()
	for _, allowedDomain := range l.config.AllowedDomains {
		if glob.Glob(allowedDomain, sourceImageDomain) {
			return true
		}
	}

	return false
}

var (
	ErrResponseStatusNotOK        = errors.New("response returned non-200 status code")
	ErrResponseStatus404          = errors.New("response returned 404 status code")
	ErrSourceTooLarge             = errors.New("source image exceeds maximum allowed size")
	ErrRelativePathWithoutBaseURL = errors.New("relative source path requires base url")
)
