package loader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	mock_globals "github.com/thebartekbanach/imfilter/test/mocks"
	testutils "github.com/thebartekbanach/imfilter/test/utils"
)

type httpResponseBody struct {
	io.Reader
}

func (body *httpResponseBody) Close() error {
	return nil
}

func fetchGetterFuncFactoryWithGetterCallback(reader io.Reader, responseStatusCode int, header http.Header, err error, onGetterCall func(url string)) httpGetFunc {
	return func(_ context.Context, url string) (*http.Response, error) {
		onGetterCall(url)

		if err != nil {
			return nil, err
		}

		body := httpResponseBody{reader}
		resp := http.Response{
			Body:       &body,
			StatusCode: responseStatusCode,
			Header:     header,
		}

		return &resp, nil
	}
}

func testDataFetchFuncFactory(responseStatusCode int, err error) (httpGetFunc, []byte) {
	data := []byte{0x1, 0x2, 0x3, 0x4, 0x5, 0x6}
	header := http.Header{"Content-Type": []string{"image/jpeg"}}
	get := fetchGetterFuncFactoryWithGetterCallback(bytes.NewReader(data), responseStatusCode, header, err, func(string) {})

	return get, data
}

func TestHTTPLoader_ShouldReturnResponseBodyWithContentType(t *testing.T) {
	getter, testData := testDataFetchFuncFactory(200, nil)

	loader := HTTPLoader{HTTPLoaderConfig{}, getter}
	source, err := loader.Load(context.Background(), "http://google.com/image.jpg")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !bytes.Equal(source.Content, testData) || source.MimeType != "image/jpeg" {
		t.Errorf("Unexpected loaded source: %#v", source)
	}
}

func TestHTTPLoader_ShouldJoinRelativePathWithBaseURL(t *testing.T) {
	requestedURL := ""
	getter := fetchGetterFuncFactoryWithGetterCallback(bytes.NewReader([]byte{0x1}), 200, http.Header{}, nil, func(url string) {
		requestedURL = url
	})

	loader := HTTPLoader{HTTPLoaderConfig{BaseURL: "http://cdn.example.com/media"}, getter}
	loader.Load(context.Background(), "photos/a.jpg")

	if requestedURL != "http://cdn.example.com/media/photos/a.jpg" {
		t.Errorf("Expected request to joined url, got %s", requestedURL)
	}
}

func TestHTTPLoader_ShouldReturnErrSourceNotFoundIf404IsReturnedByRequest(t *testing.T) {
	getter, _ := testDataFetchFuncFactory(404, nil)

	loader := HTTPLoader{HTTPLoaderConfig{}, getter}
	_, err := loader.Load(context.Background(), "http://google.com/image.jpg")

	if !errors.Is(err, ErrSourceNotFound) || !errors.Is(err, ErrResponseStatus404) {
		t.Errorf("Expected load error to be %v, got %v", ErrSourceNotFound, err)
	}
}

func TestHTTPLoader_ShouldReturnErrorIfResponseStatusIsNot200(t *testing.T) {
	getter, _ := testDataFetchFuncFactory(500, nil)

	loader := HTTPLoader{HTTPLoaderConfig{}, getter}
	_, err := loader.Load(context.Background(), "http://google.com/image.jpg")

	if err != ErrResponseStatusNotOK {
		t.Errorf("Expected load error to be %v, got %v", ErrResponseStatusNotOK, err)
	}
}

func TestHTTPLoader_ShouldNotCallDisallowedDomains(t *testing.T) {
	called := false
	getter := fetchGetterFuncFactoryWithGetterCallback(nil, 200, nil, nil, func(string) { called = true })

	loader := HTTPLoader{HTTPLoaderConfig{AllowedDomains: []string{"*.example.com"}}, getter}
	_, err := loader.Load(context.Background(), "http://google.com/image.jpg")

	if !errors.Is(err, ErrDomainNotAllowed) || !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected load error to be %v, got %v", ErrDomainNotAllowed, err)
	}

	if called {
		t.Errorf("Expected disallowed domain not to be requested")
	}
}

func TestHTTPLoader_ShouldReturnErrorReturnedByStreamRead(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockReader := mock_globals.NewMockReader(mockCtrl)
	mockReader.EXPECT().Read(gomock.Any()).Return(0, io.ErrUnexpectedEOF)
	getter := fetchGetterFuncFactoryWithGetterCallback(mockReader, 200, http.Header{}, nil, func(string) {})

	loader := HTTPLoader{HTTPLoaderConfig{}, getter}
	_, err := loader.Load(context.Background(), "http://google.com/image.jpg")

	if err != io.ErrUnexpectedEOF {
		t.Errorf("Expected load error to be %v, got %v", io.ErrUnexpectedEOF, err)
	}
}

func TestHTTPLoader_ShouldRejectSourcesBiggerThanLimit(t *testing.T) {
	getter, _ := testDataFetchFuncFactory(200, nil)

	loader := HTTPLoader{HTTPLoaderConfig{MaxSourceSize: 2}, getter}
	_, err := loader.Load(context.Background(), "http://google.com/image.jpg")

	if err != ErrSourceTooLarge {
		t.Errorf("Expected load error to be %v, got %v", ErrSourceTooLarge, err)
	}
}

func TestHTTPLoaderIntegration_ShouldLoadImageFromHttpServer(t *testing.T) {
	png := []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")
	server := testutils.NewTestHTTPServer()
	server.ServeImage("/photos/a.png", "image/png", png)
	baseURL := server.Start(t)

	loader := NewHTTPLoader(HTTPLoaderConfig{BaseURL: baseURL})
	source, err := loader.Load(context.Background(), "photos/a.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if source.MimeType != "image/png" || !bytes.Equal(source.Content, png) {
		t.Errorf("Unexpected loaded source: %#v", source)
	}

	_, err = loader.Load(context.Background(), "photos/missing.png")
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected %v for missing image, got %v", ErrSourceNotFound, err)
	}
}
