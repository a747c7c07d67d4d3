package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thebartekbanach/imfilter/pkg/cache"
	mock_cache "github.com/thebartekbanach/imfilter/pkg/cache/mocks"
	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/derivative"
	mock_derivative "github.com/thebartekbanach/imfilter/pkg/derivative/mocks"
	"github.com/thebartekbanach/imfilter/pkg/filter"
	"github.com/thebartekbanach/imfilter/pkg/loader"
	"github.com/thebartekbanach/imfilter/pkg/signer"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testRouter struct {
	handler             http.Handler
	derivativeService   *mock_derivative.MockService
	invalidationService *mock_cache.MockInvalidationService
	signer              signer.Signer
}

func newTestRouter(t *testing.T, config HandlersConfig) testRouter {
	mockCtrl := gomock.NewController(t)
	derivativeService := mock_derivative.NewMockService(mockCtrl)
	invalidationService := mock_cache.NewMockInvalidationService(mockCtrl)
	requestSigner, _ := signer.NewSigner("s3cr3t")

	if config.RequestTimeout == 0 {
		config.RequestTimeout = time.Second
	}

	handler := NewRouter(config, derivativeService, invalidationService, requestSigner, prometheus.NewRegistry(), nil)
	return testRouter{handler, derivativeService, invalidationService, requestSigner}
}

func (r testRouter) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	for name, values := range header {
		request.Header[name] = values
	}

	recorder := httptest.NewRecorder()
	r.handler.ServeHTTP(recorder, request)
	return recorder
}

func TestResolveHandler_RedirectsToDerivativeAddress(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})
	router.derivativeService.EXPECT().
		EnsureDerivative(gomock.Any(), "photos/a.jpg", "thumbnail", "").
		Return("http://cdn.example.com/media/cache/thumbnail/photos/a.jpg", nil)

	response := router.do(http.MethodGet, "/media/cache/resolve/thumbnail/photos/a.jpg", nil)

	if response.Code != http.StatusFound {
		t.Fatalf("Expected status %d, got %d", http.StatusFound, response.Code)
	}

	if location := response.Header().Get("Location"); location != "http://cdn.example.com/media/cache/thumbnail/photos/a.jpg" {
		t.Errorf("Unexpected redirect location: %s", location)
	}
}

func TestResolveHandler_PassesResolverFromQuery(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})
	router.derivativeService.EXPECT().
		EnsureDerivative(gomock.Any(), "photos/a.jpg", "thumbnail", "bucket").
		Return("http://localhost:9000/derivatives/thumbnail/photos/a.jpg", nil)

	response := router.do(http.MethodGet, "/media/cache/resolve/thumbnail/photos/a.jpg?resolver=bucket", nil)

	if response.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, response.Code)
	}
}

func TestResolveHandler_MapsErrorsToStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{derivative.ErrUnknownFilter, http.StatusNotFound},
		{fmt.Errorf("%w: %w", derivative.ErrSourceNotFound, errors.New("404")), http.StatusNotFound},
		{fmt.Errorf("%w: bad json", derivative.ErrInvalidParameters), http.StatusBadRequest},
		{&derivative.FilterApplicationError{Filter: "thumbnail", Path: "photos/a.jpg", Err: derivative.ErrUnknownFilter}, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", derivative.ErrTransformFailed, errors.New("imaginary down")), http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", derivative.ErrStoreFailed, errors.New("disk full")), http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", derivative.ErrCacheUnavailable, cache.ErrUnknownResolver), http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{&derivative.FilterApplicationError{Filter: "thumbnail", Path: "photos/a.jpg", Err: fmt.Errorf("%w: width=%q", filter.ErrParamsRejected, "abc")}, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", derivative.ErrSourceUnavailable, errors.New("connection reset")), http.StatusBadGateway},
		{fmt.Errorf("%w: %w", derivative.ErrSourceUnavailable, loader.ErrUnknownLoader), http.StatusInternalServerError},
		{fmt.Errorf("%w: boom", derivative.ErrComputationPanicked), http.StatusInternalServerError},
	}

	for _, c := range cases {
		router := newTestRouter(t, HandlersConfig{})
		router.derivativeService.EXPECT().EnsureDerivative(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", c.err)

		response := router.do(http.MethodGet, "/media/cache/resolve/thumbnail/photos/a.jpg", nil)

		if response.Code != c.status {
			t.Errorf("Expected status %d for error %v, got %d", c.status, c.err, response.Code)
		}
	}
}

func TestRuntimeResolveHandler_AcceptsSignedRuntimeFilters(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})
	params := cachekey.RuntimeParameters{"width": float64(300)}
	hash, _ := router.signer.Sign("photos/a.jpg", params)

	router.derivativeService.EXPECT().
		EnsureDerivativeWithRuntimeFilters(gomock.Any(), "photos/a.jpg", "thumbnail", params, "").
		Return("http://cdn.example.com/media/cache/thumbnail/rc/abc/photos/a.jpg", nil)

	target := "/media/cache/resolve/thumbnail/rc/" + hash + "/photos/a.jpg?filters=" + url.QueryEscape(`{"width":300}`)
	response := router.do(http.MethodGet, target, nil)

	if response.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d: %s", http.StatusFound, response.Code, response.Body.String())
	}
}

func TestRuntimeResolveHandler_RejectsInvalidSignature(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})

	target := "/media/cache/resolve/thumbnail/rc/AAAAAAAA/photos/a.jpg?filters=" + url.QueryEscape(`{"width":300}`)
	response := router.do(http.MethodGet, target, nil)

	if response.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, response.Code)
	}
}

func TestRuntimeResolveHandler_RejectsMalformedFilters(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})

	target := "/media/cache/resolve/thumbnail/rc/AAAAAAAA/photos/a.jpg?filters=" + url.QueryEscape(`[1,2`)
	response := router.do(http.MethodGet, target, nil)

	if response.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, response.Code)
	}
}

func TestURLHandler_ReturnsAddressWithoutComputing(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})
	router.derivativeService.EXPECT().
		URLOfDerivativeWithRuntimeFilters(gomock.Any(), "photos/a.jpg", "thumbnail", nil, "").
		Return("http://cdn.example.com/media/cache/thumbnail/photos/a.jpg", nil)

	response := router.do(http.MethodGet, "/media/cache/url/thumbnail/photos/a.jpg", nil)

	var body map[string]string
	json.Unmarshal(response.Body.Bytes(), &body)
	if response.Code != http.StatusOK || body["url"] != "http://cdn.example.com/media/cache/thumbnail/photos/a.jpg" {
		t.Errorf("Unexpected response %d: %s", response.Code, response.Body.String())
	}
}

func TestInvalidationHandler_RequiresAccessToken(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{InvalidateSecurityToken: "token"})

	response := router.do(http.MethodDelete, "/invalidate?paths=photos/", http.Header{"Authorization": {"Bearer wrong"}})

	if response.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, response.Code)
	}
}

func TestInvalidationHandler_InvalidatesRequestedPathsAndFilters(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{InvalidateSecurityToken: "token"})
	result := cacherepositories.InvalidationModel{
		RequestedPaths:   []string{"photos/", "avatars/"},
		RequestedFilters: []string{"thumbnail"},
		InvalidatedDerivatives: []cacherepositories.CachedDerivativeModel{
			{Signature: "abc", SourcePath: "photos/a.jpg", Filter: "thumbnail"},
		},
	}

	router.invalidationService.EXPECT().
		Invalidate(gomock.Any(), []string{"photos/", "avatars/"}, []string{"thumbnail"}).
		Return(result, nil)

	response := router.do(http.MethodDelete, "/invalidate?paths=photos/&paths=avatars/&filters=thumbnail", http.Header{"Authorization": {"Bearer token"}})

	if response.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.Code)
	}

	var body cacherepositories.InvalidationModel
	if err := json.Unmarshal(response.Body.Bytes(), &body); err != nil || len(body.InvalidatedDerivatives) != 1 {
		t.Errorf("Unexpected invalidation report: %s", response.Body.String())
	}
}

func TestInvalidationHandler_ReturnsReportOfFailedInvalidation(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})
	errText := "storage unavailable"
	result := cacherepositories.InvalidationModel{InvalidationError: &errText}

	router.invalidationService.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, errors.New(errText))

	response := router.do(http.MethodDelete, "/invalidate", nil)

	if response.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, response.Code)
	}
}

func TestLatestInvalidationHandler_ReturnsNotFoundWithoutInvalidations(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})
	router.invalidationService.EXPECT().GetLatestInvalidation(gomock.Any()).Return(cacherepositories.InvalidationModel{}, cacherepositories.ErrNoInvalidations)

	response := router.do(http.MethodGet, "/invalidations/latest", nil)

	if response.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, response.Code)
	}
}

func TestRouter_RejectsDisallowedOrigins(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{AllowedOrigins: []string{"https://*.example.com"}})

	response := router.do(http.MethodGet, "/media/cache/resolve/thumbnail/photos/a.jpg", http.Header{"Origin": {"https://evil.com"}})

	if response.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, response.Code)
	}
}

func TestRouter_ServesMetrics(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})

	response := router.do(http.MethodGet, "/status", nil)

	if response.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, response.Code)
	}
}

func TestRouter_RejectsWrongMethods(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})

	response := router.do(http.MethodPost, "/media/cache/resolve/thumbnail/photos/a.jpg", nil)

	if response.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, response.Code)
	}
}

func TestRouter_SetsRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, HandlersConfig{})

	generated := router.do(http.MethodGet, "/status", nil).Header().Get("X-Request-Id")
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("Expected generated request id to be uuid, got %q", generated)
	}

	incoming := uuid.New().String()
	echoed := router.do(http.MethodGet, "/status", http.Header{"X-Request-Id": {incoming}}).Header().Get("X-Request-Id")
	if echoed != incoming {
		t.Errorf("Expected request id %s to be echoed, got %s", incoming, echoed)
	}

	replaced := router.do(http.MethodGet, "/status", http.Header{"X-Request-Id": {"not\nan id"}}).Header().Get("X-Request-Id")
	if _, err := uuid.Parse(replaced); err != nil {
		t.Errorf("Expected malformed request id to be replaced, got %q", replaced)
	}
}

func TestRouter_LogsFailuresWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	mockCtrl := gomock.NewController(t)
	derivativeService := mock_derivative.NewMockService(mockCtrl)
	derivativeService.EXPECT().EnsureDerivative(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: %w", derivative.ErrStoreFailed, errors.New("disk full")))
	requestSigner, _ := signer.NewSigner("s3cr3t")

	handler := NewRouter(HandlersConfig{RequestTimeout: time.Second}, derivativeService, mock_cache.NewMockInvalidationService(mockCtrl), requestSigner, prometheus.NewRegistry(), zap.New(core))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/media/cache/resolve/thumbnail/photos/a.jpg", nil))

	failures := logs.FilterMessage("derivative request failed").All()
	if len(failures) != 1 {
		t.Fatalf("Expected one logged failure, got %d", len(failures))
	}

	if requestID := failures[0].ContextMap()["request_id"]; requestID != recorder.Header().Get("X-Request-Id") {
		t.Errorf("Expected failure to be logged with request id %s, got %v", recorder.Header().Get("X-Request-Id"), requestID)
	}
}
