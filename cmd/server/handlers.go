package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thebartekbanach/imfilter/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/derivative"
	"github.com/thebartekbanach/imfilter/pkg/loader"
	"github.com/thebartekbanach/imfilter/pkg/signer"
	"go.uber.org/zap"
)

type HandlersConfig struct {
	InvalidateSecurityToken string
	AllowedOrigins          []string
	RequestTimeout          time.Duration
}

func handleResolveRequest(config HandlersConfig, derivativeService derivative.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, log)
		ctx, cancel := context.WithTimeout(r.Context(), config.RequestTimeout)
		defer cancel()

		filterName, path := r.PathValue("filter"), r.PathValue("path")
		address, err := derivativeService.EnsureDerivative(ctx, path, filterName, r.URL.Query().Get("resolver"))
		if err != nil {
			writeDerivativeError(w, err, log)
			return
		}

		http.Redirect(w, r, address, http.StatusFound)
	}
}

func handleRuntimeResolveRequest(config HandlersConfig, derivativeService derivative.Service, requestSigner signer.Signer, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, log)
		ctx, cancel := context.WithTimeout(r.Context(), config.RequestTimeout)
		defer cancel()

		filterName, path := r.PathValue("filter"), r.PathValue("path")
		params, err := parseRuntimeFilters(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		if !requestSigner.Check(r.PathValue("hash"), path, params) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("signed url does not match path and runtime filters"))
			return
		}

		address, err := derivativeService.EnsureDerivativeWithRuntimeFilters(ctx, path, filterName, params, r.URL.Query().Get("resolver"))
		if err != nil {
			writeDerivativeError(w, err, log)
			return
		}

		http.Redirect(w, r, address, http.StatusFound)
	}
}

func handleURLRequest(config HandlersConfig, derivativeService derivative.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, log)
		ctx, cancel := context.WithTimeout(r.Context(), config.RequestTimeout)
		defer cancel()

		params, err := parseRuntimeFilters(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		filterName, path, resolver := r.PathValue("filter"), r.PathValue("path"), r.URL.Query().Get("resolver")
		address, err := derivativeService.URLOfDerivativeWithRuntimeFilters(ctx, path, filterName, params, resolver)
		if err != nil {
			writeDerivativeError(w, err, log)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"url": address}, log)
	}
}

func handleInvalidationRequest(config HandlersConfig, invalidationService cache.InvalidationService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, log)
		ctx, cancel := context.WithTimeout(r.Context(), config.RequestTimeout)
		defer cancel()

		if !isAuthorized(config, r) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("access token authorization failed"))
			return
		}

		paths, filters := r.URL.Query()["paths"], r.URL.Query()["filters"]
		result, invalidationErr := invalidationService.Invalidate(ctx, paths, filters)
		if invalidationErr != nil {
			log.Error("error ocurred when invalidating", zap.Strings("paths", paths), zap.Error(invalidationErr))
			writeJSON(w, http.StatusInternalServerError, result, log)
			return
		}

		writeJSON(w, http.StatusOK, result, log)
	}
}

func handleLatestInvalidationInfoRequest(config HandlersConfig, invalidationService cache.InvalidationService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r, log)
		ctx, cancel := context.WithTimeout(r.Context(), config.RequestTimeout)
		defer cancel()

		if !isAuthorized(config, r) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("access token authorization failed"))
			return
		}

		result, err := invalidationService.GetLatestInvalidation(ctx)
		if err == cacherepositories.ErrNoInvalidations {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(err.Error()))
			return
		}

		if err != nil {
			log.Error("error ocurred when getting latest invalidation", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("error ocurred when getting latest invalidation"))
			return
		}

		writeJSON(w, http.StatusOK, result, log)
	}
}

func isAuthorized(config HandlersConfig, r *http.Request) bool {
	if config.InvalidateSecurityToken == "" {
		return true
	}

	return r.Header.Get("Authorization") == fmt.Sprintf("Bearer %s", config.InvalidateSecurityToken)
}

func parseRuntimeFilters(r *http.Request) (cachekey.RuntimeParameters, error) {
	rawFilters := r.URL.Query().Get("filters")
	if rawFilters == "" {
		return nil, nil
	}

	var params cachekey.RuntimeParameters
	if err := json.Unmarshal([]byte(rawFilters), &params); err != nil {
		return nil, ErrMalformedRuntimeFilters
	}

	return params, nil
}

func writeDerivativeError(w http.ResponseWriter, err error, log *zap.Logger) {
	status := statusOfDerivativeError(err)
	if status >= http.StatusInternalServerError {
		log.Error("derivative request failed", zap.Error(err))
	}

	w.WriteHeader(status)
	w.Write([]byte(http.StatusText(status)))
}

func statusOfDerivativeError(err error) int {
	switch {
	case errors.Is(err, derivative.ErrFilterApplicationFailed):
		return http.StatusBadRequest
	case errors.Is(err, derivative.ErrUnknownFilter), errors.Is(err, derivative.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, derivative.ErrInvalidParameters), errors.Is(err, cachekey.ErrInvalidPath), errors.Is(err, cache.ErrUnknownResolver):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, loader.ErrUnknownLoader):
		return http.StatusInternalServerError
	case errors.Is(err, derivative.ErrSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, value interface{}, log *zap.Logger) {
	jsonResult, err := json.Marshal(value)
	if err != nil {
		log.Error("error ocurred when marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("error ocurred when marshalling response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonResult)
}

var ErrMalformedRuntimeFilters = errors.New("filters query parameter must be a json object")
