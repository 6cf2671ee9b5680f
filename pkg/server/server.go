package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"droscher.com/BreweryDB/pkg/filter"
	"droscher.com/BreweryDB/pkg/repository"
)

var ErrInvalidRequestBody = errors.New("invalid request body")

const (
	cacheControlPublicDay = "public, max-age=86400"
	cacheControlNoStore   = "no-store"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// errorHandler writes the response for err and reports whether it did.
type errorHandler func(w http.ResponseWriter, err error) bool

func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}

		writeError(w, status, err.Error())

		return true
	}
}

var errorHandlers = []errorHandler{
	sentinelHandler(repository.ErrBreweryNotFound, http.StatusNotFound),
	sentinelHandler(filter.ErrInvalidFilterValue, http.StatusBadRequest),
	sentinelHandler(ErrInvalidRequestBody, http.StatusBadRequest),
	sentinelHandler(repository.ErrValidationFailed, http.StatusUnprocessableEntity),
}

func handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	for _, handler := range errorHandlers {
		if handler(w, err) {
			return
		}
	}

	logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError replaces any cache header set by CacheControl, errors are never cached.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Cache-Control", cacheControlNoStore)
	writeJSON(w, status, ErrorResponse{Message: message})
}

// CacheControl marks responses as cacheable by any cache for one day. Error responses override it.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControlPublicDay)
		next.ServeHTTP(w, r)
	})
}

func RequestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 0)
	if err != nil || id == 0 {
		return 0, repository.ErrBreweryNotFound
	}

	return uint(id), nil
}
