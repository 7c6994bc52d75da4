package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/client/storage"
	"github.com/dmitrijs2005/makanscan/internal/logging"
	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// Exchange is one completed (or failed) round trip as seen by response
// interceptors. StatusCode is 0 when no response was received.
type Exchange struct {
	Request    *http.Request
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// RequestInterceptor may modify an outgoing request. An error aborts the call.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor observes an exchange and returns the error the caller
// will see. Returning err unchanged is the norm.
type ResponseInterceptor func(ctx context.Context, ex *Exchange, err error) error

// RequestID tags each request with a fresh X-Request-ID unless one is set.
func RequestID() RequestInterceptor {
	return func(_ context.Context, req *http.Request) error {
		if req.Header.Get(headerRequestID) == "" {
			req.Header.Set(headerRequestID, uuid.NewString())
		}
		return nil
	}
}

// BearerToken attaches the stored session token. With no stored token the
// Authorization header is left out entirely.
func BearerToken(store storage.Storage) RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		token, err := store.Get(ctx, storage.TokenKey)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if len(token) == 0 {
			req.Header.Del(headerAuthorization)
			return nil
		}
		req.Header.Set(headerAuthorization, "Bearer "+string(token))
		return nil
	}
}

// ClearSessionOnUnauthorized removes the stored session on any 401 and
// returns err unchanged. A failed removal is logged, never surfaced.
func ClearSessionOnUnauthorized(store storage.Storage, logger logging.Logger) ResponseInterceptor {
	return func(ctx context.Context, ex *Exchange, err error) error {
		if ex.StatusCode != http.StatusUnauthorized {
			return err
		}
		// the caller may already have given up; the wipe must still happen
		if rerr := store.Remove(context.WithoutCancel(ctx), storage.SessionKeys...); rerr != nil {
			logger.Warn(ctx, "failed to clear session after 401", "error", rerr)
		} else {
			logger.Info(ctx, "session cleared after 401", "path", ex.Request.URL.Path)
		}
		return err
	}
}

// LogExchanges logs every exchange: Debug on success, Warn on failure.
func LogExchanges(logger logging.Logger) ResponseInterceptor {
	return func(ctx context.Context, ex *Exchange, err error) error {
		kv := []any{
			"method", ex.Request.Method,
			"path", ex.Request.URL.Path,
			"status", ex.StatusCode,
			"duration", ex.Duration,
			"request_id", ex.Request.Header.Get(headerRequestID),
		}
		if err != nil {
			logger.Warn(ctx, "api request failed", append(kv, "error", err)...)
		} else {
			logger.Debug(ctx, "api request", kv...)
		}
		return err
	}
}
