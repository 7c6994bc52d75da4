package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/client/storage"
	"github.com/dmitrijs2005/makanscan/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*storage.MemoryStorage
	getErr    error
	removeErr error
	removed   [][]string
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.MemoryStorage.Get(ctx, key)
}

func (f *failingStore) Remove(ctx context.Context, keys ...string) error {
	f.removed = append(f.removed, keys)
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.MemoryStorage.Remove(ctx, keys...)
}

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func seedSession(t *testing.T, s storage.Storage) {
	t.Helper()
	require.NoError(t, s.SetMany(context.Background(), map[string][]byte{
		storage.TokenKey: []byte("tok-123"),
		storage.UserKey:  []byte(`{"id":"u1","name":"Ana","email":"a@x.io","created_at":""}`),
	}))
}

func TestBearerToken_AttachedWhenStored(t *testing.T) {
	var got http.Header
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"u1"}}`)
	})
	store := storage.NewMemoryStorage()
	seedSession(t, store)

	_, err := New(srv.URL, store).Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestBearerToken_OmittedWithoutToken(t *testing.T) {
	var got http.Header
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
	})

	_, err := New(srv.URL, storage.NewMemoryStorage()).Cart(context.Background())
	require.NoError(t, err)

	_, present := got["Authorization"]
	assert.False(t, present, "Authorization header must be absent, not empty")
}

func TestBearerToken_StorageFailureAbortsRequest(t *testing.T) {
	called := false
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	store := &failingStore{MemoryStorage: storage.NewMemoryStorage(), getErr: errors.New("disk gone")}

	_, err := New(srv.URL, store).Me(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk gone")
	assert.False(t, called)
}

func TestUnauthorized_ClearsStoredSessionAndReturnsError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"success":false,"error":"Invalid or expired token"}`)
	})
	store := storage.NewMemoryStorage()
	seedSession(t, store)

	_, err := New(srv.URL, store).ListFoods(context.Background(), 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrRequestFailed)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid or expired token", apiErr.Message)

	for _, k := range storage.SessionKeys {
		v, gerr := store.Get(context.Background(), k)
		require.NoError(t, gerr)
		assert.Nil(t, v, k)
	}
}

func TestUnauthorized_RemovalFailureStillReturnsOriginalError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	store := &failingStore{MemoryStorage: storage.NewMemoryStorage(), removeErr: errors.New("locked")}

	_, err := New(srv.URL, store).Points(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotContains(t, err.Error(), "locked")
	require.Len(t, store.removed, 1)
	assert.ElementsMatch(t, storage.SessionKeys, store.removed[0])
}

func TestOtherErrors_LeaveSessionAlone(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"success":false,"message":"nope"}`)
	})
	store := storage.NewMemoryStorage()
	seedSession(t, store)

	_, err := New(srv.URL, store).Points(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "nope", Message(err))

	v, _ := store.Get(context.Background(), storage.TokenKey)
	assert.Equal(t, []byte("tok-123"), v)
}

func TestAPIError_FallsBackToStatusText(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	_, err := New(srv.URL, storage.NewMemoryStorage()).Points(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
	assert.Equal(t, []byte(`<html>oops</html>`), apiErr.Body)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, storage.NewMemoryStorage()).Points(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, "Server unavailable", Message(err))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "GET /rewards/points", te.Op)
}

func TestTimeout(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := New(srv.URL, storage.NewMemoryStorage(), WithTimeout(50*time.Millisecond)).Points(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		cancel()
		<-r.Context().Done()
	})

	_, err := New(srv.URL, storage.NewMemoryStorage()).Points(ctx)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":`)
	})

	_, err := New(srv.URL, storage.NewMemoryStorage()).Points(context.Background())
	assert.ErrorIs(t, err, ErrDecode)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.NotEmpty(t, de.Body)
}

func TestLogin_SendsCredentialsAndUnwrapsData(t *testing.T) {
	var body map[string]string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success":true,"message":"Login successful","data":{"token":"jwt","user":{"id":"u1","name":"Ana","email":"a@x.io","created_at":"2025-01-01T00:00:00Z"}}}`)
	})

	res, err := New(srv.URL+"/api/v1/", storage.NewMemoryStorage()).Login(context.Background(), "a@x.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": "a@x.io", "password": "secret"}, body)
	assert.Equal(t, "jwt", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "Ana", res.User.Name)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"success":false,"error":"invalid email or password"}`)
	})

	res, err := New(srv.URL, storage.NewMemoryStorage()).Login(context.Background(), "a@x.io", "bad")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogExchanges(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.BackendSlog, "debug", &buf)
	require.NoError(t, err)

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cart" {
			_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	c := New(srv.URL, storage.NewMemoryStorage(), WithResponseInterceptor(LogExchanges(logger)))

	_, err = c.Cart(context.Background())
	require.NoError(t, err)
	_, err = c.Order(context.Background(), "missing")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="api request" method=GET path=/cart status=200`)
	assert.Contains(t, out, `msg="api request failed" method=GET path=/orders/missing status=404`)
}

func TestCustomRequestInterceptorRunsAfterDefaults(t *testing.T) {
	var auth string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	})
	store := storage.NewMemoryStorage()
	seedSession(t, store)

	override := func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer override")
		return nil
	}
	require.NoError(t, New(srv.URL, store, WithRequestInterceptor(override)).DeleteCartItem(context.Background(), "c1"))
	assert.Equal(t, "Bearer override", auth)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "Request timed out", Message(&TransportError{Op: "GET /", Err: context.DeadlineExceeded}))
	assert.Equal(t, "Unexpected response from server", Message(&DecodeError{Err: io.ErrUnexpectedEOF}))
	assert.Equal(t, "email already registered", Message(&APIError{StatusCode: 409, Message: "email already registered"}))
}
