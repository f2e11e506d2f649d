package requestutils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/testutils"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackOff(maxRetries int) func() backoff.BackOff {
	return func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), uint64(maxRetries))
	}
}

func TestMakeAPIRequest(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, token, ok := r.BasicAuth()
		if !ok || user != "admin" || token != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		requestID := r.Header.Get(global.RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil || len(requestID) != 32 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"depth":"` + r.URL.Query().Get("depth") + `","accept":"` + r.Header.Get("Accept") + `"}`))
	}))
	defer server.Close()

	r := New(logger, time.Second, NoRetry, WithBasicAuth("admin", "secret"))
	body, err := r.MakeAPIRequest(context.Background(), http.MethodGet, server.URL+"/job/core/api/json",
		url.Values{"depth": []string{"3"}}, map[string]string{"Accept": "application/json"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"depth":"3","accept":"application/json"}`, string(body))

	anonymous := New(logger, time.Second, NoRetry)
	_, err = anonymous.MakeAPIRequest(context.Background(), http.MethodGet, server.URL, nil, nil)
	assert.Equal(t, errs.ErrNotAuthorized, err)
}

func TestMakeAPIRequestStatusMapping(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	tests := []struct {
		name      string
		status    int
		wantErr   error
		wantCalls int32
	}{
		{"OK", http.StatusOK, nil, 1},
		{"Bad request is permanent", http.StatusBadRequest, errs.ErrJobRequiresParameters, 1},
		{"Forbidden is permanent", http.StatusForbidden, errs.ErrNotAuthorized, 1},
		{"Not found is permanent", http.StatusNotFound, errs.ErrNotFound, 1},
		{"Conflict is permanent", http.StatusConflict, errs.ErrUnknown, 1},
		{"Redirect is refused", http.StatusFound, errs.ErrUnknown, 1},
		{"Server error is retried", http.StatusBadGateway, errs.ErrUnknown, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				if tt.status == http.StatusFound {
					http.Redirect(w, r, "/login", tt.status)
					return
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			r := New(logger, time.Second, fastBackOff(2))
			_, err := r.MakeAPIRequest(context.Background(), http.MethodGet, server.URL+"/job/core", nil, nil)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestMakeAPIRequestRecovers(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	r := New(logger, time.Second, fastBackOff(global.DefaultMaxRetries))
	body, err := r.MakeAPIRequest(context.Background(), http.MethodGet, server.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestMakeAPIRequestInvalidURL(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	r := New(logger, time.Second, ExponentialBackOff(1))
	_, err = r.MakeAPIRequest(context.Background(), http.MethodGet, "://bad", nil, nil)
	assert.Equal(t, errs.ErrInvalidURL, err)
}
