package requestutils

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/utils"
	"github.com/cenkalti/backoff/v4"
)

// Option configures the requests client
type Option func(r *requests)

// WithBasicAuth authenticates every request with user and token
func WithBasicAuth(user, token string) Option {
	return func(r *requests) {
		r.user = user
		r.token = token
	}
}

// ExponentialBackOff returns a policy retrying up to maxRetries times with exponential delays
func ExponentialBackOff(maxRetries int) func() backoff.BackOff {
	return func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(maxRetries))
	}
}

// NoRetry returns a policy that never retries
func NoRetry() backoff.BackOff {
	return &backoff.StopBackOff{}
}

type requests struct {
	logger     lumber.Logger
	client     http.Client
	newBackOff func() backoff.BackOff
	user       string
	token      string
}

// New returns a jenkins http client. newBackOff is called once per request since
// backoff policies carry state.
func New(logger lumber.Logger, timeout time.Duration, newBackOff func() backoff.BackOff, opts ...Option) core.Requests {
	r := &requests{
		logger: logger,
		client: http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		newBackOff: newBackOff,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *requests) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string,
	query url.Values, headers map[string]string) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		r.logger.Errorf("error while parsing endpoint %s, %v", endpoint, err)
		return nil, errs.ErrInvalidURL
	}
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, value := range values {
				q.Add(key, value)
			}
		}
		u.RawQuery = q.Encode()
	}
	requestID := utils.GenerateUUID()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, httpMethod, u.String(), nil)
		if err != nil {
			r.logger.Errorf("error while creating http request %v", err)
			return backoff.Permanent(err)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		req.Header.Set(global.RequestIDHeader, requestID)
		if r.user != "" || r.token != "" {
			req.SetBasicAuth(r.user, r.token)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			r.logger.Errorf("error while sending http request %s %v", requestID, err)
			return err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			r.logger.Errorf("error while reading http response body %s %v", requestID, err)
			return err
		}

		if err := errs.FromStatusCode(resp.StatusCode); err != nil {
			r.logger.Errorf("request %s to %s failed with status %d", requestID, u.Path, resp.StatusCode)
			if resp.StatusCode >= http.StatusInternalServerError {
				return err
			}
			return backoff.Permanent(err)
		}
		body = respBody
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(r.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
