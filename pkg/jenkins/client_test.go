package jenkins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/LambdaTest/coverage-bridge/config"
	"github.com/LambdaTest/coverage-bridge/mocks"
	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/document"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/requestutils"
	"github.com/LambdaTest/coverage-bridge/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	logger, err := testutils.GetLogger()
	require.NoError(t, err)
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	cfg := &config.Jenkins{Transport: "http", Host: u.Hostname(), Port: port, Path: "job", User: "admin", Token: "secret"}
	requests := requestutils.New(logger, time.Second, requestutils.NoRetry, requestutils.WithBasicAuth(cfg.User, cfg.Token))
	return New(cfg, requests, logger)
}

func TestCoverageURL(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)
	cfg := &config.Jenkins{Transport: "https", Host: "ci.example.com", Port: 8443, Path: "/job/"}
	c := New(cfg, new(mocks.Requests), logger)

	tests := []struct {
		name    string
		target  core.JobTarget
		want    string
		wantErr error
	}{
		{
			"Last successful cobertura",
			core.JobTarget{Job: "core", Provider: core.ProviderCobertura},
			"https://ci.example.com:8443/job/core/lastSuccessfulBuild/cobertura/api/json",
			nil,
		},
		{
			"Numbered jacoco",
			core.JobTarget{Job: "core", Build: 17, Provider: core.ProviderJacoco},
			"https://ci.example.com:8443/job/core/17/jacoco/api/json",
			nil,
		},
		{
			"Custom provider path",
			core.JobTarget{Job: "core", Provider: "/coverage/result/"},
			"https://ci.example.com:8443/job/core/lastSuccessfulBuild/coverage/result/api/json",
			nil,
		},
		{
			"Job name is escaped",
			core.JobTarget{Job: "nightly build", Provider: core.ProviderJacoco},
			"https://ci.example.com:8443/job/nightly%20build/lastSuccessfulBuild/jacoco/api/json",
			nil,
		},
		{"Missing job", core.JobTarget{Provider: core.ProviderJacoco}, "", errs.ErrInvalidURL},
		{"Missing provider", core.JobTarget{Job: "core"}, "", errs.ErrInvalidURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CoverageURL(&tt.target)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}

	noHost := New(&config.Jenkins{Transport: "http"}, new(mocks.Requests), logger)
	_, err = noHost.CoverageURL(&core.JobTarget{Job: "core", Provider: core.ProviderJacoco})
	assert.Equal(t, errs.ErrInvalidHost, err)
}

func TestFetchDocumentQuery(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)
	cfg := &config.Jenkins{Transport: "http", Host: "localhost", Port: 8080, Path: "job"}

	requests := new(mocks.Requests)
	requests.On("MakeAPIRequest", mock.Anything, http.MethodGet,
		"http://localhost:8080/job/core/lastSuccessfulBuild/cobertura/api/json",
		url.Values{"depth": []string{"3"}}, defaultHeaders).Return([]byte(`{"results":{}}`), nil).Once()
	requests.On("MakeAPIRequest", mock.Anything, http.MethodGet,
		"http://localhost:8080/job/core/lastSuccessfulBuild/jacoco/api/json",
		url.Values(nil), defaultHeaders).Return([]byte(`{}`), nil).Once()

	c := New(cfg, requests, logger)
	_, err = c.FetchDocument(context.Background(), &core.JobTarget{Job: "core", Provider: core.ProviderCobertura, Depth: 3})
	require.NoError(t, err)
	_, err = c.FetchDocument(context.Background(), &core.JobTarget{Job: "core", Provider: core.ProviderJacoco, Depth: 3})
	require.NoError(t, err)
	requests.AssertExpectations(t)
}

func fixtureServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	bodies := make(map[string][]byte, len(routes))
	for route, fixture := range routes {
		if !strings.HasPrefix(fixture, "testutils/") {
			bodies[route] = []byte(fixture)
			continue
		}
		data, err := testutils.LoadFile(fixture)
		require.NoError(t, err)
		bodies[route] = data
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, token, ok := r.BasicAuth(); !ok || user != "admin" || token != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		body, ok := bodies[r.URL.Path+"?"+r.URL.RawQuery]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCoberturaCoverage(t *testing.T) {
	server := fixtureServer(t, map[string]string{
		"/job/core/lastSuccessfulBuild/cobertura/api/json?depth=2": testutils.CoberturaDepth2Path,
		"/job/core/lastSuccessfulBuild/cobertura/api/json?depth=3": testutils.CoberturaDepth3Path,
		"/job/empty/lastSuccessfulBuild/cobertura/api/json?depth=2": `{"results":{}}`,
		"/job/none/lastSuccessfulBuild/cobertura/api/json?depth=2":  `{"_class":"x","results":null}`,
		"/job/junk/lastSuccessfulBuild/cobertura/api/json?depth=2":  "not json",
	})
	c := newTestClient(t, server)
	ctx := context.Background()

	r, err := c.CoberturaCoverage(ctx, &core.JobTarget{Job: "core", Provider: core.ProviderCobertura, Depth: 2})
	require.NoError(t, err)
	assert.Equal(t, "Cobertura Coverage Report", r.Name())
	assert.Empty(t, r.Children())
	assert.Len(t, r.Elements(), 5)
	assert.InDelta(t, 0.2, r.Ratio(coverage.Lines), 0.05)

	r, err = c.CoberturaCoverage(ctx, &core.JobTarget{Job: "core", Provider: core.ProviderCobertura, Depth: 3})
	require.NoError(t, err)
	assert.Len(t, r.Children(), 27)

	r, err = c.CoberturaCoverage(ctx, &core.JobTarget{Job: "empty", Provider: core.ProviderCobertura, Depth: 2})
	require.NoError(t, err)
	require.NotNil(t, r, "an empty report is still a report")
	assert.Empty(t, r.Elements())
	assert.Equal(t, "", r.Name())

	tests := []struct {
		name    string
		job     string
		wantErr error
	}{
		{"Results missing", "none", errs.ErrNoReport},
		{"Invalid json", "junk", errs.ErrInvalidDocument},
		{"Unknown job", "absent", errs.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.CoberturaCoverage(ctx, &core.JobTarget{Job: tt.job, Provider: core.ProviderCobertura, Depth: 2})
			assert.Nil(t, r)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestJacocoCoverage(t *testing.T) {
	server := fixtureServer(t, map[string]string{
		"/job/core/lastSuccessfulBuild/jacoco/api/json?": testutils.JacocoPath,
		"/job/core/12/jacoco/api/json?":                  `[1,2,3]`,
	})
	c := newTestClient(t, server)
	ctx := context.Background()

	r, err := c.JacocoCoverage(ctx, &core.JobTarget{Job: "core", Provider: core.ProviderJacoco})
	require.NoError(t, err)
	assert.Len(t, r.Elements(), 6)
	assert.InDelta(t, 0.61, r.Ratio(coverage.BranchCoverage), 1e-9)

	r, err = c.JacocoCoverage(ctx, &core.JobTarget{Job: "core", Build: 12, Provider: core.ProviderJacoco})
	assert.Nil(t, r)
	assert.Equal(t, errs.ErrNoReport, err)
}

func TestFetch(t *testing.T) {
	server := fixtureServer(t, map[string]string{
		"/job/core/lastSuccessfulBuild/jacoco/api/json?":           testutils.JacocoPath,
		"/job/core/lastSuccessfulBuild/cobertura/api/json?depth=3": testutils.CoberturaDepth3Path,
		"/job/core/lastSuccessfulBuild/coverage/api/json?depth=3":  testutils.CoberturaDepth3Path,
	})
	c := newTestClient(t, server)
	ctx := context.Background()

	tests := []struct {
		name       string
		provider   string
		wantFamily coverage.Family
	}{
		{"Jacoco is flat", core.ProviderJacoco, coverage.FamilyJacoco},
		{"Cobertura is a tree", core.ProviderCobertura, coverage.FamilyCobertura},
		{"Custom provider is a tree", "coverage", coverage.FamilyCobertura},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.Fetch(ctx, &core.JobTarget{Job: "core", Provider: tt.provider, Depth: 3})
			require.NoError(t, err)
			assert.Equal(t, tt.wantFamily, r.Family())
		})
	}

	r, err := c.Fetch(ctx, &core.JobTarget{Job: "missing", Provider: core.ProviderJacoco})
	assert.Nil(t, r, "no report is a nil interface")
	assert.Equal(t, errs.ErrNotFound, err)
}

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		raw        string
		wantFamily coverage.Family
		wantErr    error
	}{
		{"Jacoco", core.ProviderJacoco, `{"lineCoverage":{"covered":1,"total":2}}`, coverage.FamilyJacoco, nil},
		{"Jacoco array", core.ProviderJacoco, `[]`, coverage.FamilyNone, errs.ErrNoReport},
		{"Cobertura", core.ProviderCobertura, `{"results":{"name":"root"}}`, coverage.FamilyCobertura, nil},
		{"Cobertura without envelope", core.ProviderCobertura, `{"name":"root"}`, coverage.FamilyNone, errs.ErrNoReport},
		{"Cobertura string results", core.ProviderCobertura, `{"results":"none"}`, coverage.FamilyNone, errs.ErrNoReport},
		{"Custom", "coverage", `{"results":{}}`, coverage.FamilyCobertura, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := BuildReport(tt.provider, document.MustParse(tt.raw))
			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr != nil {
				assert.Nil(t, r)
				return
			}
			assert.Equal(t, tt.wantFamily, r.Family())
		})
	}
}
